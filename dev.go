package imgbytes

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"strconv"

	"github.com/flavioheleno/imgbytes/pixfmt"
	"periph.io/x/conn/v3/display"
)

// ErrHalted is returned by Dev operations after Halt.
var ErrHalted = errors.New("imgbytes: halted")

// Dev is a virtual display that renders every frame drawn on it as a byte
// array on an io.Writer.
//
// It implements the display.Drawer interface from periph.io, so code written
// for a real panel can produce firmware assets instead.
type Dev struct {
	w    *bufio.Writer
	opts Opts
	rect image.Rectangle

	// Frame buffers
	next *image.NRGBA // Frame being drawn
	last []byte       // Pixels of the last emitted frame

	frames    int
	lineStart bool
	halted    bool
}

var _ display.Drawer = (*Dev)(nil)

// NewWriter creates a Dev that writes frames to w.
//
// opts can be nil to use defaults (256x64, RGB888).
func NewWriter(w io.Writer, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 256, H: 64}
	}
	if opts.W <= 0 {
		return nil, fmt.Errorf("%w: width must be positive", ErrInvalidOpts)
	}
	if opts.H <= 0 {
		return nil, fmt.Errorf("%w: height must be positive", ErrInvalidOpts)
	}
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if opts.Name == "" {
		o.Name = "frame"
	}

	rect := image.Rect(0, 0, o.W, o.H)
	return &Dev{
		w:         bufio.NewWriter(w),
		opts:      o,
		rect:      rect,
		next:      image.NewNRGBA(rect),
		lineStart: true,
	}, nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return pixfmt.PixelModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw draws src onto the frame buffer and emits the whole frame.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
//
// A frame identical to the previously emitted one is not written again.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	// Clip to display bounds, moving sp by the amount dst.Min moved
	clipped := dst.Intersect(d.rect)
	if clipped.Empty() {
		return nil
	}
	sp = sp.Add(clipped.Min.Sub(dst.Min))
	dst = clipped
	draw.Draw(d.next, dst, src, sp, draw.Src)

	if d.last != nil && bytes.Equal(d.last, d.next.Pix) {
		Logger().Debug("frame unchanged", "frame", d.frames)
		return nil
	}
	if err := d.writeFrame(); err != nil {
		return err
	}
	if d.last == nil {
		d.last = make([]byte, len(d.next.Pix))
	}
	copy(d.last, d.next.Pix)
	return nil
}

// writeFrame emits the frame buffer. Frames after the first start on a new
// line and get a numbered name.
func (d *Dev) writeFrame() error {
	name := d.opts.Name
	if d.frames > 0 {
		name += "_" + strconv.Itoa(d.frames)
	}
	if !d.lineStart {
		d.w.WriteByte('\n')
	}
	d.w.WriteString(Header(name, d.rect.Dx(), d.rect.Dy(), &d.opts))
	d.w.WriteByte('\n')

	o := d.opts
	o.Name = name
	e := NewEmitter(d.w, o.Format.ByteCount(d.rect.Dx()*d.rect.Dy()), o.PixelsPerLine)
	encode(e, d.next, d.rect, &o)
	d.lineStart = e.AtLineStart()
	if err := e.Flush(); err != nil {
		return fmt.Errorf("imgbytes: failed to write frame %d: %w", d.frames, err)
	}
	d.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (d *Dev) Frames() int {
	return d.frames
}

// Halt terminates the last line and flushes the output.
// After calling Halt, Draw returns ErrHalted.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.halted = true
	if !d.lineStart {
		d.w.WriteByte('\n')
		d.lineStart = true
	}
	return d.w.Flush()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	order := "RGB"
	if d.opts.BGR {
		order = "BGR"
	}
	return fmt.Sprintf("imgbytes.Dev{%dx%d %s:%v}", d.rect.Dx(), d.rect.Dy(), order, d.opts.Format)
}
