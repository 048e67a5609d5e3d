package imgbytes

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/flavioheleno/imgbytes/pixfmt"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultPixelsPerLine is the line wrap used when Opts.PixelsPerLine is not
// positive.
const DefaultPixelsPerLine = 8

// ErrInvalidOpts is returned for options that cannot be used.
var ErrInvalidOpts = errors.New("imgbytes: invalid options")

// Opts is the conversion configuration.
type Opts struct {
	// Output encoding (default: RGB888)
	Format pixfmt.Format

	BGR          bool // Exchange red and blue before packing
	LowByteFirst bool // Emit the low byte of 565 and 555 words first

	// Output events per line (default: 8). For 444 one event is one pixel pair.
	PixelsPerLine int

	// Identifier written in the header line (default: "image")
	Name string

	// Frame size used by Dev (default: 256x64). Convert ignores it.
	W int
	H int
}

// Stats describes one converted image.
type Stats struct {
	Pixels  int // Pixels read from the image
	Bytes   int // Byte literals written
	Dropped int // Trailing 444 pixels left without a partner
}

// normalize returns a copy of o with defaults applied.
func (o *Opts) normalize() (Opts, error) {
	var n Opts
	if o != nil {
		n = *o
	}
	if !n.Format.Valid() {
		return n, fmt.Errorf("%w: format %v", ErrInvalidOpts, n.Format)
	}
	if n.PixelsPerLine < 1 {
		n.PixelsPerLine = DefaultPixelsPerLine
	}
	if n.Name == "" {
		n.Name = "image"
	}
	return n, nil
}

// ParsePixelsPerLine parses a line wrap value. Values that are not integers
// or are below 1 yield DefaultPixelsPerLine; this fallback is silent.
func ParsePixelsPerLine(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return DefaultPixelsPerLine
	}
	return n
}

var countPrinter = message.NewPrinter(language.English)

// Header returns the comment line that precedes an image's bytes, without
// the line break:
//
//	//logo - 64x32 - RGB:565 (4,096 bytes)
func Header(name string, w, h int, opts *Opts) string {
	o, _ := opts.normalize()
	if name == "" {
		name = o.Name
	}
	order := "RGB"
	if o.BGR {
		order = "BGR"
	}
	n := o.Format.ByteCount(w * h)
	return fmt.Sprintf("//%s - %dx%d - %s:%v (%s bytes)", name, w, h, order, o.Format, countPrinter.Sprintf("%d", n))
}

// Convert writes the header line and the bytes of src to w.
//
// Pixels are read row by row, left to right. Output is buffered and flushed
// before Convert returns.
func Convert(w io.Writer, src image.Image, opts *Opts) (Stats, error) {
	o, err := opts.normalize()
	if err != nil {
		return Stats{}, err
	}
	r := src.Bounds()
	bw := bufio.NewWriter(w)
	bw.WriteString(Header(o.Name, r.Dx(), r.Dy(), &o))
	bw.WriteByte('\n')

	e := NewEmitter(bw, o.Format.ByteCount(r.Dx()*r.Dy()), o.PixelsPerLine)
	st := encode(e, src, r, &o)
	if err := e.Flush(); err != nil {
		return st, fmt.Errorf("imgbytes: failed to write %s: %w", o.Name, err)
	}
	return st, nil
}

// encode feeds every pixel of r through a fresh Encoder into e.
func encode(e *Emitter, src image.Image, r image.Rectangle, o *Opts) Stats {
	log := Logger()
	log.Debug("encoding image", "name", o.Name, "format", o.Format.String(),
		"width", r.Dx(), "height", r.Dy(), "bgr", o.BGR, "bytes", e.total)

	enc := pixfmt.NewEncoder(o.Format, o.BGR, o.LowByteFirst)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p := pixfmt.PixelModel.Convert(src.At(x, y)).(pixfmt.Pixel)
			b, ok := enc.Encode(p)
			if !ok {
				e.Skip()
				continue
			}
			e.Emit(b)
		}
	}

	st := Stats{Pixels: e.Pixels(), Bytes: e.Written()}
	if p, ok := enc.Pending(); ok {
		st.Dropped = 1
		log.Warn("dropping unpaired trailing pixel", "name", o.Name, "format", o.Format.String(),
			"r", p.R, "g", p.G, "b", p.B)
	}
	log.Debug("encoded image", "name", o.Name, "pixels", st.Pixels, "bytes", st.Bytes)
	return st
}
