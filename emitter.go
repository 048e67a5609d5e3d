package imgbytes

import (
	"bufio"
	"io"
)

const hexDigits = "0123456789ABCDEF"

// Emitter writes encoded pixels as comma separated "0xHH" literals, breaking
// the line after every perLine output events.
//
// Emitter is single use: it is created for one image and knows how many
// bytes that image encodes to, so it can leave out the comma after the last
// one.
type Emitter struct {
	w       *bufio.Writer
	total   int // bytes the image encodes to
	perLine int

	pixels     int // pixels seen, with or without output
	written    int // bytes written
	lineEvents int // output events on the current line
	lineStart  bool
}

// NewEmitter returns an Emitter for an image that encodes to total bytes.
// perLine values below 1 are replaced by DefaultPixelsPerLine.
func NewEmitter(w io.Writer, total, perLine int) *Emitter {
	if perLine < 1 {
		perLine = DefaultPixelsPerLine
	}
	return &Emitter{
		w:         bufio.NewWriter(w),
		total:     total,
		perLine:   perLine,
		lineStart: true,
	}
}

// Skip records a pixel that produced no bytes.
func (e *Emitter) Skip() {
	e.pixels++
}

// Emit writes the bytes produced by one pixel.
func (e *Emitter) Emit(b []byte) {
	e.pixels++
	lit := [4]byte{'0', 'x'}
	for i, v := range b {
		if i > 0 {
			e.w.WriteByte(',')
		}
		lit[2], lit[3] = hexDigits[v>>4], hexDigits[v&0x0F]
		e.w.Write(lit[:])
	}
	e.written += len(b)
	e.lineStart = false
	// Compared against bytes, not pixels: an unpaired trailing 444 pixel
	// must not leave a comma after the last pair.
	if e.written < e.total {
		e.w.WriteByte(',')
	}

	e.lineEvents++
	if e.lineEvents == e.perLine {
		e.w.WriteByte('\n')
		e.lineEvents = 0
		e.lineStart = true
	}
}

// Pixels returns the number of pixels recorded so far.
func (e *Emitter) Pixels() int {
	return e.pixels
}

// Written returns the number of byte literals written so far.
func (e *Emitter) Written() int {
	return e.written
}

// AtLineStart reports whether the output currently ends with a line break,
// or nothing was written yet.
func (e *Emitter) AtLineStart() bool {
	return e.lineStart
}

// Flush writes any buffered text to the underlying writer. It returns the
// first write error seen by the Emitter.
func (e *Emitter) Flush() error {
	return e.w.Flush()
}
