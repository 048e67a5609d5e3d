package pixfmt

// Encoder packs a stream of pixels into bytes of one Format.
//
// An Encoder is owned by a single conversion and is not safe for concurrent
// use. Only RGB444 carries state between calls: the first pixel of each pair
// is held until the second one arrives.
type Encoder struct {
	format       Format
	swap         bool
	lowByteFirst bool

	// RGB444 pairing state
	first   Pixel // first pixel of the current pair, already scaled and ordered
	holding bool

	buf [3]byte
}

// NewEncoder returns an Encoder for f. swap exchanges red and blue on every
// pixel. lowByteFirst only affects RGB565 and RGB555.
func NewEncoder(f Format, swap, lowByteFirst bool) *Encoder {
	return &Encoder{format: f, swap: swap, lowByteFirst: lowByteFirst}
}

// Format returns the encoder's format.
func (e *Encoder) Format() Format {
	return e.format
}

// Encode consumes one pixel and returns the bytes it produced.
//
// ok is false when the pixel produced nothing, which only happens for the
// first pixel of a 444 pair. The returned slice is reused by the next call.
func (e *Encoder) Encode(p Pixel) (b []byte, ok bool) {
	rb, gb, bb := e.format.Bits()
	q := quantize(p, rb, gb, bb, e.swap)
	switch e.format {
	case RGB565:
		return e.word(uint16(q.R)<<11 | uint16(q.G)<<5 | uint16(q.B)), true
	case RGB555:
		return e.word(uint16(q.R)<<10 | uint16(q.G)<<5 | uint16(q.B)), true
	case RGB444:
		return e.pair(q)
	default:
		// RGB888 scales to 8 bits, which leaves every channel unchanged
		return e.triple(q), true
	}
}

// Pending returns the unpaired 444 pixel held by the encoder, if any.
// A pending pixel left at the end of an image is never encoded.
func (e *Encoder) Pending() (Pixel, bool) {
	return e.first, e.holding
}

// Reset drops any pending pixel.
func (e *Encoder) Reset() {
	e.first = Pixel{}
	e.holding = false
}

func (e *Encoder) triple(p Pixel) []byte {
	e.buf[0], e.buf[1], e.buf[2] = p.R, p.G, p.B
	return e.buf[:3]
}

func (e *Encoder) word(v uint16) []byte {
	hi, lo := byte(v>>8), byte(v)
	if e.lowByteFirst {
		e.buf[0], e.buf[1] = lo, hi
	} else {
		e.buf[0], e.buf[1] = hi, lo
	}
	return e.buf[:2]
}

func (e *Encoder) pair(p Pixel) ([]byte, bool) {
	if !e.holding {
		e.first = p
		e.holding = true
		return nil, false
	}
	f := e.first
	e.Reset()
	v := uint32(f.R)<<20 | uint32(f.G)<<16 | uint32(f.B)<<12 |
		uint32(p.R)<<8 | uint32(p.G)<<4 | uint32(p.B)
	e.buf[0], e.buf[1], e.buf[2] = byte(v>>16), byte(v>>8), byte(v)
	return e.buf[:3], true
}

// quantize scales each channel to its width, then applies the channel order.
func quantize(p Pixel, rb, gb, bb uint, swap bool) Pixel {
	r, g, b := Order(Scale(p.R, rb), Scale(p.G, gb), Scale(p.B, bb), swap)
	return Pixel{R: r, G: g, B: b}
}
