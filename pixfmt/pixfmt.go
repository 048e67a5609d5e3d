package pixfmt

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrUnknownFormat is returned by ParseFormat for tokens that do not name a
// supported format.
var ErrUnknownFormat = errors.New("pixfmt: unknown color format")

// Format is a packed color encoding.
//
// The zero value is RGB888.
type Format int

const (
	RGB888 Format = iota
	RGB666
	RGB565
	RGB555
	RGB444
)

// Formats lists every supported format in declaration order.
var Formats = []Format{RGB888, RGB666, RGB565, RGB555, RGB444}

var formatNames = [...]string{
	RGB888: "888",
	RGB666: "666",
	RGB565: "565",
	RGB555: "555",
	RGB444: "444",
}

// String returns the numeric token of the format, e.g. "565".
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	return f >= RGB888 && f <= RGB444
}

// Bits returns the channel widths of f.
func (f Format) Bits() (r, g, b uint) {
	switch f {
	case RGB666:
		return 6, 6, 6
	case RGB565:
		return 5, 6, 5
	case RGB555:
		return 5, 5, 5
	case RGB444:
		return 4, 4, 4
	default:
		return 8, 8, 8
	}
}

// ByteCount returns the exact number of bytes an image of the given pixel
// count encodes to.
//
// A trailing unpaired 444 pixel is not counted.
func (f Format) ByteCount(pixels int) int {
	if pixels <= 0 {
		return 0
	}
	switch f {
	case RGB565, RGB555:
		return pixels * 2
	case RGB444:
		return pixels / 2 * 3
	default:
		return pixels * 3
	}
}

// ParseFormat parses a format token such as "565" or "rgb565".
func ParseFormat(s string) (Format, error) {
	t := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "rgb")
	for f, name := range formatNames {
		if t == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// Scale reduces an 8-bit channel value to bits wide, rounding half up.
//
// The result is floor((v*(2^bits-1) + 127) / 255). bits must be in 1..8.
func Scale(v uint8, bits uint) uint8 {
	top := uint32(1)<<bits - 1
	return uint8((uint32(v)*top + 127) / 255)
}

// Order returns the channels with red and blue exchanged when swap is set.
func Order(r, g, b uint8, swap bool) (uint8, uint8, uint8) {
	if swap {
		return b, g, r
	}
	return r, g, b
}

// Pixel is an opaque 8-bit RGB color.
type Pixel struct {
	R, G, B uint8
}

// RGBA implements color.Color. The pixel is always fully opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R) * 0x101
	g = uint32(p.G) * 0x101
	b = uint32(p.B) * 0x101
	return r, g, b, 0xFFFF
}

// toPixel converts any color.Color to Pixel.
// Channels are taken un-premultiplied and alpha is discarded.
func toPixel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B}
}

// PixelModel converts colors to Pixel.
var PixelModel = color.ModelFunc(toPixel)
