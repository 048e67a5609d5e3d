package pixfmt

import (
	"bytes"
	"testing"
)

// sample scales to R=21, G=30 (6 bits) / 15 (5 bits), B=13, which packs to
// 0xABCD in 565 and 0x55ED in 555.
var sample = Pixel{R: 170, G: 121, B: 105}

func TestEncoderSinglePixel(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		swap     bool
		lowFirst bool
		in       Pixel
		want     []byte
	}{
		{"888", RGB888, false, false, Pixel{0x12, 0x34, 0x56}, []byte{0x12, 0x34, 0x56}},
		{"888 bgr", RGB888, true, false, Pixel{0x12, 0x34, 0x56}, []byte{0x56, 0x34, 0x12}},
		{"888 low first ignored", RGB888, false, true, Pixel{0x12, 0x34, 0x56}, []byte{0x12, 0x34, 0x56}},
		{"666", RGB666, false, false, sample, []byte{0x2A, 0x1E, 0x1A}},
		{"666 bgr", RGB666, true, false, sample, []byte{0x1A, 0x1E, 0x2A}},
		{"666 white", RGB666, false, false, Pixel{255, 255, 255}, []byte{0x3F, 0x3F, 0x3F}},
		{"565 high first", RGB565, false, false, sample, []byte{0xAB, 0xCD}},
		{"565 low first", RGB565, false, true, sample, []byte{0xCD, 0xAB}},
		{"565 bgr", RGB565, true, false, sample, []byte{0x6B, 0xD5}},
		{"565 white", RGB565, false, false, Pixel{255, 255, 255}, []byte{0xFF, 0xFF}},
		{"555 high first", RGB555, false, false, sample, []byte{0x55, 0xED}},
		{"555 low first", RGB555, false, true, sample, []byte{0xED, 0x55}},
		{"555 white top bit clear", RGB555, false, false, Pixel{255, 255, 255}, []byte{0x7F, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := NewEncoder(tt.format, tt.swap, tt.lowFirst)
			got, ok := enc.Encode(tt.in)
			if !ok {
				t.Fatal("Encode() reported no output")
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%v) = % X, want % X", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncoder444Pairing(t *testing.T) {
	enc := NewEncoder(RGB444, false, false)

	if _, ok := enc.Pending(); ok {
		t.Fatal("new encoder should not hold a pixel")
	}

	b, ok := enc.Encode(Pixel{255, 255, 255})
	if ok || len(b) != 0 {
		t.Fatalf("first pixel of pair: Encode() = % X, %v, want no output", b, ok)
	}
	p, ok := enc.Pending()
	if !ok || p != (Pixel{15, 15, 15}) {
		t.Fatalf("Pending() = %v, %v, want {15 15 15}, true", p, ok)
	}

	b, ok = enc.Encode(Pixel{0, 0, 0})
	if !ok {
		t.Fatal("second pixel of pair produced no output")
	}
	if want := []byte{0xFF, 0xF0, 0x00}; !bytes.Equal(b, want) {
		t.Errorf("pair = % X, want % X", b, want)
	}
	if _, ok := enc.Pending(); ok {
		t.Error("encoder should be empty after a complete pair")
	}

	// The state machine alternates for the rest of the stream
	for i := 0; i < 6; i++ {
		_, ok := enc.Encode(Pixel{})
		if want := i%2 == 1; ok != want {
			t.Errorf("call %d: ok = %v, want %v", i, ok, want)
		}
	}
}

func TestEncoder444Layout(t *testing.T) {
	enc := NewEncoder(RGB444, false, false)
	enc.Encode(Pixel{255, 136, 0})
	b, _ := enc.Encode(Pixel{17, 34, 51})
	if want := []byte{0xF8, 0x01, 0x23}; !bytes.Equal(b, want) {
		t.Errorf("pair = % X, want % X", b, want)
	}
}

func TestEncoder444SwapPerPixel(t *testing.T) {
	red := Pixel{255, 0, 0}
	blue := Pixel{0, 0, 255}

	tests := []struct {
		name string
		swap bool
		want []byte
	}{
		{"rgb", false, []byte{0xF0, 0x00, 0x0F}},
		{"bgr", true, []byte{0x00, 0xFF, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := NewEncoder(RGB444, tt.swap, false)
			enc.Encode(red)
			b, ok := enc.Encode(blue)
			if !ok || !bytes.Equal(b, tt.want) {
				t.Errorf("Encode() = % X, %v, want % X, true", b, ok, tt.want)
			}
		})
	}
}

func TestEncoderReset(t *testing.T) {
	enc := NewEncoder(RGB444, false, false)
	enc.Encode(Pixel{1, 2, 3})
	enc.Reset()
	if _, ok := enc.Pending(); ok {
		t.Error("Reset() kept the pending pixel")
	}
	if _, ok := enc.Encode(Pixel{}); ok {
		t.Error("first pixel after Reset() produced output")
	}
}

func TestEncoderFormat(t *testing.T) {
	for _, f := range Formats {
		if got := NewEncoder(f, false, false).Format(); got != f {
			t.Errorf("Format() = %v, want %v", got, f)
		}
	}
}
