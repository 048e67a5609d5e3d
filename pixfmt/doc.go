// Package pixfmt converts 8-bit RGB pixels into the packed color encodings
// accepted by small display controllers.
//
// Five formats are supported. Each one fixes the channel widths and the byte
// layout of one encoded pixel:
//
//	Format  Bits (R,G,B)  Bytes per pixel  Layout
//	888     8,8,8         3                R, G, B
//	666     6,6,6         3                R, G, B (one channel per byte, 0-63)
//	565     5,6,5         2                R<<11 | G<<5 | B, split in two bytes
//	555     5,5,5         2                R<<10 | G<<5 | B, top bit zero
//	444     4,4,4         3 per 2 pixels   R1 G1 B1 R2 G2 B2, one nibble each
//
// Memory layout example for two 444 pixels:
//
//	Pixels: (15,8,0)  (1,2,3)
//	Value:  0xF80123
//	Bytes:  0xF8 0x01 0x23
//
// Channels are scaled with Scale, then optionally exchanged with Order, then
// packed by an Encoder. The 444 Encoder keeps the first pixel of a pair until
// the second one arrives.
//
// Example usage:
//
//	enc := pixfmt.NewEncoder(pixfmt.RGB565, false, true)
//	b, ok := enc.Encode(pixfmt.Pixel{R: 0xFF, G: 0x80, B: 0x00})
//	if ok {
//		fmt.Printf("% X\n", b) // Output: 00 FC
//	}
package pixfmt
