// Package imgbytes renders images as source code byte arrays for display
// controllers.
//
// Small TFT and OLED panels are usually fed from constant arrays compiled
// into the firmware. This package reads an image row by row, packs every
// pixel into the panel's color encoding and writes the result as text that
// can be pasted into a C, C++ or Go source file.
//
// # Output
//
// The output starts with a comment line naming the image, its size, the
// channel order, the format and the exact number of bytes that follow:
//
//	//logo - 4x2 - RGB:565 (16 bytes)
//	0xF8,0x00,0x07,0xE0,0x00,0x1F,0xFF,0xFF,0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00
//
// Every byte is written as "0x" and two upper case hex digits. Bytes are
// separated by commas and the last byte has none. A line break follows every
// Opts.PixelsPerLine pixels that produced output. In the 444 format only the
// second pixel of each pair produces output, so a line holds
// Opts.PixelsPerLine pairs.
//
// # Color Formats
//
// See package pixfmt for the supported encodings:
//
//	Opts{Format: pixfmt.RGB888} // 3 bytes per pixel (default)
//	Opts{Format: pixfmt.RGB666} // 3 bytes per pixel, 6 bits used in each
//	Opts{Format: pixfmt.RGB565} // 2 bytes per pixel
//	Opts{Format: pixfmt.RGB555} // 2 bytes per pixel, top bit zero
//	Opts{Format: pixfmt.RGB444} // 3 bytes per 2 pixels
//
// Set Opts.BGR to exchange red and blue, and Opts.LowByteFirst to emit the
// low byte of 565 and 555 words first.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"image"
//		_ "image/png"
//		"os"
//
//		"github.com/flavioheleno/imgbytes"
//		"github.com/flavioheleno/imgbytes/pixfmt"
//	)
//
//	func main() {
//		f, _ := os.Open("logo.png")
//		defer f.Close()
//		img, _, _ := image.Decode(f)
//
//		imgbytes.Convert(os.Stdout, img, &imgbytes.Opts{
//			Format:        pixfmt.RGB565,
//			PixelsPerLine: 16,
//			Name:          "logo",
//		})
//	}
//
// # Drawing Frames
//
// Dev implements the display.Drawer interface from periph.io. Code written
// against a real panel can draw on a Dev instead, and every distinct frame is
// written out as its own array:
//
//	dev, _ := imgbytes.NewWriter(os.Stdout, &imgbytes.Opts{W: 128, H: 64, Format: pixfmt.RGB565})
//	defer dev.Halt()
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// Frames identical to the previous one are skipped. The first frame is named
// after Opts.Name, the following ones get a _1, _2, ... suffix.
//
// # Logging
//
// The package is silent unless a logger is installed with SetLogger.
package imgbytes
