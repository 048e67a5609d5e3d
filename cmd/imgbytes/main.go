// Command imgbytes converts an image file into a source code byte array.
//
// Usage:
//
//	imgbytes <image> [-f<n>] [-b<n>] [-bgr] [-l]
//
// Example:
//
//	imgbytes logo.png -f565 -b20 > logo565.txt
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	errorsGo "github.com/go-errors/errors"
	"github.com/nfnt/resize"
	"github.com/spf13/cobra"

	"github.com/flavioheleno/imgbytes"
	"github.com/flavioheleno/imgbytes/pixfmt"
)

const version = "v1.0"

type options struct {
	format   string
	line     string
	bgr      bool
	lowFirst bool
	output   string
	name     string
	size     string
	verbose  bool
	debug    bool
}

func main() {
	cmd, o := newRootCmd(os.Stdout, os.Stderr)
	cmd.SetArgs(legacyArgs(os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		report(os.Stderr, err, o.debug)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *options) {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "imgbytes <image> [flags]",
		Short: "convert an image to a source code byte array",
		Long: `imgbytes converts an image (.png, .jpg, .gif, .bmp, .tiff, .webp) into
comma separated 0xHH literals for a display controller.`,
		Example: `  imgbytes logo.png -f565 -b20 > logo565.txt
  imgbytes icon.bmp --format 444 --bgr -o icon.txt`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(c, err)
	})

	f := cmd.Flags()
	f.StringVarP(&o.format, "format", "f", pixfmt.RGB888.String(), "output format: 888, 666, 565, 555 or 444")
	f.StringVarP(&o.line, "line", "b", strconv.Itoa(imgbytes.DefaultPixelsPerLine), "pixels per output line (1 <= n)")
	f.BoolVar(&o.bgr, "bgr", false, "emit BGR instead of RGB")
	f.BoolVarP(&o.lowFirst, "low-byte-first", "l", false, "emit the low byte first (565 and 555 only)")
	f.StringVarP(&o.output, "output", "o", "", "write to a file instead of stdout")
	f.StringVarP(&o.name, "name", "n", "", "name in the header line (default: image file name)")
	f.StringVarP(&o.size, "size", "s", "", "resize to WxH before converting, 0 keeps the aspect ratio")
	f.BoolVar(&o.verbose, "verbose", false, "log progress to stderr")
	f.BoolVar(&o.debug, "debug", false, "print error stack traces")
	return cmd, o
}

func run(cmd *cobra.Command, o *options, args []string) error {
	if len(args) == 0 {
		if cmd.Flags().NFlag() == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "imgbytes %s\n", version)
			return cmd.Usage()
		}
		return usageError(cmd, errors.New("no image file specified"))
	}
	if o.verbose {
		imgbytes.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	format, err := pixfmt.ParseFormat(o.format)
	if err != nil {
		return usageError(cmd, err)
	}
	var w, h uint
	if o.size != "" {
		if w, h, err = parseSize(o.size); err != nil {
			return usageError(cmd, err)
		}
	}

	path := args[0]
	img, err := loadImage(path)
	if err != nil {
		return errorsGo.WrapPrefix(err, "cannot load image "+path, 0)
	}
	if o.size != "" {
		img = resize.Resize(w, h, img, resize.Lanczos3)
		imgbytes.Logger().Debug("resized image", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	}

	name := o.name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	opts := &imgbytes.Opts{
		Format:        format,
		BGR:           o.bgr,
		LowByteFirst:  o.lowFirst,
		PixelsPerLine: imgbytes.ParsePixelsPerLine(o.line),
		Name:          name,
	}

	out := cmd.OutOrStdout()
	var file *os.File
	if o.output != "" {
		if file, err = os.Create(o.output); err != nil {
			return errorsGo.Wrap(err, 0)
		}
		defer file.Close()
		out = file
	}

	st, err := imgbytes.Convert(out, img, opts)
	if err != nil {
		return errorsGo.Wrap(err, 0)
	}
	imgbytes.Logger().Debug("done", "pixels", st.Pixels, "bytes", st.Bytes, "dropped", st.Dropped)

	if file != nil {
		if err := file.Close(); err != nil {
			return errorsGo.Wrap(err, 0)
		}
	}
	return nil
}

// usageError prints the usage text and returns err.
func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	return errorsGo.Wrap(err, 1)
}

// report prints err, with its stack trace when debug is set.
func report(w io.Writer, err error, debug bool) {
	var goErr *errorsGo.Error
	if debug && errors.As(err, &goErr) {
		fmt.Fprintln(w, goErr.ErrorStack())
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

// legacyArgs rewrites the single dash spellings accepted by earlier
// versions, such as -bgr, -L and a bare -b, into their flag equivalents.
func legacyArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a == "-b" {
			// A bare -b carries no value; an empty one falls back to the default
			out = append(out, "--line=")
			continue
		}
		switch strings.ToLower(a) {
		case "":
			continue
		case "-bgr":
			a = "--bgr"
		case "-l":
			a = strings.ToLower(a)
		}
		out = append(out, a)
	}
	return out
}

// parseSize parses "WxH". Either side may be 0 to keep the aspect ratio,
// but not both.
func parseSize(s string) (w, h uint, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q is not WxH", s)
	}
	w64, err := strconv.ParseUint(ws, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: bad width: %w", s, err)
	}
	h64, err := strconv.ParseUint(hs, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: bad height: %w", s, err)
	}
	if w64 == 0 && h64 == 0 {
		return 0, 0, fmt.Errorf("size %q: width and height are both 0", s)
	}
	return uint(w64), uint(h64), nil
}
