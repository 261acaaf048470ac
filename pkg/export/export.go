package export

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for file extensions with no encoder
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format identifies an output encoding
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	return "image/" + string(f)
}

// Options control how an image is written
type Options struct {
	// FlipVertical writes the image bottom row first, for consumers that
	// expect a bottom-up origin
	FlipVertical bool
	// JPEGQuality is used for JPEG output; 0 means the encoder default
	JPEGQuality int
}

// FormatFromPath picks an encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format, opts Options) error {
	if opts.FlipVertical {
		img = FlipVertical(img)
	}

	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		var jpegOpts *jpeg.Options
		if opts.JPEGQuality > 0 {
			jpegOpts = &jpeg.Options{Quality: opts.JPEGQuality}
		}
		return jpeg.Encode(w, img, jpegOpts)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save writes img to path, creating parent directories and choosing the
// encoding from the extension
func Save(path string, img image.Image, opts Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	return encodeAndClose(file, img, format, opts)
}

// encodeAndClose encodes into wc and always closes it. A close failure is
// reported when encoding itself succeeded.
func encodeAndClose(wc io.WriteCloser, img image.Image, format Format, opts Options) (err error) {
	defer func() {
		if closeErr := wc.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	if err := Encode(wc, img, format, opts); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// FlipVertical returns a copy of img with the row order reversed
func FlipVertical(img image.Image) image.Image {
	return imaging.FlipV(img)
}

// Thumbnail scales img down to fit within maxDim x maxDim, keeping the aspect
// ratio. Images already small enough are returned unchanged.
func Thumbnail(img image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		return img
	}
	return resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Bilinear)
}
