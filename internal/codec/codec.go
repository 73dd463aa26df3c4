// Package codec provides the image decode/encode boundary. The picker core
// depends only on the Codec interface; Std is the bundled implementation
// built on the standard image registry plus the extra encoders the supported
// format set needs.
package codec

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	pnm "github.com/jbuchbinder/gopnm"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"imgpick/internal/fileutil"
	"imgpick/internal/format"
)

// jpegQuality is the fixed quality for JPEG output.
const jpegQuality = 90

// Codec decodes source images and encodes them to destination paths.
type Codec interface {
	Decode(path string) (image.Image, error)
	Encode(img image.Image, path string, f format.Format) error
}

// Std is the bundled codec.
type Std struct{}

// NewStd returns the bundled codec.
func NewStd() *Std {
	return &Std{}
}

// Decode reads and decodes the image file at path. Formats without magic
// bytes the registry can sniff (tga, pnm) are retried by extension.
func (Std) Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err == nil {
		return img, nil
	}

	if fallback := decodeByExtension(f, path); fallback != nil {
		return fallback, nil
	}
	return nil, fmt.Errorf("cannot decode image: %w", err)
}

func decodeByExtension(f *os.File, path string) image.Image {
	var decode func(io.Reader) (image.Image, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tga":
		decode = tga.Decode
	case ".pnm", ".ppm", ".pgm", ".pbm":
		decode = pnm.Decode
	default:
		return nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil
	}
	img, err := decode(f)
	if err != nil {
		return nil
	}
	return img
}

// Encode writes img to path in the given format. The write is atomic: a
// failed encode leaves no file at path.
func (Std) Encode(img image.Image, path string, f format.Format) error {
	return fileutil.WriteAtomic(path, func(w io.Writer) error {
		return encode(w, img, f)
	})
}

func encode(w io.Writer, img image.Image, f format.Format) error {
	switch f {
	case format.BMP:
		return bmp.Encode(w, img)
	case format.GIF:
		return gif.Encode(w, img, nil)
	case format.JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case format.PNG:
		return png.Encode(w, img)
	case format.PNM:
		return pnm.Encode(w, img, pnm.PPM)
	case format.RAW:
		return encodeRaw(w, img)
	case format.SGI:
		return encodeSGI(w, img)
	case format.TGA:
		return tga.Encode(w, img)
	case format.TIFF:
		return tiff.Encode(w, img, nil)
	}
	return fmt.Errorf("no encoder for format %q", f)
}

// CanDecode reports whether the bundled codec can read files of the given
// format.
func CanDecode(f format.Format) bool {
	switch f {
	case format.RAW, format.SGI:
		return false
	}
	return true
}
