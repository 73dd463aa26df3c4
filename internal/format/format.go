// Package format defines the supported output image formats and the rules
// for resolving a format from a destination path.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an output image format by its canonical lowercase name.
type Format string

// The supported output formats.
const (
	BMP  Format = "bmp"
	GIF  Format = "gif"
	JPEG Format = "jpeg"
	PNG  Format = "png"
	PNM  Format = "pnm"
	RAW  Format = "raw"
	SGI  Format = "sgi"
	TGA  Format = "tga"
	TIFF Format = "tiff"
)

// ErrUnsupported reports a format outside the supported set.
var ErrUnsupported = errors.New("unsupported image format")

var supported = map[Format]bool{
	BMP:  true,
	GIF:  true,
	JPEG: true,
	PNG:  true,
	PNM:  true,
	RAW:  true,
	SGI:  true,
	TGA:  true,
	TIFF: true,
}

// All returns the supported formats in stable order.
func All() []Format {
	return []Format{BMP, GIF, JPEG, PNG, PNM, RAW, SGI, TGA, TIFF}
}

// Parse validates s against the supported set. The match is exact and
// case-sensitive; "JPEG" and "jpg" are both rejected.
func Parse(s string) (Format, error) {
	f := Format(s)
	if !supported[f] {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	return f, nil
}

// FromPath derives a format from the file extension of path. The extension
// is lower-cased and "jpg" maps to "jpeg"; everything else must name a
// supported format exactly.
func FromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "jpg" {
		ext = "jpeg"
	}
	return Parse(ext)
}

func (f Format) String() string {
	return string(f)
}
