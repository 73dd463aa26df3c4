// Package probe inspects image files without fully decoding them.
package probe

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/rwcarlsen/goexif/exif"

	// Header decoders for every sniffable format.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Info describes a probed image file.
type Info struct {
	Path   string
	Format string
	Width  int
	Height int
	Size   int64
	Camera string
}

// File reads the image header at path and returns its dimensions and the
// registry name of its format. The EXIF block, when present, supplies the
// camera model; EXIF failures are not errors.
func File(path string) (*Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file: %w", err)
	}
	defer f.Close()

	cfg, name, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read image header: %w", err)
	}

	return &Info{
		Path:   path,
		Format: name,
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   st.Size(),
		Camera: cameraModel(f),
	}, nil
}

func cameraModel(f *os.File) string {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return ""
	}
	x, err := exif.Decode(f)
	if err != nil {
		return ""
	}
	tag, err := x.Get(exif.Model)
	if err != nil {
		return ""
	}
	model, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return model
}
