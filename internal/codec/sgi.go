package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"image"
	"io"
)

// sgiMagic is the IRIS RGB magic number.
const sgiMagic = 474

// sgiHeader is the fixed 512-byte IRIS RGB file header.
type sgiHeader struct {
	Magic     int16
	Storage   uint8
	BPC       uint8
	Dimension uint16
	XSize     uint16
	YSize     uint16
	ZSize     uint16
	PixMin    int32
	PixMax    int32
	Dummy     [4]byte
	Name      [80]byte
	Colormap  int32
	Pad       [404]byte
}

// encodeSGI writes img as an uncompressed 8-bit RGB IRIS image. Channels are
// stored as separate planes and scanlines run bottom to top, per the format.
func encodeSGI(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > 0xFFFF || height > 0xFFFF {
		return errors.New("image too large for sgi encoding")
	}

	bw := bufio.NewWriter(w)
	h := sgiHeader{
		Magic:     sgiMagic,
		Storage:   0, // verbatim, no RLE
		BPC:       1,
		Dimension: 3,
		XSize:     uint16(width),
		YSize:     uint16(height),
		ZSize:     3,
		PixMin:    0,
		PixMax:    255,
	}
	copy(h.Name[:], "imgpick")
	if err := binary.Write(bw, binary.BigEndian, &h); err != nil {
		return err
	}

	row := make([]byte, width)
	for ch := 0; ch < 3; ch++ {
		for y := bounds.Max.Y - 1; y >= bounds.Min.Y; y-- {
			for x := 0; x < width; x++ {
				r, g, b, _ := img.At(bounds.Min.X+x, y).RGBA()
				switch ch {
				case 0:
					row[x] = uint8(r >> 8)
				case 1:
					row[x] = uint8(g >> 8)
				default:
					row[x] = uint8(b >> 8)
				}
			}
			if _, err := bw.Write(row); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
