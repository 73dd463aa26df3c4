package codec

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"imgpick/internal/format"
)

// testImage returns a small gradient so encoded files have non-trivial
// pixel data.
func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	codec := NewStd()
	src := testImage(8, 6)

	for _, f := range format.All() {
		if !CanDecode(f) {
			continue
		}
		path := filepath.Join(dir, "out."+string(f))
		if err := codec.Encode(src, path, f); err != nil {
			t.Fatalf("Encode(%s) failed: %v", f, err)
		}
		got, err := codec.Decode(path)
		if err != nil {
			t.Fatalf("Decode(%s) failed: %v", f, err)
		}
		b := got.Bounds()
		if b.Dx() != 8 || b.Dy() != 6 {
			t.Errorf("%s round trip: got %dx%d, want 8x6", f, b.Dx(), b.Dy())
		}
	}
}

func TestEncodeSGI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.sgi")
	img := testImage(8, 6)

	if err := NewStd().Encode(img, path, format.SGI); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	want := 512 + 3*8*6
	if len(data) != want {
		t.Fatalf("file size = %d, want %d", len(data), want)
	}
	if magic := binary.BigEndian.Uint16(data[0:2]); magic != sgiMagic {
		t.Errorf("magic = %d, want %d", magic, sgiMagic)
	}
	if data[2] != 0 || data[3] != 1 {
		t.Errorf("storage/bpc = %d/%d, want 0/1", data[2], data[3])
	}
	if x := binary.BigEndian.Uint16(data[6:8]); x != 8 {
		t.Errorf("xsize = %d, want 8", x)
	}
	if y := binary.BigEndian.Uint16(data[8:10]); y != 6 {
		t.Errorf("ysize = %d, want 6", y)
	}
	if z := binary.BigEndian.Uint16(data[10:12]); z != 3 {
		t.Errorf("zsize = %d, want 3", z)
	}

	// Scanlines are bottom-up: the first stored red sample belongs to the
	// bottom-left source pixel.
	r, _, _, _ := img.At(0, 5).RGBA()
	if data[512] != uint8(r>>8) {
		t.Errorf("first red sample = %d, want %d", data[512], uint8(r>>8))
	}
}

func TestEncodeRaw(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.raw")
	img := testImage(8, 6)

	if err := NewStd().Encode(img, path, format.RAW); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	if want := 8 * 6 * 4; len(data) != want {
		t.Fatalf("file size = %d, want %d", len(data), want)
	}
	r, g, b, a := img.At(0, 0).RGBA()
	got := [4]byte{data[0], data[1], data[2], data[3]}
	want := [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	if got != want {
		t.Errorf("first pixel = %v, want %v", got, want)
	}
}

func TestDecodeTGAWithoutMagic(t *testing.T) {
	// TGA files carry no signature the image registry can sniff, so Decode
	// must fall back to the extension.
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.tga")
	codec := NewStd()

	if err := codec.Encode(testImage(4, 4), path, format.TGA); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	img, err := codec.Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("got %dx%d, want 4x4", b.Dx(), b.Dy())
	}
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := NewStd().Decode(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want wrapped fs.ErrNotExist", err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.png")
	if err := os.WriteFile(path, []byte("not an image at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStd().Decode(path); err == nil {
		t.Fatal("expected decode error for non-image data")
	}
}

func TestEncodeFailureLeavesNoFile(t *testing.T) {
	// Images wider than 65535 cannot be described by the sgi header, so the
	// encode fails partway. The destination must not exist afterwards.
	dir := t.TempDir()
	path := filepath.Join(dir, "huge.sgi")
	img := image.NewRGBA(image.Rect(0, 0, 70000, 1))

	if err := NewStd().Encode(img, path, format.SGI); err == nil {
		t.Fatal("expected encode error")
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("destination exists after failed encode")
	}
}

func TestCanDecode(t *testing.T) {
	for _, f := range format.All() {
		want := f != format.RAW && f != format.SGI
		if got := CanDecode(f); got != want {
			t.Errorf("CanDecode(%s) = %v, want %v", f, got, want)
		}
	}
}
