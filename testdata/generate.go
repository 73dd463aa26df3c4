// This program generates a small sample pool under testdata/pool for trying
// the CLI by hand:
//
//	go run testdata/generate.go
//	imgpick emit --source testdata/pool --count 3 out.png
//
//go:build ignore

package main

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

func main() {
	dir := filepath.Join("testdata", "pool")
	os.MkdirAll(filepath.Join(dir, "nested"), 0755)

	// A blue sky with green ground
	generateSkyGround(filepath.Join(dir, "landscape.jpg"))

	// A warm orange/red gradient
	generateSunset(filepath.Join(dir, "sunset.png"))

	// A bright red frame
	generateSolidColor(filepath.Join(dir, "red.png"), color.RGBA{220, 30, 30, 255})

	// A dark frame
	generateSolidColor(filepath.Join(dir, "dark.png"), color.RGBA{15, 15, 30, 255})

	// An image below the top level, to exercise the recursive walk
	generateSolidColor(filepath.Join(dir, "nested", "deep.png"), color.RGBA{100, 150, 220, 255})

	// A non-image file; it joins the pool and fails to decode when reached
	os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("not an image"), 0644)
}

func generateSkyGround(path string) {
	img := image.NewRGBA(image.Rect(0, 0, 320, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 320; x++ {
			if y < 100 {
				b := uint8(180 + y/3)
				img.Set(x, y, color.RGBA{100, 150, b, 255})
			} else {
				g := uint8(100 + (200-y)/3)
				img.Set(x, y, color.RGBA{50, g, 30, 255})
			}
		}
	}
	saveJPEG(path, img)
}

func generateSunset(path string) {
	img := image.NewRGBA(image.Rect(0, 0, 320, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 320; x++ {
			r := uint8(255 - y/3)
			g := uint8(100 + int(80*math.Sin(float64(y)/30)))
			b := uint8(50 + y/4)
			img.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}
	savePNG(path, img)
}

func generateSolidColor(path string, c color.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, 320, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 320; x++ {
			img.Set(x, y, c)
		}
	}
	if filepath.Ext(path) == ".png" {
		savePNG(path, img)
	} else {
		saveJPEG(path, img)
	}
}

func saveJPEG(path string, img image.Image) {
	f, _ := os.Create(path)
	defer f.Close()
	jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func savePNG(path string, img image.Image) {
	f, _ := os.Create(path)
	defer f.Close()
	png.Encode(f, img)
}
