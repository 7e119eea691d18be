// Package imageio converts between decoded image.Image values and the
// core Texture pixel buffer, registering every codec the CLI supports.
package imageio

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/dantero/spritedicer/internal/model"
)

// Load decodes an image file into a Texture. The decoder is chosen from the
// file's content, not its extension.
func Load(path string) (model.Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.Texture{}, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return model.Texture{}, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return fromImage(img), nil
}

// Save encodes a Texture as a PNG file, creating any missing parent
// directories.
func Save(path string, tex model.Texture) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create atlas file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, toImage(tex)); err != nil {
		return fmt.Errorf("failed to encode atlas %s: %w", path, err)
	}
	return nil
}

func fromImage(img image.Image) model.Texture {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	width := uint32(bounds.Dx())
	height := uint32(bounds.Dy())
	tex := model.NewTexture(width, height)
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			o := rgba.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			tex.Pixels[y*int(width)+x] = model.Pixel{
				R: rgba.Pix[o],
				G: rgba.Pix[o+1],
				B: rgba.Pix[o+2],
				A: rgba.Pix[o+3],
			}
		}
	}
	return tex
}

func toImage(tex model.Texture) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, int(tex.Width), int(tex.Height)))
	for y := 0; y < int(tex.Height); y++ {
		for x := 0; x < int(tex.Width); x++ {
			p := tex.Pixels[y*int(tex.Width)+x]
			o := rgba.PixOffset(x, y)
			rgba.Pix[o] = p.R
			rgba.Pix[o+1] = p.G
			rgba.Pix[o+2] = p.B
			rgba.Pix[o+3] = p.A
		}
	}
	return rgba
}
