// Package testfixture provides small named textures shared by the dicer,
// packer, mesh and end-to-end test suites, mirroring the single-pixel
// literal fixtures (B, R, G, Y, T, ...) used throughout the original
// dicing library's own test suite.
package testfixture

import "github.com/dantero/spritedicer/internal/model"

var (
	R = model.Pixel{R: 255, G: 0, B: 0, A: 255}
	G = model.Pixel{R: 0, G: 255, B: 0, A: 255}
	B = model.Pixel{R: 0, G: 0, B: 255, A: 255}
	Y = model.Pixel{R: 255, G: 255, B: 0, A: 255}
	C = model.Pixel{R: 0, G: 255, B: 255, A: 255}
	M = model.Pixel{R: 255, G: 0, B: 255, A: 255}
	T = model.Pixel{}
)

// Grid builds a texture from row-major pixels, width wide.
func Grid(width uint32, pixels ...model.Pixel) model.Texture {
	height := uint32(len(pixels)) / width
	return model.Texture{Width: width, Height: height, Pixels: pixels}
}

// Solid builds a width x height texture of a single color.
func Solid(width, height uint32, p model.Pixel) model.Texture {
	pixels := make([]model.Pixel, width*height)
	for i := range pixels {
		pixels[i] = p
	}
	return model.Texture{Width: width, Height: height, Pixels: pixels}
}

// R1X1, B1X1, Y1X1, C1X1, M1X1: single opaque pixel textures.
var (
	R1X1 = Solid(1, 1, R)
	B1X1 = Solid(1, 1, B)
	Y1X1 = Solid(1, 1, Y)
	C1X1 = Solid(1, 1, C)
	M1X1 = Solid(1, 1, M)
	TTTT = Grid(2, T, T, T, T)
)

// RGBY is a 2x2 texture with R, G, B, Y at (0,0), (1,0), (0,1), (1,1).
var RGBY = Grid(2, R, G, B, Y)

// BGRT and BTGR are 2x2 textures with one fully transparent cell, used to
// verify transparent units are dropped regardless of their position.
var (
	BGRT = Grid(2, B, G, R, T)
	BTGR = Grid(2, B, T, G, R)
)

// RTBT is a 2x2 texture whose entire right column is transparent, so its
// trimmed bounding box (left column only) differs from its full size.
var RTBT = Grid(2, R, T, B, T)

// RGB1X3 and RGB3X1 each hold 3 distinct opaque colors along one axis.
var (
	RGB1X3 = Grid(1, R, G, B)
	RGB3X1 = Grid(3, R, G, B)
)

// RGB4X4 is 4x4 but cycles through only 3 distinct colors, so dicing at
// unit_size=1 yields 16 units with exactly 3 unique hashes.
var RGB4X4 = func() model.Texture {
	cycle := []model.Pixel{R, G, B}
	pixels := make([]model.Pixel, 16)
	for i := range pixels {
		pixels[i] = cycle[i%3]
	}
	return Grid(4, pixels...)
}()

// PLT4X4 is 4x4 with 16 distinct colors, so every unit is unique.
var PLT4X4 = func() model.Texture {
	pixels := make([]model.Pixel, 16)
	for i := range pixels {
		pixels[i] = model.Pixel{R: uint8(i * 16), G: uint8(255 - i*16), B: uint8(i * 7), A: 255}
	}
	return Grid(4, pixels...)
}()

// Sprite wraps a texture as a SourceSprite with the given ID and no pivot
// override.
func Sprite(id string, tex model.Texture) model.SourceSprite {
	return model.SourceSprite{ID: id, Texture: tex}
}
