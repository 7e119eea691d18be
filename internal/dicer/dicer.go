// Package dicer chops source sprite textures into fixed-size units,
// discards fully transparent ones, and content-hashes the rest.
package dicer

import (
	"github.com/cespare/xxhash/v2"

	"github.com/dantero/spritedicer/internal/model"
	"github.com/dantero/spritedicer/internal/progress"
)

// Dice dices every sprite in sprites, in order, skipping any sprite whose
// units are all fully transparent.
func Dice(sprites []model.SourceSprite, prefs model.Prefs) ([]model.DicedTexture, error) {
	if prefs.UnitSize == 0 {
		return nil, model.ErrUnitSizeZero
	}
	if prefs.Padding > prefs.UnitSize {
		return nil, model.ErrPaddingAboveUnit
	}

	var textures []model.DicedTexture
	for idx, sprite := range sprites {
		progress.Report(prefs, progress.StageDice, idx, len(sprites), "Dicing source textures")
		if texture, ok := diceOne(sprite, prefs); ok {
			textures = append(textures, texture)
		}
	}
	return textures, nil
}

func diceOne(sprite model.SourceSprite, prefs model.Prefs) (model.DicedTexture, bool) {
	size := prefs.UnitSize
	tex := sprite.Texture
	unitCountX := divCeil(tex.Width, size)
	unitCountY := divCeil(tex.Height, size)

	var units []model.DicedUnit
	for x := uint32(0); x < unitCountX; x++ {
		for y := uint32(0); y < unitCountY; y++ {
			if unit, ok := diceAt(x, y, tex, prefs); ok {
				units = append(units, unit)
			}
		}
	}
	if len(units) == 0 {
		return model.DicedTexture{}, false
	}

	unique := make(map[uint64]struct{}, len(units))
	for _, u := range units {
		unique[u.Hash] = struct{}{}
	}

	pivot := sprite.Pivot
	return model.DicedTexture{
		ID:     sprite.ID,
		Size:   model.USize{Width: tex.Width, Height: tex.Height},
		Pivot:  pivot,
		Units:  units,
		Unique: unique,
	}, true
}

func diceAt(unitX, unitY uint32, tex model.Texture, prefs model.Prefs) (model.DicedUnit, bool) {
	size := int32(prefs.UnitSize)
	unitRect := model.IRect{
		X:      int32(unitX) * size,
		Y:      int32(unitY) * size,
		Width:  prefs.UnitSize,
		Height: prefs.UnitSize,
	}

	unitPixels := getPixels(unitRect, tex)
	if allTransparent(unitPixels) {
		return model.DicedUnit{}, false
	}

	hash := hashPixels(unitPixels)
	rect := cropOverBorders(unitRect, tex)
	paddedRect := padRect(unitRect, prefs.Padding)
	pixels := getPixels(paddedRect, tex)

	return model.DicedUnit{Rect: rect, Pixels: pixels, Hash: hash}, true
}

func getPixels(rect model.IRect, tex model.Texture) []model.Pixel {
	pixels := make([]model.Pixel, int(rect.Width)*int(rect.Height))
	idx := 0
	endY := rect.Y + int32(rect.Height)
	endX := rect.X + int32(rect.Width)
	for y := rect.Y; y < endY; y++ {
		for x := rect.X; x < endX; x++ {
			pixels[idx] = tex.At(x, y)
			idx++
		}
	}
	return pixels
}

func allTransparent(pixels []model.Pixel) bool {
	for _, p := range pixels {
		if p.Opaque() {
			return false
		}
	}
	return true
}

func padRect(rect model.IRect, pad uint32) model.IRect {
	return model.IRect{
		X:      rect.X - int32(pad),
		Y:      rect.Y - int32(pad),
		Width:  rect.Width + pad*2,
		Height: rect.Height + pad*2,
	}
}

func cropOverBorders(rect model.IRect, tex model.Texture) model.URect {
	return model.URect{
		X:      uint32(rect.X),
		Y:      uint32(rect.Y),
		Width:  minU32(rect.Width, tex.Width-uint32(rect.X)),
		Height: minU32(rect.Height, tex.Height-uint32(rect.Y)),
	}
}

// hashPixels fingerprints a non-padded unit's pixel sequence. xxhash's
// algorithm carries no per-process seed, so identical pixel bytes hash
// identically across runs and processes, which the packer's determinism
// guarantee depends on.
func hashPixels(pixels []model.Pixel) uint64 {
	buf := make([]byte, 0, len(pixels)*4)
	for _, p := range pixels {
		buf = append(buf, p.R, p.G, p.B, p.A)
	}
	return xxhash.Sum64(buf)
}

func divCeil(a, b uint32) uint32 {
	return (a + b - 1) / b
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
