// Package mesh implements the mesh-builder contract from the dicing
// pipeline's interface boundary: turning packed atlases back into
// per-sprite vertices, UVs and triangle indices.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/dantero/spritedicer/internal/model"
	"github.com/dantero/spritedicer/internal/progress"
)

// Build emits one DicedSprite per DicedTexture packed across all atlases,
// in atlas then packed-order. Every unit.Hash referenced by a packed
// texture is guaranteed present in its atlas's Rects map by the packer; a
// missing entry can only indicate a packer defect, so Build panics rather
// than surfacing a user-facing error for it.
func Build(atlases []model.Atlas, prefs model.Prefs) []model.DicedSprite {
	total := 0
	for _, a := range atlases {
		total += len(a.Packed)
	}

	var sprites []model.DicedSprite
	done := 0
	for atlasIdx, atlas := range atlases {
		for _, tex := range atlas.Packed {
			progress.Report(prefs, progress.StageMesh, done, total, "Building diced sprites")
			sprites = append(sprites, buildOne(tex, atlas, atlasIdx, prefs))
			done++
		}
	}
	return sprites
}

func buildOne(tex model.DicedTexture, atlas model.Atlas, atlasIdx int, prefs model.Prefs) model.DicedSprite {
	pivot := prefs.DefaultPivot
	if tex.Pivot != nil {
		pivot = *tex.Pivot
	}

	basis := meshBasis(tex, prefs.TrimTransparent)
	pivotPx := mgl32.Vec2{
		basis.X + pivot.X*basis.Width,
		basis.Y + pivot.Y*basis.Height,
	}
	ppu := prefs.PPU

	vertices := make([]model.Vertex, 0, len(tex.Units)*4)
	uvs := make([]model.UV, 0, len(tex.Units)*4)
	indices := make([]int, 0, len(tex.Units)*6)

	for _, unit := range tex.Units {
		rect, ok := atlas.Rects[unit.Hash]
		if !ok {
			panic(fmt.Sprintf("spritedicer: unit hash %d missing from atlas rects; packer invariant violated", unit.Hash))
		}

		x0 := float32(unit.Rect.X)
		y0 := float32(unit.Rect.Y)
		x1 := x0 + float32(unit.Rect.Width)
		y1 := y0 + float32(unit.Rect.Height)

		base := len(vertices)
		vertices = append(vertices,
			toVertex(x0, y0, pivotPx, ppu),
			toVertex(x1, y0, pivotPx, ppu),
			toVertex(x0, y1, pivotPx, ppu),
			toVertex(x1, y1, pivotPx, ppu),
		)
		uvs = append(uvs,
			model.UV{U: rect.X, V: rect.Y + rect.Height},
			model.UV{U: rect.X + rect.Width, V: rect.Y + rect.Height},
			model.UV{U: rect.X, V: rect.Y},
			model.UV{U: rect.X + rect.Width, V: rect.Y},
		)
		indices = append(indices,
			base+0, base+1, base+2,
			base+1, base+3, base+2,
		)
	}

	return model.DicedSprite{
		ID:         tex.ID,
		AtlasIndex: atlasIdx,
		Vertices:   vertices,
		UVs:        uvs,
		Indices:    indices,
		Rect:       model.Rect{X: basis.X / ppu, Y: basis.Y / ppu, Width: basis.Width / ppu, Height: basis.Height / ppu},
		Pivot:      pivot,
	}
}

// toVertex converts a pixel-space corner into conventional units space,
// relative to the pivot and scaled by PPU. Pixel space is top-left-origin
// and Y-down; conventional space is Y-up, hence the sign flip on Y.
func toVertex(px, py float32, pivotPx mgl32.Vec2, ppu float32) model.Vertex {
	v := mgl32.Vec2{px, py}.Sub(pivotPx)
	return model.Vertex{X: v[0] / ppu, Y: -v[1] / ppu}
}

// meshBasis returns the pixel-space rect used to anchor the pivot and to
// report DicedSprite.Rect. When trim is true it is the bounding box of the
// surviving (non-transparent) units only; otherwise it is the sprite's
// full original size, so frames sharing a nominal canvas size keep a
// stable mesh across an animation regardless of which units happened to
// be fully transparent in a given frame.
func meshBasis(tex model.DicedTexture, trim bool) model.Rect {
	if !trim {
		return model.Rect{X: 0, Y: 0, Width: float32(tex.Size.Width), Height: float32(tex.Size.Height)}
	}

	minX, minY := uint32(0), uint32(0)
	maxX, maxY := uint32(0), uint32(0)
	first := true
	for _, u := range tex.Units {
		x0, y0 := u.Rect.X, u.Rect.Y
		x1, y1 := u.Rect.X+u.Rect.Width, u.Rect.Y+u.Rect.Height
		if first {
			minX, minY, maxX, maxY = x0, y0, x1, y1
			first = false
			continue
		}
		if x0 < minX {
			minX = x0
		}
		if y0 < minY {
			minY = y0
		}
		if x1 > maxX {
			maxX = x1
		}
		if y1 > maxY {
			maxY = y1
		}
	}

	return model.Rect{
		X:      float32(minX),
		Y:      float32(minY),
		Width:  float32(maxX - minX),
		Height: float32(maxY - minY),
	}
}
