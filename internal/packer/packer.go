// Package packer greedily selects diced textures into atlas-filling
// groups, lays out each atlas's unique units deterministically, and
// computes their UV rectangles.
package packer

import (
	"math"
	"sort"

	"github.com/dantero/spritedicer/internal/model"
	"github.com/dantero/spritedicer/internal/progress"
)

// unitRef points at one diced unit inside ctx.toPack.
type unitRef struct {
	texIdx  int
	unitIdx int
}

type context struct {
	inset         float32
	square        bool
	pot           bool
	sizeLimit     uint32
	unitSize      uint32
	pad           uint32
	paddedSize    uint32
	unitCapacity  uint32
	toPack        []model.DicedTexture
	packedIdx     map[int]struct{}
	units         map[uint64]unitRef
}

// Pack converts diced textures into one or more Atlases. diced is consumed;
// callers must not reuse it afterwards.
func Pack(diced []model.DicedTexture, prefs model.Prefs) ([]model.Atlas, error) {
	if prefs.UVInset > 0.5 {
		return nil, model.ErrUVInsetOutOfRange
	}
	if prefs.AtlasSizeLimit == 0 {
		return nil, model.ErrAtlasSizeLimitZero
	}
	if prefs.UnitSize > prefs.AtlasSizeLimit {
		return nil, model.ErrUnitAboveAtlasLimit
	}

	total := len(diced)
	ctx := newContext(diced, prefs)

	var atlases []model.Atlas
	for len(ctx.toPack) > 0 {
		progress.Report(prefs, progress.StagePack, total-len(ctx.toPack), total, "Packing units")
		atlas, err := packOne(&ctx)
		if err != nil {
			return nil, err
		}
		atlases = append(atlases, atlas)
		ctx.packedIdx = map[int]struct{}{}
		ctx.units = map[uint64]unitRef{}
	}

	return atlases, nil
}

func newContext(diced []model.DicedTexture, prefs model.Prefs) context {
	paddedSize := prefs.UnitSize + prefs.Padding*2
	unitsPerRow := prefs.AtlasSizeLimit / paddedSize
	return context{
		inset:        prefs.UVInset,
		square:       prefs.AtlasSquare,
		pot:          prefs.AtlasPOT,
		sizeLimit:    prefs.AtlasSizeLimit,
		unitSize:     prefs.UnitSize,
		pad:          prefs.Padding,
		paddedSize:   paddedSize,
		unitCapacity: unitsPerRow * unitsPerRow,
		toPack:       diced,
		packedIdx:    map[int]struct{}{},
		units:        map[uint64]unitRef{},
	}
}

func packOne(ctx *context) (model.Atlas, error) {
	for {
		texIdx, ok := findPackableTexture(ctx)
		if !ok {
			break
		}
		ctx.packedIdx[texIdx] = struct{}{}
		for unitIdx, u := range ctx.toPack[texIdx].Units {
			if _, exists := ctx.units[u.Hash]; !exists {
				ctx.units[u.Hash] = unitRef{texIdx: texIdx, unitIdx: unitIdx}
			}
		}
	}

	if len(ctx.packedIdx) == 0 {
		return model.Atlas{}, model.ErrCantFitSingle
	}

	size := evalAtlasSize(ctx)
	texture, rects := bakeAtlas(ctx, size)
	packed := extractPacked(ctx)

	return model.Atlas{Texture: texture, Rects: rects, Packed: packed}, nil
}

// findPackableTexture picks the not-yet-placed texture whose Unique set
// contributes the fewest hashes not already in ctx.units, breaking ties by
// first-encountered order. It returns false if no such texture fits within
// the atlas's remaining capacity.
func findPackableTexture(ctx *context) (int, bool) {
	best := -1
	bestNew := uint32(math.MaxUint32)

	for idx, tex := range ctx.toPack {
		if _, placed := ctx.packedIdx[idx]; placed {
			continue
		}
		var newCount uint32
		for hash := range tex.Unique {
			if _, have := ctx.units[hash]; !have {
				newCount++
			}
		}
		if newCount < bestNew {
			best = idx
			bestNew = newCount
		}
	}

	if best < 0 {
		return 0, false
	}
	if uint32(len(ctx.units))+bestNew <= ctx.unitCapacity {
		return best, true
	}
	return 0, false
}

func evalAtlasSize(ctx *context) model.USize {
	n := uint32(len(ctx.units))
	side := uint32(math.Ceil(math.Sqrt(float64(n))))

	if ctx.pot {
		s := nextPowerOfTwo(side * ctx.paddedSize)
		return model.USize{Width: s, Height: s}
	}
	if ctx.square {
		s := side * ctx.paddedSize
		return model.USize{Width: s, Height: s}
	}

	best := model.USize{Width: side, Height: side}
	for width := side; width >= 1; width-- {
		height := divCeil(n, width)
		if height*ctx.paddedSize > ctx.sizeLimit {
			break
		}
		if width*height < best.Width*best.Height {
			best = model.USize{Width: width, Height: height}
		}
	}

	return model.USize{
		Width:  best.Width * ctx.paddedSize,
		Height: best.Height * ctx.paddedSize,
	}
}

func bakeAtlas(ctx *context, size model.USize) (model.Texture, map[uint64]model.FRect) {
	unitsPerRow := size.Width / ctx.paddedSize
	rects := make(map[uint64]model.FRect, len(ctx.units))
	texture := model.NewTexture(size.Width, size.Height)

	hashes := make([]uint64, 0, len(ctx.units))
	for h := range ctx.units {
		hashes = append(hashes, h)
	}
	sort.Slice(hashes, func(i, j int) bool { return hashes[i] < hashes[j] })

	for i, hash := range hashes {
		ref := ctx.units[hash]
		row := uint32(i) / unitsPerRow
		column := uint32(i) % unitsPerRow
		unit := ctx.toPack[ref.texIdx].Units[ref.unitIdx]

		setPixels(ctx, unit.Pixels, column, row, &texture)

		rect := unitUV(ctx, column, row, size)
		rect = insetUV(ctx, rect)
		rect = scaleUV(ctx, rect, unit)
		rects[hash] = rect
	}

	return texture, rects
}

func setPixels(ctx *context, pixels []model.Pixel, column, row uint32, atlas *model.Texture) {
	startX := column * ctx.paddedSize
	startY := row * ctx.paddedSize
	idx := 0
	for y := startY; y < startY+ctx.paddedSize; y++ {
		for x := startX; x < startX+ctx.paddedSize; x++ {
			atlas.Pixels[int(x)+int(atlas.Width)*int(y)] = pixels[idx]
			idx++
		}
	}
}

func unitUV(ctx *context, column, row uint32, atlasSize model.USize) model.FRect {
	width := float32(ctx.unitSize) / float32(atlasSize.Width)
	height := float32(ctx.unitSize) / float32(atlasSize.Height)
	x := float32(column*ctx.paddedSize+ctx.pad) / float32(atlasSize.Width)
	y := float32(row*ctx.paddedSize+ctx.pad) / float32(atlasSize.Height)
	return model.FRect{X: x, Y: y, Width: width, Height: height}
}

// insetUV shrinks symmetrically by an amount derived from the rect's
// width on both axes. This is deliberately width-based on both axes, not
// height-based on the vertical axis: on a non-square atlas that yields a
// visually non-uniform inset, which matches the documented source
// behavior and must not be "fixed".
func insetUV(ctx *context, rect model.FRect) model.FRect {
	d := ctx.inset * (rect.Width / 2)
	return model.FRect{X: rect.X + d, Y: rect.Y + d, Width: rect.Width - 2*d, Height: rect.Height - 2*d}
}

// scaleUV shortens a unit's UV rect when its source rect was cropped at
// the texture's right/bottom edge, so it samples only the real pixels.
func scaleUV(ctx *context, rect model.FRect, unit model.DicedUnit) model.FRect {
	mx := float32(unit.Rect.Width) / float32(ctx.unitSize)
	my := float32(unit.Rect.Height) / float32(ctx.unitSize)
	return model.FRect{X: rect.X, Y: rect.Y, Width: rect.Width * mx, Height: rect.Height * my}
}

func extractPacked(ctx *context) []model.DicedTexture {
	packed := make([]model.DicedTexture, 0, len(ctx.packedIdx))
	remaining := ctx.toPack[:0]
	for idx, tex := range ctx.toPack {
		if _, placed := ctx.packedIdx[idx]; placed {
			packed = append(packed, tex)
		} else {
			remaining = append(remaining, tex)
		}
	}
	ctx.toPack = remaining
	return packed
}

func divCeil(a, b uint32) uint32 {
	return (a + b - 1) / b
}

func nextPowerOfTwo(x uint32) uint32 {
	if x == 0 {
		return 1
	}
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	return x + 1
}
