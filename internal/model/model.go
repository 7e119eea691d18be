// Package model holds the data types shared by the dicer, packer and mesh
// stages, both the public API types (re-exported by the root package as
// thin aliases) and the pipeline-internal types a caller never sees
// directly, like DicedTexture and Atlas.
package model

// URect is a rectangle in unsigned integer (source texture) space.
type URect struct {
	X, Y, Width, Height uint32
}

// IRect is a rectangle in signed integer space, used while a candidate
// unit or its padded block may extend past the texture's top/left edge.
type IRect struct {
	X, Y          int32
	Width, Height uint32
}

// FRect is a rectangle in normalized floating point space (a UV rect).
type FRect struct {
	X, Y, Width, Height float32
}

// USize is a width/height pair in unsigned integer space.
type USize struct {
	Width, Height uint32
}

// DicedUnit is one padded chunk extracted from a source texture.
type DicedUnit struct {
	// Rect is the source-space rectangle, cropped to the texture bounds.
	Rect URect
	// Pixels is the padded pixel block, always (UnitSize+2*Padding)^2 long.
	Pixels []Pixel
	// Hash is derived from the non-padded UnitSize^2 pixels only.
	Hash uint64
}

// DicedTexture is the dicing output for one SourceSprite.
type DicedTexture struct {
	ID    string
	Size  USize
	Pivot *Pivot
	Units []DicedUnit
	// Unique holds the set of distinct hashes among Units.
	Unique map[uint64]struct{}
}

// Atlas is one packer output: a baked texture, its UV map, and the diced
// textures placed on it.
type Atlas struct {
	Texture Texture
	Rects   map[uint64]FRect
	Packed  []DicedTexture
}
