package spritedicer

import "github.com/dantero/spritedicer/internal/model"

// SourceSprite is one input item supplied by the caller. IDs must be
// unique within a single Dice call; the source Texture and Pivot are
// read-only for the duration of the call.
type SourceSprite = model.SourceSprite

// Vertex is a mesh vertex position in conventional units space.
type Vertex = model.Vertex

// UV is an atlas texture coordinate, relative to the atlas dimensions, in
// the 0.0 to 1.0 range.
type UV = model.UV

// Rect is a rectangle in conventional units space.
type Rect = model.Rect

// DicedSprite is the mesh-builder output for one SourceSprite: enough data
// to reconstruct and render it by referencing the atlas at AtlasIndex.
type DicedSprite = model.DicedSprite

// Artifacts are the final products of a dicing operation.
type Artifacts = model.Artifacts
