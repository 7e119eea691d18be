// Package spritedicer chops a set of sprite textures into small
// content-addressed units, deduplicates them across the whole input set,
// and lays the unique units out onto one or more atlas textures together
// with mesh data that reconstructs each original sprite.
//
// The pipeline is single-threaded and synchronous: Dice returns a complete
// Artifacts value or an error, never a partial result.
package spritedicer

import (
	"github.com/dantero/spritedicer/internal/dicer"
	"github.com/dantero/spritedicer/internal/mesh"
	"github.com/dantero/spritedicer/internal/packer"
)

// Dice runs the full dicing pipeline: dice every sprite's texture into
// units, pack the unique units onto one or more atlases, and build mesh
// data for every sprite that survived dicing.
//
// Sprite IDs should be unique; sprites are otherwise independent and are
// processed in the order given. A sprite whose texture is fully
// transparent yields no output (no atlas entry, no DicedSprite).
func Dice(sprites []SourceSprite, prefs Prefs) (Artifacts, error) {
	diced, err := dicer.Dice(sprites, prefs)
	if err != nil {
		return Artifacts{}, err
	}

	atlases, err := packer.Pack(diced, prefs)
	if err != nil {
		return Artifacts{}, err
	}

	textures := make([]Texture, len(atlases))
	for i, a := range atlases {
		textures[i] = a.Texture
	}

	return Artifacts{
		Atlases: textures,
		Sprites: mesh.Build(atlases, prefs),
	}, nil
}
