// Package config loads dicing preferences from an optional TOML file,
// layered under defaults, and clamps them into range the same way the
// CLI's flag overrides do.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/dantero/spritedicer/internal/model"
)

// fileConfig mirrors model.Prefs field-for-field but with every field
// optional, so a prefs.toml only needs to name what it overrides.
type fileConfig struct {
	UnitSize        *uint32  `toml:"unit_size"`
	Padding         *uint32  `toml:"padding"`
	UVInset         *float32 `toml:"uv_inset"`
	TrimTransparent *bool    `toml:"trim_transparent"`
	AtlasSizeLimit  *uint32  `toml:"atlas_size_limit"`
	AtlasSquare     *bool    `toml:"atlas_square"`
	AtlasPOT        *bool    `toml:"atlas_pot"`
	PPU             *float32 `toml:"ppu"`
	PivotX          *float32 `toml:"pivot_x"`
	PivotY          *float32 `toml:"pivot_y"`
}

// Load returns model.DefaultPrefs with any fields set in the TOML file at
// path applied on top. An empty path returns the defaults unchanged.
func Load(path string) (model.Prefs, error) {
	prefs := model.DefaultPrefs()
	if path == "" {
		return prefs, nil
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return model.Prefs{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if fc.UnitSize != nil {
		prefs.UnitSize = *fc.UnitSize
	}
	if fc.Padding != nil {
		prefs.Padding = *fc.Padding
	}
	if fc.UVInset != nil {
		prefs.UVInset = *fc.UVInset
	}
	if fc.TrimTransparent != nil {
		prefs.TrimTransparent = *fc.TrimTransparent
	}
	if fc.AtlasSizeLimit != nil {
		prefs.AtlasSizeLimit = *fc.AtlasSizeLimit
	}
	if fc.AtlasSquare != nil {
		prefs.AtlasSquare = *fc.AtlasSquare
	}
	if fc.AtlasPOT != nil {
		prefs.AtlasPOT = *fc.AtlasPOT
	}
	if fc.PPU != nil {
		prefs.PPU = *fc.PPU
	}
	if fc.PivotX != nil {
		prefs.DefaultPivot.X = *fc.PivotX
	}
	if fc.PivotY != nil {
		prefs.DefaultPivot.Y = *fc.PivotY
	}

	return Clamp(prefs), nil
}

// Clamp pulls out-of-range preference values back into the bounds the core
// packages require, so a malformed config file or flag value produces a
// working (if adjusted) run instead of a Spec error.
func Clamp(prefs model.Prefs) model.Prefs {
	if prefs.UnitSize == 0 {
		prefs.UnitSize = 1
	}
	if prefs.Padding > prefs.UnitSize {
		prefs.Padding = prefs.UnitSize
	}
	if prefs.UVInset < 0 {
		prefs.UVInset = 0
	}
	if prefs.UVInset > 0.5 {
		prefs.UVInset = 0.5
	}
	if prefs.AtlasSizeLimit == 0 {
		prefs.AtlasSizeLimit = model.DefaultPrefs().AtlasSizeLimit
	}
	if prefs.UnitSize > prefs.AtlasSizeLimit {
		prefs.AtlasSizeLimit = prefs.UnitSize
	}
	if prefs.PPU <= 0 {
		prefs.PPU = model.DefaultPrefs().PPU
	}
	return prefs
}
