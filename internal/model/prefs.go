package model

// Pivot is the sprite origin, as a relative offset from the top-left corner
// of the generated mesh rect. (0,0) is top-left, (1,1) is bottom-right.
type Pivot struct {
	X, Y float32
}

// ProgressCallback is invoked synchronously, on the calling goroutine, at
// stage boundaries and once per per-sprite/per-atlas step. It must not
// retain the Progress value it receives beyond the call.
type ProgressCallback func(Progress)

// Progress describes how far a dicing operation has advanced.
type Progress struct {
	// Ratio of completed to total work, in the 0.0 to 1.0 range.
	Ratio float32
	// Activity is a short human-readable description of the current step.
	Activity string
}

// Prefs configures a dicing operation. The zero value is not valid on its
// own for UnitSize and AtlasSizeLimit (both must be non-zero); use
// DefaultPrefs to start from the documented defaults.
type Prefs struct {
	// UnitSize is the side length, in pixels, of one diced grid cell.
	UnitSize uint32
	// Padding is the per-side border, in pixels, sampled into each unit and
	// copied onto the atlas around it to prevent texture bleeding.
	Padding uint32
	// UVInset symmetrically shrinks each unit's UV rect, in 0.0-0.5 range,
	// as an alternative (or complement) to Padding.
	UVInset float32
	// TrimTransparent shrinks each sprite's reported mesh rect to the
	// bounding box of its surviving units. Disable to keep the original
	// sprite dimensions in the generated mesh regardless of which units
	// were dropped for being fully transparent.
	TrimTransparent bool
	// AtlasSizeLimit is the maximum side length, in pixels, of one atlas.
	AtlasSizeLimit uint32
	// AtlasSquare forces generated atlases to be square.
	AtlasSquare bool
	// AtlasPOT forces generated atlases to have power-of-two dimensions;
	// supersedes AtlasSquare when both are set.
	AtlasPOT bool
	// PPU is the pixels-per-unit ratio used to convert pixel-space mesh
	// rects into conventional-unit vertex positions.
	PPU float32
	// DefaultPivot is used for any SourceSprite that doesn't specify its
	// own Pivot.
	DefaultPivot Pivot
	// OnProgress, if set, is called as the operation advances. See
	// ProgressCallback.
	OnProgress ProgressCallback
}

// DefaultPrefs returns the documented default configuration.
func DefaultPrefs() Prefs {
	return Prefs{
		UnitSize:        64,
		Padding:         2,
		UVInset:         0,
		TrimTransparent: true,
		AtlasSizeLimit:  2048,
		AtlasSquare:     false,
		AtlasPOT:        false,
		PPU:             100,
		DefaultPivot:    Pivot{X: 0.5, Y: 0.5},
	}
}
