package spritedicer

import "github.com/dantero/spritedicer/internal/model"

// Pivot is the sprite origin, as a relative offset from the top-left corner
// of the generated mesh rect. (0,0) is top-left, (1,1) is bottom-right.
type Pivot = model.Pivot

// ProgressCallback is invoked synchronously, on the calling goroutine, at
// stage boundaries and once per per-sprite/per-atlas step. It must not
// retain the Progress value it receives beyond the call.
type ProgressCallback = model.ProgressCallback

// Progress describes how far a dicing operation has advanced.
type Progress = model.Progress

// Prefs configures a dicing operation. The zero value is not valid on its
// own for UnitSize and AtlasSizeLimit (both must be non-zero); use
// DefaultPrefs to start from the documented defaults.
type Prefs = model.Prefs

// DefaultPrefs returns the documented default configuration.
var DefaultPrefs = model.DefaultPrefs
