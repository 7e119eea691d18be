package spritedicer

import "github.com/dantero/spritedicer/internal/model"

// SpecError reports invalid Prefs or input-vs-Prefs mismatches detected by
// the dicer or packer. Its message is one of a fixed set of user-facing
// strings and must not be reworded: callers and tests match on it exactly.
type SpecError = model.SpecError

// The six spec errors the core can produce. Declared once so dicer and
// packer both raise byte-identical messages.
var (
	ErrUnitSizeZero        = model.ErrUnitSizeZero
	ErrPaddingAboveUnit    = model.ErrPaddingAboveUnit
	ErrUVInsetOutOfRange   = model.ErrUVInsetOutOfRange
	ErrAtlasSizeLimitZero  = model.ErrAtlasSizeLimitZero
	ErrUnitAboveAtlasLimit = model.ErrUnitAboveAtlasLimit
	ErrCantFitSingle       = model.ErrCantFitSingle
)
