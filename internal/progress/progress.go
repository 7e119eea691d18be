// Package progress reports pipeline progress through the Prefs.OnProgress
// callback using the fixed stage/step formula from the dicing contract.
package progress

import (
	"fmt"

	"github.com/dantero/spritedicer/internal/model"
)

// Stage ordinals. 0 and 4 are reserved for the CLI's decode/encode steps.
const (
	StageDecode = 0
	StageDice   = 1
	StagePack   = 2
	StageMesh   = 3
	StageEncode = 4
)

// Report invokes prefs.OnProgress, if set, for step (idx+1) of total under
// the given stage. activity is a short present-tense description, e.g.
// "Dicing source textures".
func Report(prefs model.Prefs, stage int, idx, total int, activity string) {
	if prefs.OnProgress == nil || total == 0 {
		return
	}
	num := idx + 1
	ratio := float32(stage)/5.0 + 0.2*(float32(num)/float32(total))
	prefs.OnProgress(model.Progress{
		Ratio:    ratio,
		Activity: fmt.Sprintf("%s... (%d of %d)", activity, num, total),
	})
}
