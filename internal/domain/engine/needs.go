// Package engine implements the draft value engine: starter-need resolution
// with FLEX surplus sharing, deterministic pool ranking, and windowed
// value-drop scoring over a consistent snapshot of the player set.
package engine

import (
	"github.com/gridironlabs/draftboard/internal/domain/model"
)

// starterPositions are the positions with dedicated starter slots.
// K and DST are drafted but never scored by the engine.
var starterPositions = []model.Position{model.QB, model.RB, model.WR, model.TE}

// Needs captures how many starters each pool still requires.
type Needs struct {
	Position map[model.Position]int
	Flex     int
}

// ResolveNeeds turns the league configuration and current drafted counts
// into remaining starter needs per position plus the shared FLEX pool.
//
// A nil config means no league has been set up: every need is zero and no
// pool will be scored. Surplus drafted at a FLEX-eligible position beyond
// its own starter requirement counts against the FLEX requirement.
func ResolveNeeds(cfg *model.LeagueConfig, drafted map[model.Position]int) Needs {
	needs := Needs{Position: make(map[model.Position]int, len(starterPositions))}
	if cfg == nil {
		return needs
	}

	for _, pos := range starterPositions {
		required := cfg.Teams * cfg.StarterSlots(pos)
		needs.Position[pos] = max(0, required-drafted[pos])
	}

	surplus := 0
	for _, pos := range cfg.FlexPositions() {
		required := cfg.Teams * cfg.StarterSlots(pos)
		surplus += max(0, drafted[pos]-required)
	}
	needs.Flex = max(0, cfg.Teams*cfg.FlexSlots-surplus)

	return needs
}
