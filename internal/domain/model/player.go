// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
)

// Position identifies a roster position.
type Position string

// Roster positions tracked by the draft board.
const (
	QB  Position = "QB"
	RB  Position = "RB"
	WR  Position = "WR"
	TE  Position = "TE"
	K   Position = "K"
	DST Position = "DST"
)

// Positions lists every valid position in display order.
var Positions = []Position{QB, RB, WR, TE, K, DST}

// ParsePosition normalizes and validates a position string.
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case QB, RB, WR, TE, K, DST:
		return p, nil
	}
	return "", fmt.Errorf("unknown position %q", s)
}

// Target statuses a user can tag a player with.
const (
	TargetDefault = "default"
	TargetTarget  = "target"
	TargetAvoid   = "avoid"
)

// ParseTargetStatus normalizes and validates a target status string.
func ParseTargetStatus(s string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch t {
	case TargetDefault, TargetTarget, TargetAvoid:
		return t, nil
	}
	return "", fmt.Errorf("unknown target status %q", s)
}

// Player is a read-only input to the value engine. ProjectedPoints is nil
// when no projection is known; PickNumber is nil while undrafted.
type Player struct {
	ID              string
	Name            string
	Position        Position
	Team            string
	ProjectedPoints *float64
	ByeWeek         int
	PredictedPick   *int
	PickNumber      *int
	TargetStatus    string
}

// Drafted reports whether the player holds an overall pick number.
func (p Player) Drafted() bool {
	return p.PickNumber != nil
}

// LeagueConfig holds the starter-slot requirements for one league.
type LeagueConfig struct {
	Teams        int
	QBSlots      int
	RBSlots      int
	WRSlots      int
	TESlots      int
	FlexSlots    int
	FlexEligible []Position
}

// DefaultFlexEligible is the FLEX source set used when a league does not
// override it. TE is deliberately excluded.
var DefaultFlexEligible = []Position{QB, RB, WR}

// StarterSlots returns the starter-slot count configured for pos.
// Positions without dedicated slots (K, DST) report zero.
func (c LeagueConfig) StarterSlots(pos Position) int {
	switch pos {
	case QB:
		return c.QBSlots
	case RB:
		return c.RBSlots
	case WR:
		return c.WRSlots
	case TE:
		return c.TESlots
	}
	return 0
}

// FlexPositions returns the FLEX-eligible set, falling back to the default
// when the league has not configured one.
func (c LeagueConfig) FlexPositions() []Position {
	if len(c.FlexEligible) > 0 {
		return c.FlexEligible
	}
	return DefaultFlexEligible
}

// Snapshot is a consistent view of the draft state, read in a single store
// transaction. Config is nil when no league has been configured yet.
type Snapshot struct {
	Players []Player
	Config  *LeagueConfig
}

// DraftedCounts tallies drafted players per position.
func (s Snapshot) DraftedCounts() map[Position]int {
	counts := make(map[Position]int, len(Positions))
	for _, p := range s.Players {
		if p.Drafted() {
			counts[p.Position]++
		}
	}
	return counts
}
