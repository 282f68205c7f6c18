package engine

import (
	"github.com/gridironlabs/draftboard/internal/domain/model"
)

// DefaultWindow is the lookahead width used when the caller does not
// supply one.
const DefaultWindow = 6

// FlexOverridesPosition selects which score wins when a player appears in
// both its own position pool and the FLEX pool. When true, the FLEX score
// supersedes: once a position's starters are filled, the marginal decision
// for that player is governed by FLEX scarcity.
const FlexOverridesPosition = true

// ScorePool computes a drop score for each player in an already ranked
// pool: the gap between the player's projection and the mean of the next
// k projections in the same pool. The window shrinks near the end of the
// pool; the last player has no successor tier and receives no score.
func ScorePool(pool []model.Player, k int) (map[string]float64, error) {
	if k < 1 {
		return nil, ErrInvalidWindow
	}

	scores := make(map[string]float64, len(pool))
	for i, p := range pool {
		end := min(i+1+k, len(pool))
		next := pool[i+1 : end]
		if len(next) == 0 {
			continue
		}
		sum := 0.0
		for _, n := range next {
			sum += *n.ProjectedPoints
		}
		scores[p.ID] = *p.ProjectedPoints - sum/float64(len(next))
	}
	return scores, nil
}

// ComputeDrops scores every pool with remaining starter need and returns
// the merged player-id to drop-score map. Position pools are scored first,
// then the FLEX composite pool, all with the same window k.
//
// The result is a pure function of the snapshot: an unchanged snapshot
// yields an identical map, and nothing is ever partially scored.
func ComputeDrops(snap model.Snapshot, k int) (map[string]float64, error) {
	if k < 1 {
		return nil, ErrInvalidWindow
	}

	needs := ResolveNeeds(snap.Config, snap.DraftedCounts())

	out := make(map[string]float64)
	for _, pos := range starterPositions {
		if needs.Position[pos] == 0 {
			continue
		}
		scores, err := ScorePool(RankPool(snap.Players, pos), k)
		if err != nil {
			return nil, err
		}
		for id, drop := range scores {
			out[id] = drop
		}
	}

	if needs.Flex > 0 {
		flex := snap.Config.FlexPositions()
		scores, err := ScorePool(RankPool(snap.Players, flex...), k)
		if err != nil {
			return nil, err
		}
		for id, drop := range scores {
			if !FlexOverridesPosition {
				if _, exists := out[id]; exists {
					continue
				}
			}
			out[id] = drop
		}
	}

	return out, nil
}
