package engine

import (
	"sort"

	"github.com/gridironlabs/draftboard/internal/domain/model"
)

// RankPool returns the players matching one of the eligible positions,
// ordered by projected points descending. Players without a projection are
// excluded entirely: they can neither produce nor participate in a drop
// computation. Ties rank by player id ascending so the ordering is
// reproducible across runs on identical input.
func RankPool(players []model.Player, eligible ...model.Position) []model.Player {
	allowed := make(map[model.Position]struct{}, len(eligible))
	for _, pos := range eligible {
		allowed[pos] = struct{}{}
	}

	pool := make([]model.Player, 0, len(players))
	for _, p := range players {
		if _, ok := allowed[p.Position]; !ok {
			continue
		}
		if p.ProjectedPoints == nil {
			continue
		}
		pool = append(pool, p)
	}

	sort.Slice(pool, func(i, j int) bool {
		a, b := *pool[i].ProjectedPoints, *pool[j].ProjectedPoints
		if a != b {
			return a > b
		}
		return pool[i].ID < pool[j].ID
	})

	return pool
}
