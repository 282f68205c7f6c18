package seeder

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/csv"
	"fmt"
	"math/big"
	"strconv"

	"github.com/gridironlabs/draftboard/pkg/logger"
)

const randomFloatDivisor = 1000000

// Projection ranges per position, roughly mirroring season-long PPR output.
var projectionRanges = map[string][2]float64{
	"QB":  {220, 180},
	"RB":  {60, 260},
	"WR":  {70, 250},
	"TE":  {40, 180},
	"K":   {100, 60},
	"DST": {80, 70},
}

// Position mix for a generated pool. Skill positions dominate because a
// real draft pool carries far more RB/WR than K/DST.
var positionMix = []struct {
	position string
	weight   int
}{
	{"RB", 30},
	{"WR", 32},
	{"QB", 16},
	{"TE", 12},
	{"K", 5},
	{"DST", 5},
}

var nflTeams = []string{
	"ARI", "ATL", "BAL", "BUF", "CAR", "CHI", "CIN", "CLE",
	"DAL", "DEN", "DET", "GB", "HOU", "IND", "JAX", "KC",
	"LAC", "LAR", "LV", "MIA", "MIN", "NE", "NO", "NYG",
	"NYJ", "PHI", "PIT", "SEA", "SF", "TB", "TEN", "WAS",
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

func pickPosition() string {
	total := 0
	for _, m := range positionMix {
		total += m.weight
	}
	roll := int(getRandomFloat() * float64(total))
	for _, m := range positionMix {
		roll -= m.weight
		if roll < 0 {
			return m.position
		}
	}
	return positionMix[0].position
}

// generatePlayers creates the requested number of players with
// position-appropriate projections.
func generatePlayers(ctx context.Context, config *Config, stats *Stats) []Player {
	logger.Get().Info(ctx, "generating players", logger.Int("numPlayers", config.NumPlayers))

	players := make([]Player, config.NumPlayers)
	for i := range players {
		pos := pickPosition()
		rng := projectionRanges[pos]
		players[i] = Player{
			Name:            fmt.Sprintf("%s Player %d", pos, i+1),
			Position:        pos,
			Team:            nflTeams[int(getRandomFloat()*float64(len(nflTeams)))%len(nflTeams)],
			ProjectedPoints: rng[0] + getRandomFloat()*rng[1],
			ByeWeek:         4 + int(getRandomFloat()*10),
			PredictedPick:   i + 1,
		}
	}
	stats.PlayersGenerated = len(players)
	return players
}

// encodeCSV renders players in the import format the service accepts.
func encodeCSV(players []Player) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"name", "position", "team", "projected_points", "bye_week", "predicted_pick"})
	for _, p := range players {
		_ = w.Write([]string{
			p.Name,
			p.Position,
			p.Team,
			strconv.FormatFloat(p.ProjectedPoints, 'f', 1, 64),
			strconv.Itoa(p.ByeWeek),
			strconv.Itoa(p.PredictedPick),
		})
	}
	w.Flush()
	return buf.Bytes()
}
