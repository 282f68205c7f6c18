package seeder

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gridironlabs/draftboard/pkg/logger"
)

const outputFilePermission = 0600

// Run seeds the service: push league settings, import a generated pool,
// optionally draft the top projected players, then fetch drop scores as a
// smoke check.
func Run(ctx context.Context, config *Config) error {
	log := logger.Get()
	stats := &Stats{StartTime: time.Now()}

	players := generatePlayers(ctx, config, stats)
	csvData := encodeCSV(players)

	if config.OutputFile != "" {
		if err := os.WriteFile(config.OutputFile, csvData, outputFilePermission); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
		log.Info(ctx, "wrote generated CSV", logger.String("file", config.OutputFile))
	}

	c := newClient(config)

	if err := c.updateSettings(ctx, config.Teams); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	log.Info(ctx, "league settings applied", logger.Int("teams", config.Teams))

	inserted, err := c.importCSV(ctx, csvData)
	if err != nil {
		return fmt.Errorf("import players: %w", err)
	}
	stats.PlayersImported = inserted
	log.Info(ctx, "players imported", logger.Int("inserted", inserted))

	if config.DraftTop > 0 {
		top, err := c.listTopPlayers(ctx, config.DraftTop)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		for _, p := range top {
			if err := c.draftPlayer(ctx, p.ID); err != nil {
				return fmt.Errorf("draft %s: %w", p.Name, err)
			}
			stats.PlayersDrafted++
			if config.Verbose {
				log.Info(ctx, "drafted player",
					logger.String("name", p.Name),
					logger.String("position", p.Position),
					logger.Int("pick", stats.PlayersDrafted),
				)
			}
		}
		log.Info(ctx, "players drafted", logger.Int("count", stats.PlayersDrafted))
	}

	drops, err := c.fetchDrops(ctx)
	if err != nil {
		return fmt.Errorf("fetch drops: %w", err)
	}
	stats.DropsScored = len(drops)

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	reportStats(ctx, stats)
	return nil
}

func reportStats(ctx context.Context, stats *Stats) {
	logger.Get().Info(ctx, "seeding complete",
		logger.Int("generated", stats.PlayersGenerated),
		logger.Int("imported", stats.PlayersImported),
		logger.Int("drafted", stats.PlayersDrafted),
		logger.Int("dropsScored", stats.DropsScored),
		logger.String("duration", stats.Duration.String()),
	)
}
