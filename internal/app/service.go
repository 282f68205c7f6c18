// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gridironlabs/draftboard/internal/adapters/repository"
	"github.com/gridironlabs/draftboard/internal/domain/engine"
	"github.com/gridironlabs/draftboard/internal/domain/importer"
	"github.com/gridironlabs/draftboard/internal/domain/model"
	"github.com/gridironlabs/draftboard/internal/domain/types"
	"github.com/gridironlabs/draftboard/pkg/logger"
	"github.com/gridironlabs/draftboard/pkg/metrics"
)

// Service implements the API dependencies for the draft board.
type Service struct {
	mu sync.RWMutex

	store  repository.Store
	dbPath string

	dropWindow  int
	pickRetries int

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore injects a pre-built store, mainly for tests.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDBPath sets the SQLite database path opened on Start.
func WithDBPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dbPath = path
		}
	}
}

// WithDropWindow sets the default lookahead width k for drop scoring.
func WithDropWindow(k int) Option {
	return func(s *Service) {
		if k >= 1 {
			s.dropWindow = k
		}
	}
}

// WithPickRetries bounds retry attempts on pick-number conflicts.
func WithPickRetries(n int) Option {
	return func(s *Service) {
		if n >= 1 {
			s.pickRetries = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dbPath:      "draftboard.db",
		dropWindow:  engine.DefaultWindow,
		pickRetries: 3,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens the store and readies the service.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		store, err := repository.Open(s.dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		s.store = store
		s.logger.Info(ctx, "opened draft store", logger.String("path", s.dbPath))
	}

	s.started = true
	s.logger.Info(ctx, "draft service started",
		logger.Int("dropWindow", s.dropWindow),
		logger.Int("pickRetries", s.pickRetries),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn(context.Background(), "closing store", logger.Error(err))
		}
	}
	s.started = false
	s.logger.Info(context.Background(), "draft service stopped")
}

// DefaultDropWindow returns the configured default k.
func (s *Service) DefaultDropWindow() int {
	return s.dropWindow
}

// ComputeDrops scores every pool with remaining starter need over one
// consistent snapshot and returns the player-id to drop-score map.
func (s *Service) ComputeDrops(ctx context.Context, k int) (map[string]float64, error) {
	if k < 1 {
		return nil, engine.ErrInvalidWindow
	}

	start := time.Now()
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	drops, err := engine.ComputeDrops(snap, k)
	if err != nil {
		return nil, err
	}

	needs := engine.ResolveNeeds(snap.Config, snap.DraftedCounts())
	for _, n := range needs.Position {
		if n > 0 {
			metrics.RecordPoolScored()
		}
	}
	if needs.Flex > 0 {
		metrics.RecordPoolScored()
	}
	metrics.RecordDropComputation(float64(time.Since(start).Milliseconds()))
	s.logger.Debug(ctx, "computed drops",
		logger.Int("k", k),
		logger.Int("players", len(snap.Players)),
		logger.Int("scored", len(drops)),
	)
	return drops, nil
}

// ListPlayers returns every player in the pool.
func (s *Service) ListPlayers(ctx context.Context) ([]types.Player, error) {
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.Player, len(players))
	for i, p := range players {
		out[i] = toAPIPlayer(p)
	}
	return out, nil
}

// UpdatePlayer applies a closed set of field changes to one player.
func (s *Service) UpdatePlayer(ctx context.Context, id string, upd repository.PlayerUpdate) (types.Player, error) {
	p, err := s.store.UpdatePlayer(ctx, id, upd)
	if err != nil {
		return types.Player{}, err
	}
	return toAPIPlayer(p), nil
}

// ToggleDraft drafts an undrafted player or undrafts a drafted one.
// Assignment retries a bounded number of times when a concurrent draft
// wins the same pick number.
func (s *Service) ToggleDraft(ctx context.Context, id string) (types.DraftResult, error) {
	p, err := s.store.GetPlayer(ctx, id)
	if err != nil {
		return types.DraftResult{}, err
	}

	if p.Drafted() {
		if err := s.store.ClearPick(ctx, id); err != nil {
			return types.DraftResult{}, err
		}
		metrics.RecordPickCleared()
	} else {
		if err := s.assignWithRetry(ctx, id); err != nil {
			return types.DraftResult{}, err
		}
	}

	p, err = s.store.GetPlayer(ctx, id)
	if err != nil {
		return types.DraftResult{}, err
	}
	s.updatePoolGauges(ctx)
	return types.DraftResult{Player: toAPIPlayer(p), Drafted: p.Drafted()}, nil
}

func (s *Service) assignWithRetry(ctx context.Context, id string) error {
	var err error
	for attempt := 0; attempt < s.pickRetries; attempt++ {
		var pick int
		pick, err = s.store.AssignPick(ctx, id)
		if err == nil {
			metrics.RecordPickAssigned()
			s.logger.Info(ctx, "assigned pick",
				logger.String("player", id),
				logger.Int("pick", pick),
			)
			return nil
		}
		if !errors.Is(err, repository.ErrPickConflict) {
			return err
		}
		metrics.RecordPickConflict()
		s.logger.Warn(ctx, "pick conflict, retrying",
			logger.String("player", id),
			logger.Int("attempt", attempt+1),
		)
	}
	return err
}

// ImportPlayers parses a CSV upload and replaces the whole player pool in
// one transaction. Validation failures reject the entire upload.
func (s *Service) ImportPlayers(ctx context.Context, r io.Reader) (types.ImportResult, error) {
	players, err := importer.ParsePlayers(r)
	if err != nil {
		metrics.RecordImportRejected()
		return types.ImportResult{}, err
	}

	inserted, err := s.store.ReplaceAll(ctx, players)
	if err != nil {
		metrics.RecordImportRejected()
		return types.ImportResult{}, fmt.Errorf("replace players: %w", err)
	}

	metrics.RecordImportAccepted(inserted)
	s.updatePoolGauges(ctx)
	s.logger.Info(ctx, "imported players", logger.Int("inserted", inserted))
	return types.ImportResult{Inserted: inserted}, nil
}

// ResetDraft clears every pick number.
func (s *Service) ResetDraft(ctx context.Context) error {
	if err := s.store.ResetPicks(ctx); err != nil {
		return err
	}
	s.updatePoolGauges(ctx)
	s.logger.Info(ctx, "reset draft")
	return nil
}

// Settings returns the current league settings.
func (s *Service) Settings(ctx context.Context) (types.LeagueSettings, error) {
	cfg, err := s.store.GetConfig(ctx)
	if err != nil {
		return types.LeagueSettings{}, err
	}
	return toAPISettings(cfg), nil
}

// SettingsUpdate carries partial league-settings changes. Nil fields are
// left untouched.
type SettingsUpdate struct {
	Teams        *int
	QBSlots      *int
	RBSlots      *int
	WRSlots      *int
	TESlots      *int
	FlexSlots    *int
	FlexEligible []string
}

// Bounds for league settings, matching what the UI offers.
const (
	maxTeams        = 24
	maxStarterSlots = 6
	maxFlexSlots    = 3
)

func (u SettingsUpdate) validate() error {
	check := func(name string, v *int, lo, hi int) error {
		if v != nil && (*v < lo || *v > hi) {
			return fmt.Errorf("%s must be between %d and %d", name, lo, hi)
		}
		return nil
	}
	if err := check("teams", u.Teams, 1, maxTeams); err != nil {
		return err
	}
	for name, v := range map[string]*int{
		"qb_slots": u.QBSlots,
		"rb_slots": u.RBSlots,
		"wr_slots": u.WRSlots,
		"te_slots": u.TESlots,
	} {
		if err := check(name, v, 0, maxStarterSlots); err != nil {
			return err
		}
	}
	return check("flex_slots", u.FlexSlots, 0, maxFlexSlots)
}

// UpdateSettings applies a partial settings change, creating the league
// config with defaults when none exists yet.
func (s *Service) UpdateSettings(ctx context.Context, upd SettingsUpdate) (types.LeagueSettings, error) {
	if err := upd.validate(); err != nil {
		return types.LeagueSettings{}, err
	}

	cfg, err := s.store.GetConfig(ctx)
	if errors.Is(err, repository.ErrNoConfig) {
		cfg = model.LeagueConfig{Teams: 12, QBSlots: 1, RBSlots: 2, WRSlots: 2, TESlots: 1, FlexSlots: 1}
	} else if err != nil {
		return types.LeagueSettings{}, err
	}

	if upd.Teams != nil {
		cfg.Teams = *upd.Teams
	}
	if upd.QBSlots != nil {
		cfg.QBSlots = *upd.QBSlots
	}
	if upd.RBSlots != nil {
		cfg.RBSlots = *upd.RBSlots
	}
	if upd.WRSlots != nil {
		cfg.WRSlots = *upd.WRSlots
	}
	if upd.TESlots != nil {
		cfg.TESlots = *upd.TESlots
	}
	if upd.FlexSlots != nil {
		cfg.FlexSlots = *upd.FlexSlots
	}
	if upd.FlexEligible != nil {
		eligible := make([]model.Position, 0, len(upd.FlexEligible))
		for _, raw := range upd.FlexEligible {
			pos, err := model.ParsePosition(raw)
			if err != nil {
				return types.LeagueSettings{}, err
			}
			if pos == model.K || pos == model.DST {
				return types.LeagueSettings{}, fmt.Errorf("position %s cannot fill FLEX", pos)
			}
			eligible = append(eligible, pos)
		}
		cfg.FlexEligible = eligible
	}

	if err := s.store.SaveConfig(ctx, cfg); err != nil {
		return types.LeagueSettings{}, err
	}
	s.logger.Info(ctx, "updated league settings", logger.Int("teams", cfg.Teams))
	return toAPISettings(cfg), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"dropWindow":  s.dropWindow,
		"pickRetries": s.pickRetries,
	}
	if s.started {
		stats["totalPlayers"] = s.store.Count(ctx)
		s.updatePoolGauges(ctx)
	}
	return stats
}

func (s *Service) updatePoolGauges(ctx context.Context) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return
	}
	drafted := 0
	for _, p := range snap.Players {
		if p.Drafted() {
			drafted++
		}
	}
	metrics.UpdateTotalPlayers(len(snap.Players))
	metrics.UpdateDraftedPlayers(drafted)
}

func toAPIPlayer(p model.Player) types.Player {
	return types.Player{
		ID:              p.ID,
		Name:            p.Name,
		Position:        string(p.Position),
		Team:            p.Team,
		ProjectedPoints: p.ProjectedPoints,
		ByeWeek:         p.ByeWeek,
		PredictedPick:   p.PredictedPick,
		PickNumber:      p.PickNumber,
		TargetStatus:    p.TargetStatus,
	}
}

func toAPISettings(cfg model.LeagueConfig) types.LeagueSettings {
	eligible := make([]string, 0, len(cfg.FlexPositions()))
	for _, pos := range cfg.FlexPositions() {
		eligible = append(eligible, string(pos))
	}
	return types.LeagueSettings{
		Teams:        cfg.Teams,
		QBSlots:      cfg.QBSlots,
		RBSlots:      cfg.RBSlots,
		WRSlots:      cfg.WRSlots,
		TESlots:      cfg.TESlots,
		FlexSlots:    cfg.FlexSlots,
		FlexEligible: eligible,
	}
}
