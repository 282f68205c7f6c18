// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gridironlabs/draftboard/internal/adapters/repository"
	service "github.com/gridironlabs/draftboard/internal/app"
	"github.com/gridironlabs/draftboard/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	DefaultDropWindow() int
	ComputeDrops(ctx context.Context, k int) (map[string]float64, error)

	ListPlayers(ctx context.Context) ([]types.Player, error)
	UpdatePlayer(ctx context.Context, id string, upd repository.PlayerUpdate) (types.Player, error)
	ToggleDraft(ctx context.Context, id string) (types.DraftResult, error)

	ImportPlayers(ctx context.Context, r io.Reader) (types.ImportResult, error)
	ResetDraft(ctx context.Context) error

	Settings(ctx context.Context) (types.LeagueSettings, error)
	UpdateSettings(ctx context.Context, upd service.SettingsUpdate) (types.LeagueSettings, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	playersHandler  *PlayersHandler
	dropsHandler    *DropsHandler
	settingsHandler *SettingsHandler
	importHandler   *ImportHandler
	draftHandler    *DraftHandler
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxImportBytes int64) *Server {
	return &Server{
		playersHandler:  NewPlayersHandler(deps),
		dropsHandler:    NewDropsHandler(deps),
		settingsHandler: NewSettingsHandler(deps),
		importHandler:   NewImportHandler(deps, maxImportBytes),
		draftHandler:    NewDraftHandler(deps),
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/drops", MetricsMiddleware(s.dropsHandler.HandleGetDrops, "drops"))
	mux.HandleFunc("/players", MetricsMiddleware(s.playersHandler.HandlePlayers, "players"))
	mux.HandleFunc("/players/import", MetricsMiddleware(s.importHandler.HandleImport, "import"))
	mux.HandleFunc("/players/", MetricsMiddleware(s.playersHandler.HandlePlayerByID, "player"))
	mux.HandleFunc("/settings", MetricsMiddleware(s.settingsHandler.HandleSettings, "settings"))
	mux.HandleFunc("/draft/reset", MetricsMiddleware(s.draftHandler.HandleReset, "draft_reset"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Rows    any    `json:"rows,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// wrap annotates an error with the handler operation for logs and bodies.
func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// storeErrorStatus translates repository sentinel errors to HTTP statuses.
// Unknown errors fall through to 500.
func storeErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, repository.ErrNoConfig):
		return http.StatusNotFound, "no_settings"
	case errors.Is(err, repository.ErrAlreadyDrafted), errors.Is(err, repository.ErrNotDrafted):
		return http.StatusConflict, "draft_state"
	case errors.Is(err, repository.ErrPickConflict):
		return http.StatusConflict, "pick_conflict"
	}
	return http.StatusInternalServerError, "internal_error"
}
