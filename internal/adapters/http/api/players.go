package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gridironlabs/draftboard/internal/adapters/repository"
	"github.com/gridironlabs/draftboard/internal/domain/model"
	"github.com/gridironlabs/draftboard/internal/domain/types"
)

// PlayersDependencies defines the interface for player operations.
type PlayersDependencies interface {
	ListPlayers(ctx context.Context) ([]types.Player, error)
	UpdatePlayer(ctx context.Context, id string, upd repository.PlayerUpdate) (types.Player, error)
	ToggleDraft(ctx context.Context, id string) (types.DraftResult, error)
}

// PlayersHandler handles player collection and per-player requests.
type PlayersHandler struct {
	deps PlayersDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayersDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandlePlayers handles GET /players requests.
func (h *PlayersHandler) HandlePlayers(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_players"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	players, err := h.deps.ListPlayers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, players)
}

// playerUpdateRequest is the closed set of fields PATCH /players/{id}
// accepts. Unknown fields are rejected by the decoder.
type playerUpdateRequest struct {
	Name            *string  `json:"name"`
	Team            *string  `json:"team"`
	Position        *string  `json:"position"`
	ProjectedPoints *float64 `json:"projected_points"`
	ByeWeek         *int     `json:"bye_week"`
	TargetStatus    *string  `json:"target_status"`
}

func (req playerUpdateRequest) toUpdate() (repository.PlayerUpdate, error) {
	upd := repository.PlayerUpdate{
		Name:            req.Name,
		Team:            req.Team,
		ProjectedPoints: req.ProjectedPoints,
		ByeWeek:         req.ByeWeek,
	}
	if req.Position != nil {
		pos, err := model.ParsePosition(*req.Position)
		if err != nil {
			return repository.PlayerUpdate{}, err
		}
		upd.Position = &pos
	}
	if req.TargetStatus != nil {
		status, err := model.ParseTargetStatus(*req.TargetStatus)
		if err != nil {
			return repository.PlayerUpdate{}, err
		}
		upd.TargetStatus = &status
	}
	return upd, nil
}

// HandlePlayerByID routes PATCH /players/{id} and POST /players/{id}/draft.
func (h *PlayersHandler) HandlePlayerByID(w http.ResponseWriter, r *http.Request) {
	const op = "api.player_by_id"
	path := strings.TrimPrefix(r.URL.Path, "/players/")

	if id, ok := strings.CutSuffix(path, "/draft"); ok {
		h.handleToggleDraft(w, r, id)
		return
	}

	if path == "" || strings.Contains(path, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, ErrBadRequest))
		return
	}
	if r.Method != http.MethodPatch {
		http.NotFound(w, r)
		return
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var req playerUpdateRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, err))
		return
	}
	upd, err := req.toUpdate()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, err))
		return
	}

	player, err := h.deps.UpdatePlayer(r.Context(), path, upd)
	if err != nil {
		status, code := storeErrorStatus(err)
		writeError(w, status, code, wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (h *PlayersHandler) handleToggleDraft(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.toggle_draft"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, ErrBadRequest))
		return
	}

	result, err := h.deps.ToggleDraft(r.Context(), id)
	if err != nil {
		status, code := storeErrorStatus(err)
		writeError(w, status, code, wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}
