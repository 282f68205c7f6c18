package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gridironlabs/draftboard/internal/domain/engine"
)

// DropsDependencies defines the interface for drop-score operations.
type DropsDependencies interface {
	DefaultDropWindow() int
	ComputeDrops(ctx context.Context, k int) (map[string]float64, error)
}

// DropsHandler handles drop-score requests.
type DropsHandler struct {
	deps DropsDependencies
}

// NewDropsHandler creates a new drops handler.
func NewDropsHandler(deps DropsDependencies) *DropsHandler {
	return &DropsHandler{deps: deps}
}

// HandleGetDrops handles GET /drops?k=N requests. A missing k falls back
// to the configured default window; k < 1 is rejected.
func (h *DropsHandler) HandleGetDrops(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_drops"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	k := h.deps.DefaultDropWindow()
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", wrap(op, ErrBadRequest))
			return
		}
		k = parsed
	}

	drops, err := h.deps.ComputeDrops(r.Context(), k)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidWindow) {
			writeError(w, http.StatusBadRequest, "invalid_window", wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, drops)
}
