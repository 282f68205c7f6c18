package api

import (
	"context"
	"net/http"
)

// DraftDependencies defines the interface for draft-wide operations.
type DraftDependencies interface {
	ResetDraft(ctx context.Context) error
}

// DraftHandler handles draft-wide requests.
type DraftHandler struct {
	deps DraftDependencies
}

// NewDraftHandler creates a new draft handler.
func NewDraftHandler(deps DraftDependencies) *DraftHandler {
	return &DraftHandler{deps: deps}
}

// HandleReset handles POST /draft/reset requests, clearing every pick.
func (h *DraftHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	const op = "api.reset_draft"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.ResetDraft(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
