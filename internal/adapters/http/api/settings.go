package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/gridironlabs/draftboard/internal/app"
	"github.com/gridironlabs/draftboard/internal/domain/types"
)

// SettingsDependencies defines the interface for league settings operations.
type SettingsDependencies interface {
	Settings(ctx context.Context) (types.LeagueSettings, error)
	UpdateSettings(ctx context.Context, upd service.SettingsUpdate) (types.LeagueSettings, error)
}

// SettingsHandler handles league settings requests.
type SettingsHandler struct {
	deps SettingsDependencies
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(deps SettingsDependencies) *SettingsHandler {
	return &SettingsHandler{deps: deps}
}

// settingsUpdateRequest mirrors the PATCH /settings body.
type settingsUpdateRequest struct {
	Teams        *int     `json:"teams"`
	QBSlots      *int     `json:"qb_slots"`
	RBSlots      *int     `json:"rb_slots"`
	WRSlots      *int     `json:"wr_slots"`
	TESlots      *int     `json:"te_slots"`
	FlexSlots    *int     `json:"flex_slots"`
	FlexEligible []string `json:"flex_eligible"`
}

// HandleSettings handles GET /settings and PATCH /settings requests.
func (h *SettingsHandler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	const op = "api.settings"
	switch r.Method {
	case http.MethodGet:
		settings, err := h.deps.Settings(r.Context())
		if err != nil {
			status, code := storeErrorStatus(err)
			writeError(w, status, code, wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, settings)

	case http.MethodPatch:
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		var req settingsUpdateRequest
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", wrap(op, err))
			return
		}

		settings, err := h.deps.UpdateSettings(r.Context(), service.SettingsUpdate{
			Teams:        req.Teams,
			QBSlots:      req.QBSlots,
			RBSlots:      req.RBSlots,
			WRSlots:      req.WRSlots,
			TESlots:      req.TESlots,
			FlexSlots:    req.FlexSlots,
			FlexEligible: req.FlexEligible,
		})
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, settings)

	default:
		http.NotFound(w, r)
	}
}
