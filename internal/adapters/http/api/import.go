package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gridironlabs/draftboard/internal/domain/importer"
	"github.com/gridironlabs/draftboard/internal/domain/types"
)

// ImportDependencies defines the interface for bulk player imports.
type ImportDependencies interface {
	ImportPlayers(ctx context.Context, r io.Reader) (types.ImportResult, error)
}

// ImportHandler handles CSV upload requests.
type ImportHandler struct {
	deps     ImportDependencies
	maxBytes int64
}

// NewImportHandler creates a new import handler.
func NewImportHandler(deps ImportDependencies, maxBytes int64) *ImportHandler {
	return &ImportHandler{deps: deps, maxBytes: maxBytes}
}

// HandleImport handles POST /players/import requests. The CSV arrives
// either as a multipart "file" field or as the raw request body.
func (h *ImportHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	const op = "api.import_players"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	var src io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", wrap(op, err))
			return
		}
		defer file.Close()
		src = file
	}

	result, err := h.deps.ImportPlayers(r.Context(), src)
	if err != nil {
		var verr *importer.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Code:    "invalid_csv",
				Message: verr.Reason,
				Rows:    verr.Rows,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}
