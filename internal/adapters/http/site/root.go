// Package site serves the embedded draft board page.
package site

import (
	"context"
	"net/http"
)

// Register attaches the embedded draft board routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// Serve the embedded board at root /
	mux.Handle("/", http.FileServer(FS()))
}
