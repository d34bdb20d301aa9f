// Package site serves the embedded balance wheel UI.
package site

import (
	"context"
	"net/http"
)

// Register attaches the embedded UI routes to mux. The UI is a single
// page that talks to the /api endpoints and re-fetches whenever a
// mutation reports a change.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("/", http.FileServer(FS()))
}
