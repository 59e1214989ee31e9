// Package httpserver builds the HTTP server that exposes the checklist
// authority to editor and CI processes.
package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server with sane defaults for this project. Request
// deadlines are enforced by per-route middleware, so only the header read
// gets a hard server-level timeout.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
