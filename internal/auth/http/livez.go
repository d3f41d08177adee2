package http

import (
	"net/http"
	"time"

	"github.com/parleyhq/parley/pkg/httpx"
)

// LivezHandler is the liveness probe; it returns 200 whenever the process
// is serving.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, healthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
