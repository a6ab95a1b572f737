package http

import (
	"net/http"
	"time"

	"github.com/parleyhq/parley/pkg/httpx"
	"github.com/parleyhq/parley/pkg/parleysdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Returns basic service health, uptime, and version. Always 200
//	@Description	while the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	parleysdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, parleysdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
