package http

import (
	"net/http"
	"time"

	"github.com/parleyhq/parley/internal/store"
	"github.com/parleyhq/parley/pkg/httpx"
	"github.com/parleyhq/parley/pkg/parleysdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Returns service health including the state of the database
//	@Description	dependency. 503 until every check passes.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	parleysdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	parleysdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{"database": "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, parleysdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
