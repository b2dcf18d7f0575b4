// Package health serves the liveness endpoint.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aanand-mishra/students-service/internal/utils/response"
)

// Pinger is anything that can report whether it is reachable.
// Every storage.Storage is a Pinger.
type Pinger interface {
	Ping(ctx context.Context) error
}

// checkTimeout bounds how long a health probe waits on the store.
const checkTimeout = 2 * time.Second

// Check handles GET /healthz: 200 {"status":"ok"} when the store answers,
// 503 with the error otherwise.
func Check(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			slog.Error("health check failed", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusServiceUnavailable, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.OK(response.StatusOK))
	}
}
