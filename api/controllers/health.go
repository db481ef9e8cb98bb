package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/snkrsdev/snkrs-backend/api/responses"
	"github.com/snkrsdev/snkrs-backend/pkg/config"
)

// Pinger is the connectivity probe shared by the database and redis clients.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Snkrs-Env", cfg.App.Env)
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness of the backing dependencies. A nil pinger is
// treated as "not configured" and skipped.
func HealthReady(cfg *config.Config, db Pinger, cache Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Snkrs-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := map[string]string{}
		ready := true

		if db != nil {
			if err := db.Ping(ctx); err != nil {
				checks["database"] = "down"
				ready = false
			} else {
				checks["database"] = "up"
			}
		}
		if cache != nil {
			if err := cache.Ping(ctx); err != nil {
				checks["redis"] = "down"
				ready = false
			} else {
				checks["redis"] = "up"
			}
		}

		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "degraded"
		}
		responses.WriteJSON(w, status, map[string]any{"status": state, "checks": checks})
	}
}
