package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cookaing-api/pkg/apiErrors"
)

// Pinger verifica uma dependência externa (banco, cache)
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(deps map[string]Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := make(map[string]string, len(deps))
		for name, dep := range deps {
			if err := dep.Ping(ctx); err != nil {
				logrus.WithError(err).WithField("dependency", name).Warn("Dependência indisponível no healthcheck")
				checks[name] = "down"
				continue
			}
			checks[name] = "up"
		}

		for _, status := range checks {
			if status == "down" {
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "Dependência indisponível", checks)
				return
			}
		}

		writeSuccess(w, http.StatusOK, map[string]any{
			"time":   time.Now().UTC().Format(time.RFC3339),
			"checks": checks,
		})
	})
}
