package handler

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cookaing-api/internal/domain"
	"github.com/vfg2006/cookaing-api/internal/scheduler"
	"github.com/vfg2006/cookaing-api/pkg/apiErrors"
)

// SeasonalController é o contrato do serviço sazonal usado pelos handlers
type SeasonalController interface {
	Config() domain.SeasonalConfig
	UpdateConfig(cfg domain.SeasonalConfig) domain.SeasonalConfig
	Enable() domain.SeasonalConfig
	Disable() domain.SeasonalConfig
	UpcomingEvents(ctx context.Context) []domain.UpcomingEvent
	GenerateNow(ctx context.Context) (*domain.SeasonalRunResult, error)
}

func GetUpcomingSeasonalEvents(service SeasonalController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events := service.UpcomingEvents(r.Context())

		writeSuccess(w, http.StatusOK, map[string]any{
			"events": events,
			"count":  len(events),
		})
	}
}

func GenerateSeasonalContent(service SeasonalController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.GenerateNow(r.Context())
		if err != nil {
			if errors.Is(err, scheduler.ErrSyncRunning) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Geração de conteúdo sazonal já em andamento", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao gerar conteúdo sazonal")
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao gerar conteúdo sazonal")
			return
		}

		writeSuccess(w, http.StatusOK, map[string]any{"result": result})
	}
}

func GetSeasonalConfig(service SeasonalController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, http.StatusOK, map[string]any{"config": service.Config()})
	}
}

func UpdateSeasonalConfig(service SeasonalController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		// Campos ausentes mantêm o valor atual
		cfg := service.Config()
		if err := decodeBody(r, &cfg); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", err.Error())
			return
		}

		if cfg.LeadTimeDays <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "leadTimeDays deve ser maior que zero", nil)
			return
		}
		// A organização vem sempre do token, nunca do corpo
		cfg.OrgID = claims.UserOrgID

		writeSuccess(w, http.StatusOK, map[string]any{"config": service.UpdateConfig(cfg)})
	}
}

func EnableSeasonal(service SeasonalController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, http.StatusOK, map[string]any{"config": service.Enable()})
	}
}

func DisableSeasonal(service SeasonalController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, http.StatusOK, map[string]any{"config": service.Disable()})
	}
}
