package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cookaing-api/internal/domain"
	"github.com/vfg2006/cookaing-api/internal/usecases/analytics"
	"github.com/vfg2006/cookaing-api/pkg/apiErrors"
	"github.com/vfg2006/cookaing-api/pkg/utils"
)

const webhookSecretHeader = "X-Webhook-Secret"

func RecordAnalytics(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		var input domain.RecordAnalyticsInput
		if err := decodeBody(r, &input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", err.Error())
			return
		}
		input.OrgID = claims.UserOrgID

		record, err := service.RecordAnalytics(r.Context(), input)
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		writeSuccess(w, http.StatusCreated, map[string]any{"analytics": record})
	}
}

func GetROIDashboard(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		filters := domain.AnalyticsFilters{
			OrgID:    claims.UserOrgID,
			Platform: strings.ToLower(query.Get("platform")),
			Niche:    query.Get("niche"),
		}

		var err error
		if filters.StartDate, err = utils.ParseDate(query.Get("startDate")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "startDate inválida, use YYYY-MM-DD", nil)
			return
		}
		if filters.EndDate, err = utils.ParseDate(query.Get("endDate")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "endDate inválida, use YYYY-MM-DD", nil)
			return
		}
		if filters.Limit, err = optionalInt(query.Get("limit")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", nil)
			return
		}

		dashboard, err := service.GetROIDashboard(r.Context(), filters)
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, map[string]any{"dashboard": dashboard})
	}
}

func GetPerformanceTrends(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		days, err := optionalInt(query.Get("days"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days inválido", nil)
			return
		}

		trends, err := service.GetPerformanceTrends(r.Context(), domain.TrendFilters{
			OrgID:    claims.UserOrgID,
			Metric:   query.Get("metric"),
			Platform: strings.ToLower(query.Get("platform")),
			Niche:    query.Get("niche"),
			Days:     days,
		})
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, map[string]any{"trends": trends})
	}
}

func GetContentComparison(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		ids, err := parseIDList(r.URL.Query().Get("contentIds"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "contentIds inválido, use 1,2,3", nil)
			return
		}

		comparison, err := service.GetContentComparison(r.Context(), claims.UserOrgID, ids)
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, map[string]any{"comparison": comparison})
	}
}

// PerformanceWebhook recebe métricas de integrações externas, sem JWT
func PerformanceWebhook(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload domain.WebhookPayload
		if err := decodeBody(r, &payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", err.Error())
			return
		}

		record, err := service.HandleWebhook(r.Context(), r.Header.Get(webhookSecretHeader), payload)
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		writeSuccess(w, http.StatusCreated, map[string]any{"analytics": record})
	}
}

func handleAnalyticsError(w http.ResponseWriter, err error) {
	var analyticsErr *analytics.AnalyticsError
	if errors.As(err, &analyticsErr) {
		if apiErrors.StatusFor(analyticsErr.Code) >= http.StatusInternalServerError {
			logrus.WithError(err).Error("Erro nas métricas de desempenho")
			apiErrors.WriteError(w, analyticsErr.Code, analyticsErr.Err.Error(), internalDetails(analyticsErr.Details, err))
			return
		}
		var details any
		if analyticsErr.Details != "" {
			details = analyticsErr.Details
		}
		apiErrors.WriteError(w, analyticsErr.Code, analyticsErr.Err.Error(), details)
		return
	}

	logrus.WithError(err).Error("Erro inesperado nas métricas de desempenho")
	apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro interno no servidor")
}

func optionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, errors.Errorf("inteiro inválido: %q", raw)
	}
	return value, nil
}

func parseIDList(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "id inválido: %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
