package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cookaing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cookaing-api/internal/api/handler"
	"github.com/vfg2006/cookaing-api/internal/config"
	"github.com/vfg2006/cookaing-api/internal/domain"
	"github.com/vfg2006/cookaing-api/internal/usecases/analytics"
	"github.com/vfg2006/cookaing-api/internal/usecases/lookup"
	"github.com/vfg2006/cookaing-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fakeAuthenticator struct{}

func (fakeAuthenticator) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	user.ID = 99
	return user, nil
}

func (fakeAuthenticator) LoginUser(context.Context, string, string) (string, error) {
	return "token-admin", nil
}

func (fakeAuthenticator) GetUserProfile(_ context.Context, userID int) (*domain.User, error) {
	return &domain.User{ID: userID, OrgID: 7}, nil
}

func (fakeAuthenticator) ValidateToken(token string) (*domain.Claims, error) {
	switch token {
	case "token-admin":
		return &domain.Claims{UserID: 1, UserOrgID: 7, UserRoleID: middleware.RoleAdmin}, nil
	case "token-creator":
		return &domain.Claims{UserID: 2, UserOrgID: 7, UserRoleID: middleware.RoleCreator}, nil
	}
	return nil, errors.New("token inválido")
}

type fakeSeasonal struct {
	cfg domain.SeasonalConfig
}

func (f *fakeSeasonal) Config() domain.SeasonalConfig { return f.cfg }
func (f *fakeSeasonal) UpdateConfig(cfg domain.SeasonalConfig) domain.SeasonalConfig {
	f.cfg = cfg
	return cfg
}
func (f *fakeSeasonal) Enable() domain.SeasonalConfig  { f.cfg.Enabled = true; return f.cfg }
func (f *fakeSeasonal) Disable() domain.SeasonalConfig { f.cfg.Enabled = false; return f.cfg }
func (f *fakeSeasonal) UpcomingEvents(context.Context) []domain.UpcomingEvent {
	return []domain.UpcomingEvent{{Name: "Halloween", Date: "2026-10-31", DaysUntil: 10}}
}
func (f *fakeSeasonal) GenerateNow(context.Context) (*domain.SeasonalRunResult, error) {
	return &domain.SeasonalRunResult{}, nil
}

type fakeJob struct {
	triggered int
}

func (f *fakeJob) TriggerManualSync()        { f.triggered++ }
func (f *fakeJob) GetStatus() map[string]any { return map[string]any{"triggered": f.triggered} }

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type testServer struct {
	handler       http.Handler
	productRepo   *mocks.MockAffiliateProductRepository
	analyticsRepo *mocks.MockPerformanceAnalyticsRepository
	seasonal      *fakeSeasonal
	prune         *fakeJob
}

func newTestServer(t *testing.T, health map[string]handler.Pinger) testServer {
	ctrl := gomock.NewController(t)
	productRepo := mocks.NewMockAffiliateProductRepository(ctrl)
	analyticsRepo := mocks.NewMockPerformanceAnalyticsRepository(ctrl)
	seasonal := &fakeSeasonal{cfg: domain.SeasonalConfig{LeadTimeDays: 30, OrgID: 7}}
	prune := &fakeJob{}

	h := NewHandler(Services{
		Authenticator: fakeAuthenticator{},
		Lookup:        lookup.NewService(config.Lookup{}, config.Amazon{}, productRepo, nil),
		Analytics:     analytics.NewService(config.Webhook{Secret: "s3cr3t", DefaultOrgID: 7}, analyticsRepo),
		Seasonal:      seasonal,
		CronJobs:      handler.CronJobServices{CatalogPruneService: prune},
		Health:        health,
	})

	return testServer{handler: h, productRepo: productRepo, analyticsRepo: analyticsRepo, seasonal: seasonal, prune: prune}
}

func (s testServer) do(method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var decoded map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	return rec, decoded
}

func TestHealthcheck(t *testing.T) {
	server := newTestServer(t, map[string]handler.Pinger{"postgres": fakePinger{}})
	rec, body := server.do(http.MethodGet, "/healthcheck", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	down := newTestServer(t, map[string]handler.Pinger{"postgres": fakePinger{err: errors.New("timeout")}})
	rec, body = down.do(http.MethodGet, "/healthcheck", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "SRV_004", body["code"])
}

func TestAuthRequired(t *testing.T) {
	server := newTestServer(t, nil)

	rec, body := server.do(http.MethodPost, "/v1/affiliates/lookup", "", `{"tags":["vegan"]}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_006", body["code"])
}

func TestLookupFallsBackToStaticProducts(t *testing.T) {
	server := newTestServer(t, nil)

	server.productRepo.EXPECT().GetAffiliateProducts(gomock.Any(), 7, gomock.Any()).Return(nil, errors.New("banco fora"))

	rec, body := server.do(http.MethodPost, "/v1/affiliates/lookup", "token-creator", `{"tags":["vegan"],"limit":2}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])

	products := body["products"].([]any)
	for _, p := range products {
		assert.Equal(t, "static", p.(map[string]any)["source"])
	}
}

func TestEnrichRequiresContent(t *testing.T) {
	server := newTestServer(t, nil)

	rec, body := server.do(http.MethodPost, "/v1/affiliates/enrich", "token-creator", `{"content":"  "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_002", body["code"])
}

func TestPerformanceWebhook(t *testing.T) {
	server := newTestServer(t, nil)

	t.Run("segredo incorreto", func(t *testing.T) {
		rec, _ := server.do(http.MethodPost, "/v1/performance/webhook", "", `{"platform":"tiktok","contentId":1,"metrics":{}}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("sem métricas", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/performance/webhook", strings.NewReader(`{"platform":"tiktok","contentId":1}`))
		req.Header.Set("X-Webhook-Secret", "s3cr3t")
		rec := httptest.NewRecorder()
		server.handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("registro criado", func(t *testing.T) {
		server.analyticsRepo.EXPECT().CreatePerformanceAnalytics(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *domain.PerformanceAnalytics) (*domain.PerformanceAnalytics, error) {
				return r, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/performance/webhook",
			strings.NewReader(`{"platform":"tiktok","contentId":1,"metrics":{"views":1000,"clicks":50,"conversions":5,"revenue":"200","adSpend":"50"}}`))
		req.Header.Set("X-Webhook-Secret", "s3cr3t")
		rec := httptest.NewRecorder()
		server.handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		record := body["analytics"].(map[string]any)
		assert.Equal(t, "300.00", record["roi"])
		assert.Equal(t, float64(7), record["orgId"])
	})
}

func TestPerformanceQueryValidation(t *testing.T) {
	server := newTestServer(t, nil)

	rec, _ := server.do(http.MethodGet, "/v1/performance/dashboard?startDate=10/03/2026", "token-creator", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = server.do(http.MethodGet, "/v1/performance/comparison?contentIds=1,x", "token-creator", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body := server.do(http.MethodGet, "/v1/performance/comparison", "token-creator", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_002", body["code"])
}

func TestPerformanceDashboard(t *testing.T) {
	server := newTestServer(t, nil)

	server.analyticsRepo.EXPECT().ListPerformanceAnalytics(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters domain.AnalyticsFilters) ([]*domain.PerformanceAnalytics, error) {
			assert.Equal(t, 7, filters.OrgID)
			assert.Equal(t, "instagram", filters.Platform)
			require.NotNil(t, filters.StartDate)
			assert.Equal(t, "2026-03-01", filters.StartDate.Format("2006-01-02"))
			return nil, nil
		})

	rec, body := server.do(http.MethodGet, "/v1/performance/dashboard?startDate=2026-03-01&platform=Instagram", "token-creator", "")

	require.Equal(t, http.StatusOK, rec.Code)
	dashboard := body["dashboard"].(map[string]any)
	assert.Equal(t, "0", dashboard["summary"].(map[string]any)["clickThroughRate"])
}

func TestPerformanceDashboard_DatabaseFailure(t *testing.T) {
	server := newTestServer(t, nil)

	server.analyticsRepo.EXPECT().ListPerformanceAnalytics(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("pq: connection refused"))

	rec, body := server.do(http.MethodGet, "/v1/performance/dashboard", "token-creator", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "SRV_002", body["code"])
	assert.NotEmpty(t, body["error"])
	assert.Equal(t, "pq: connection refused", body["details"])
}

func TestListAffiliateProducts_DatabaseFailure(t *testing.T) {
	server := newTestServer(t, nil)

	server.productRepo.EXPECT().GetAffiliateProducts(gomock.Any(), 7, 50).
		Return(nil, errors.New("pq: connection refused"))

	rec, body := server.do(http.MethodGet, "/v1/affiliates/products", "token-creator", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "SRV_002", body["code"])
	assert.Contains(t, body["details"], "pq: connection refused")
}

func TestUpdateSeasonalConfig_IgnoresOrgFromBody(t *testing.T) {
	server := newTestServer(t, nil)
	server.seasonal.cfg.OrgID = 3

	rec, body := server.do(http.MethodPut, "/v1/seasonal/config", "token-admin", `{"leadTimeDays":30,"orgId":42}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, server.seasonal.cfg.OrgID)
	assert.Equal(t, float64(7), body["config"].(map[string]any)["orgId"])
}

func TestSeasonalConfigRoles(t *testing.T) {
	server := newTestServer(t, nil)

	rec, _ := server.do(http.MethodPut, "/v1/seasonal/config", "token-creator", `{"leadTimeDays":14}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, body := server.do(http.MethodPut, "/v1/seasonal/config", "token-admin", `{"leadTimeDays":14,"holidays":["christmas"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(14), body["config"].(map[string]any)["leadTimeDays"])
	assert.Equal(t, []string{"christmas"}, server.seasonal.cfg.Holidays)

	rec, _ = server.do(http.MethodPut, "/v1/seasonal/config", "token-admin", `{"leadTimeDays":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = server.do(http.MethodPost, "/v1/seasonal/enable", "token-admin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["config"].(map[string]any)["enabled"])

	rec, body = server.do(http.MethodGet, "/v1/seasonal/upcoming", "token-creator", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])
}

func TestCronJobs(t *testing.T) {
	server := newTestServer(t, nil)

	rec, _ := server.do(http.MethodPost, "/v1/cron/meta/run", "token-admin", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = server.do(http.MethodPost, "/v1/cron/seasonal/run", "token-admin", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code, "serviço sazonal não registrado")

	rec, _ = server.do(http.MethodPost, "/v1/cron/catalog-prune/run", "token-admin", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, server.prune.triggered)

	rec, _ = server.do(http.MethodPost, "/v1/cron/catalog-prune/run", "token-creator", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, body := server.do(http.MethodGet, "/v1/cron/status", "token-admin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body["jobs"], "catalog-prune")
}

func TestUnknownRoute(t *testing.T) {
	server := newTestServer(t, nil)

	rec, body := server.do(http.MethodGet, "/v1/nao-existe", "token-admin", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "VAL_004", body["code"])
}
