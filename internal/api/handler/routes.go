package handler

import (
	"net/http"

	"github.com/vfg2006/cookaing-api/internal/api/handler/router"
	"github.com/vfg2006/cookaing-api/internal/usecases/analytics"
	"github.com/vfg2006/cookaing-api/internal/usecases/authenticating"
	"github.com/vfg2006/cookaing-api/internal/usecases/lookup"
	"github.com/vfg2006/cookaing-api/pkg/middleware"
)

func Healthcheck(deps map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(deps),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Affiliates(service lookup.Lookuper) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/affiliates/lookup",
			Method:      http.MethodPost,
			Handler:     LookupProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/affiliates/enrich",
			Method:      http.MethodPost,
			Handler:     EnrichContent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/affiliates/products",
			Method:      http.MethodGet,
			Handler:     ListAffiliateProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Performance(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/performance/analytics",
			Method:      http.MethodPost,
			Handler:     RecordAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/performance/dashboard",
			Method:      http.MethodGet,
			Handler:     GetROIDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/performance/trends",
			Method:      http.MethodGet,
			Handler:     GetPerformanceTrends(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/performance/comparison",
			Method:      http.MethodGet,
			Handler:     GetContentComparison(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:    "/v1/performance/webhook",
			Method:  http.MethodPost,
			Handler: PerformanceWebhook(service),
		},
	}
}

func Seasonal(service SeasonalController) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/seasonal/upcoming",
			Method:      http.MethodGet,
			Handler:     GetUpcomingSeasonalEvents(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/seasonal/generate",
			Method:      http.MethodPost,
			Handler:     GenerateSeasonalContent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/seasonal/config",
			Method:      http.MethodGet,
			Handler:     GetSeasonalConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/seasonal/config",
			Method:      http.MethodPut,
			Handler:     UpdateSeasonalConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/seasonal/enable",
			Method:      http.MethodPost,
			Handler:     EnableSeasonal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/seasonal/disable",
			Method:      http.MethodPost,
			Handler:     DisableSeasonal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
	}
}
