package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-analyzer-api/infrastructure/repository"
	"github.com/vfg2006/sales-analyzer-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/importing"
	"github.com/vfg2006/sales-analyzer-api/pkg/middleware"
)

type Middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
	}
}

// Dashboard agrupa as rotas de análise, todas sujeitas ao limite de requisições
func Dashboard(service analyzing.Analyzer, limiter *middleware.RateLimiter) []router.Route {
	limited := Middlewares{middleware.AllRoles(), limiter.Middleware()}

	return []router.Route{
		{Path: "/v1/dashboard", Method: http.MethodGet, Handler: GetDashboard(service), Middlewares: limited},
		{Path: "/v1/sales/kpis", Method: http.MethodGet, Handler: GetKPIs(service), Middlewares: limited},
		{Path: "/v1/sales/velocity", Method: http.MethodGet, Handler: GetVelocity(service), Middlewares: limited},
		{Path: "/v1/sales/regions", Method: http.MethodGet, Handler: GetRegions(service), Middlewares: limited},
		{Path: "/v1/sales/insight", Method: http.MethodGet, Handler: GetInsight(service), Middlewares: limited},
	}
}

func Sales(
	analyzer analyzing.Analyzer,
	importer importing.Importer,
	exporter *exporting.Exporter,
	loc *time.Location,
	exportMaxRows int,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(analyzer),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     CreateSales(importer, loc),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/upload",
			Method:      http.MethodPost,
			Handler:     UploadSales(importer, loc),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/export",
			Method:      http.MethodGet,
			Handler:     ExportSales(analyzer, exporter, exportMaxRows),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
	}
}

func InsightHistory(repo repository.InsightSnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights/history",
			Method:      http.MethodGet,
			Handler:     GetInsightHistory(repo),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: Middlewares{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: Middlewares{middleware.AdminOrSupervisor()},
		},
	}
}
