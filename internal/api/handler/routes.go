package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/strategic-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/strategic-dashboard-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(dataset DatasetVersioner) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(dataset),
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
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

// DashboardPrefix agrupa as visões do painel; as rotas de Dashboard são relativas a ele
const DashboardPrefix = "/v1/dashboard"

func Dashboard(reporter reporting.Reporter, streamInterval time.Duration) []router.Route {
	allRoles := middlewares{middleware.AllRoles()}

	return []router.Route{
		{Path: "/", Method: http.MethodGet, Handler: GetDashboard(reporter), Middlewares: allRoles},
		{Path: "/summary", Method: http.MethodGet, Handler: GetSummary(reporter), Middlewares: allRoles},
		{Path: "/monthly", Method: http.MethodGet, Handler: GetMonthlyRevenue(reporter), Middlewares: allRoles},
		{Path: "/top-products", Method: http.MethodGet, Handler: GetTopProducts(reporter), Middlewares: allRoles},
		{Path: "/channels", Method: http.MethodGet, Handler: GetChannelDistribution(reporter), Middlewares: allRoles},
		{Path: "/regions", Method: http.MethodGet, Handler: GetRegionDistribution(reporter), Middlewares: allRoles},
		{Path: "/categories", Method: http.MethodGet, Handler: GetCategoryDistribution(reporter), Middlewares: allRoles},
		{Path: "/customer-profile", Method: http.MethodGet, Handler: GetCustomerProfile(reporter), Middlewares: allRoles},
		{Path: "/recurrence", Method: http.MethodGet, Handler: GetRecurrence(reporter), Middlewares: allRoles},
		{Path: "/filters", Method: http.MethodGet, Handler: GetFilterOptions(reporter), Middlewares: allRoles},
		{Path: "/stream", Method: http.MethodGet, Handler: StreamDashboard(reporter, streamInterval), Middlewares: allRoles},
	}
}

func Insights(insighter insighting.Insighter, dataset DatasetVersioner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/insights",
			Method:      http.MethodGet,
			Handler:     GetInsights(insighter, dataset),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func History(history SnapshotHistory, defaultSource string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/history",
			Method:      http.MethodGet,
			Handler:     GetSalesHistory(history, defaultSource),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
	}
}

func ProductRanking(service ranking.RankingService, dataset DatasetVersioner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products/ranking",
			Method:      http.MethodGet,
			Handler:     GetProductRanking(service, dataset),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
	}
}

func Exports(exporter exporting.Exporter, dataset DatasetVersioner) []router.Route {
	allRoles := middlewares{middleware.AllRoles()}

	return []router.Route{
		{Path: "/v1/export/sales.csv", Method: http.MethodGet, Handler: ExportSalesCSV(exporter, dataset), Middlewares: allRoles},
		{Path: "/v1/export/sales.json", Method: http.MethodGet, Handler: ExportSalesJSON(exporter, dataset), Middlewares: allRoles},
		{Path: "/v1/export/dashboard.json", Method: http.MethodGet, Handler: ExportDashboardJSON(exporter, dataset), Middlewares: allRoles},
		{
			Path:        "/v1/export/dashboard.pdf",
			Method:      http.MethodGet,
			Handler:     ExportDashboardPDF(exporter, dataset),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
	}
}
