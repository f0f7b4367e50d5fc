package handler

import (
	"net/http"

	"github.com/zyra-app/zyra-api/internal/api/handler/router"
	"github.com/zyra-app/zyra-api/internal/usecases/analytics"
	"github.com/zyra-app/zyra-api/internal/usecases/catalog"
	"github.com/zyra-app/zyra-api/internal/usecases/notifying"
	"github.com/zyra-app/zyra-api/internal/usecases/reporting"
	"github.com/zyra-app/zyra-api/internal/usecases/suggesting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Products(service catalog.CatalogService, suggester suggesting.SuggestionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(service),
		},
		{
			Path:    "/v1/products/export",
			Method:  http.MethodGet,
			Handler: ExportProductsCSV(service),
		},
		{
			Path:    "/v1/products/import",
			Method:  http.MethodPost,
			Handler: ImportProductsCSV(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodGet,
			Handler: GetProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(service),
		},
		{
			Path:    "/v1/products/:id/publish",
			Method:  http.MethodPost,
			Handler: PublishProduct(service),
		},
		{
			Path:    "/v1/products/:id/suggestions",
			Method:  http.MethodGet,
			Handler: GetProductSuggestions(service, suggester),
		},
	}
}

func Analytics(service analytics.AnalyticsService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/metrics",
			Method:  http.MethodGet,
			Handler: GetDashboardMetrics(service),
		},
		{
			Path:    "/v1/analytics/campaigns",
			Method:  http.MethodGet,
			Handler: GetCampaignPerformance(service),
		},
		{
			Path:    "/v1/analytics/seo",
			Method:  http.MethodGet,
			Handler: GetSEOPerformance(service),
		},
	}
}

func Reports(service reporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/export",
			Method:  http.MethodGet,
			Handler: ExportReport(service),
		},
		{
			Path:    "/v1/reports/preview",
			Method:  http.MethodGet,
			Handler: PreviewReport(service),
		},
	}
}

func Notifications(service notifying.NotificationService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/notifications",
			Method:  http.MethodGet,
			Handler: ListNotifications(service),
		},
		{
			Path:    "/v1/notifications/:id/read",
			Method:  http.MethodPost,
			Handler: MarkNotificationRead(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
