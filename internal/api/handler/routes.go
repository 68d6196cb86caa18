package handler

import (
	"net/http"

	"github.com/vfg2006/value-protractor-api/internal/api/handler/router"
	"github.com/vfg2006/value-protractor-api/internal/config"
	"github.com/vfg2006/value-protractor-api/internal/scheduler"
	"github.com/vfg2006/value-protractor-api/internal/usecases/aggregating"
	"github.com/vfg2006/value-protractor-api/internal/usecases/diagnosing"
	"github.com/vfg2006/value-protractor-api/internal/usecases/overlapping"
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

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/catalog",
			Method:  http.MethodGet,
			Handler: MetricCatalog(),
		},
	}
}

func Aggregates(service *aggregating.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/adAccount/:id/aggregates",
			Method:  http.MethodGet,
			Handler: GetAccountAggregates(service),
		},
	}
}

func Diagnosis(cfg *config.Config, service *diagnosing.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/adAccount/:id/diagnosis",
			Method:  http.MethodGet,
			Handler: GetAccountDiagnosis(cfg, service),
		},
	}
}

func Overlap(service *overlapping.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/adAccount/:id/overlap",
			Method:  http.MethodGet,
			Handler: GetAccountOverlap(service),
		},
	}
}

func CronJobs(service *scheduler.RetentionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/retention/run",
			Method:  http.MethodPost,
			Handler: RunRetention(service),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: CronStatus(service),
		},
	}
}
