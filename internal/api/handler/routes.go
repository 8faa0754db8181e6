package handler

import (
	"net/http"

	"github.com/vfg2006/ads-monitor-api/internal/api/handler/router"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/adfetching"
	"github.com/vfg2006/ads-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ads-monitor-api/pkg/middleware"
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

// Ads registra o endpoint de anúncios no caminho legado e no versionado
func Ads(service adfetching.AdFetcher) []router.Route {
	return []router.Route{
		{
			Path:    "/api/meta-ads",
			Method:  http.MethodGet,
			Handler: ListAds(service),
		},
		{
			Path:    "/v1/ads",
			Method:  http.MethodGet,
			Handler: ListAds(service),
		},
		{
			Path:    "/v1/ads/overview",
			Method:  http.MethodGet,
			Handler: GetAdsOverview(service),
		},
		{
			Path:    "/v1/ads/runs",
			Method:  http.MethodGet,
			Handler: ListFetchRuns(service),
		},
	}
}

func Library(proxy adfetching.LibraryProxy) []router.Route {
	return []router.Route{
		{
			Path:    "/api/ads",
			Method:  http.MethodGet,
			Handler: ProxyLibraryAds(proxy),
		},
	}
}

func Health(checker adfetching.HealthChecker) []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: IntegrationHealth(checker),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodGet,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron-status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

// Fallbacks responde 404 em JSON e recusa métodos diferentes de GET com 405
func Fallbacks() router.ConfigRouter {
	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", r.URL.Path)
	})

	return router.WithFallbacks(notFound, middleware.GetOnly()(notFound))
}
