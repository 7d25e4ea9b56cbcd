package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/gads-insights-api/internal/api/handler/router"
	"github.com/vfg2006/gads-insights-api/internal/config"
	"github.com/vfg2006/gads-insights-api/internal/store"
	"github.com/vfg2006/gads-insights-api/internal/usecases/auditing"
	"github.com/vfg2006/gads-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/gads-insights-api/internal/usecases/querying"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

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
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Datasets(snapshots store.SnapshotStore, engine *querying.Engine, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets",
			Method:  http.MethodGet,
			Handler: ListDatasets(snapshots),
		},
		{
			Path:    "/v1/datasets/:tab/preview",
			Method:  http.MethodGet,
			Handler: PreviewDataset(snapshots, engine, cfg),
		},
		{
			Path:    "/v1/datasets/:tab/query",
			Method:  http.MethodPost,
			Handler: QueryDataset(snapshots, engine, cfg),
		},
	}
}

func Rollups(snapshots store.SnapshotStore, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(snapshots),
		},
		{
			Path:    "/v1/campaigns/:id/series",
			Method:  http.MethodGet,
			Handler: CampaignSeries(snapshots, cfg),
		},
		{
			Path:    "/v1/adgroups",
			Method:  http.MethodGet,
			Handler: ListAdGroups(snapshots),
		},
		{
			Path:    "/v1/assetgroups",
			Method:  http.MethodGet,
			Handler: ListAssetGroups(snapshots),
		},
		{
			Path:    "/v1/timeseries",
			Method:  http.MethodGet,
			Handler: Timeseries(snapshots, cfg),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/generate",
			Method:  http.MethodPost,
			Handler: GenerateInsight(service),
		},
		{
			Path:    "/v1/insights/estimate",
			Method:  http.MethodPost,
			Handler: EstimateInsight(service),
		},
		{
			Path:    "/v1/insights/history",
			Method:  http.MethodGet,
			Handler: InsightHistory(service),
		},
	}
}

func LandingPages(service auditing.Auditor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/landing-pages/extract-copy",
			Method:  http.MethodPost,
			Handler: ExtractLandingPageCopy(service),
		},
		{
			Path:    "/v1/landing-pages/analyze",
			Method:  http.MethodPost,
			Handler: AnalyzeLandingPage(service),
		},
		{
			Path:    "/v1/landing-pages/estimate",
			Method:  http.MethodPost,
			Handler: EstimateLandingPageAnalysis(service),
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
