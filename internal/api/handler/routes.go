package handler

import (
	"net/http"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/api/handler/router"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/config"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/usecases/ads"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/usecases/analytics"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/usecases/chatting"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/usecases/performance"
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

func Ads(service ads.AdLister) []router.Route {
	return []router.Route{
		{
			Path:    "/api/ads",
			Method:  http.MethodGet,
			Handler: ListAds(service),
		},
		{
			Path:    "/api/competitors",
			Method:  http.MethodGet,
			Handler: ListCompetitors(service),
		},
	}
}

func Analytics(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/analytics",
			Method:  http.MethodGet,
			Handler: GetAnalytics(service),
		},
	}
}

func Performance(service performance.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/performance",
			Method:  http.MethodGet,
			Handler: GetPerformance(service),
		},
		{
			Path:    "/api/performance/kpis",
			Method:  http.MethodGet,
			Handler: GetPerformanceKPIs(service),
		},
	}
}

func Chat(service chatting.Chatter, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/api/chat",
			Method:  http.MethodPost,
			Handler: SendChatMessage(service),
		},
		{
			Path:    "/api/chat",
			Method:  http.MethodGet,
			Handler: ChatStatus(service),
		},
		{
			Path:    "/api/chat",
			Method:  http.MethodDelete,
			Handler: ClearChatSession(service),
		},
		{
			Path:    "/api/chat/stream",
			Method:  http.MethodPost,
			Handler: StreamChatMessage(service, cfg),
		},
	}
}
