package handler

import (
	"net/http"

	"github.com/vfg2006/adreport-api/internal/api/handler/router"
	"github.com/vfg2006/adreport-api/internal/usecases/advertising"
	"github.com/vfg2006/adreport-api/internal/usecases/authenticating"
	"github.com/vfg2006/adreport-api/internal/usecases/reporting"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Ads(service advertising.AdService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ads",
			Method:  http.MethodGet,
			Handler: ListAds(service),
		},
		{
			Path:    "/v1/ads",
			Method:  http.MethodPost,
			Handler: CreateAd(service),
		},
	}
}

func Stats(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stats",
			Method:  http.MethodGet,
			Handler: GetDashboardStats(service),
		},
	}
}
