package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/repository"
	"github.com/vfg2006/cafe-analytics-api/internal/api/handler/router"
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

func Transactions(repo repository.TransactionRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/transactions",
			Method:  http.MethodGet,
			Handler: ListTransactions(repo),
		},
		{
			Path:    "/v1/transactions/items",
			Method:  http.MethodGet,
			Handler: ListTransactionItems(repo),
		},
	}
}

func Daytimes(repo repository.DaytimeRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/daytimes",
			Method:  http.MethodGet,
			Handler: ListDaytimes(repo),
		},
	}
}

func Users(repo repository.UserRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/users",
			Method:  http.MethodGet,
			Handler: ListUsers(repo),
		},
	}
}

func MenuItems(repo repository.MenuItemRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/menu-items",
			Method:  http.MethodGet,
			Handler: ListMenuItems(repo),
		},
		{
			Path:    "/v1/dashboard/overview",
			Method:  http.MethodGet,
			Handler: GetDashboardOverview(repo),
		},
	}
}

func RfmSegments(repo repository.RfmSegmentRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/segments/rfm",
			Method:  http.MethodGet,
			Handler: ListRfmSegments(repo),
		},
		{
			Path:    "/v1/segments/rfm",
			Method:  http.MethodPost,
			Handler: CreateRfmSegment(repo),
		},
	}
}

func Recommendations(repo repository.RecommendationRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/recommendations",
			Method:  http.MethodGet,
			Handler: ListRecommendations(repo),
		},
		{
			Path:    "/v1/recommendations",
			Method:  http.MethodPost,
			Handler: CreateRecommendation(repo),
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
