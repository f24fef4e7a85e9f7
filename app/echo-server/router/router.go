package router

import (
	"productReco/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/app/recommendations")

	reco.GET("/products", handler.ListProducts)
	reco.GET("/users", handler.ListUsers)
	reco.GET("/get-recommendation", handler.GetRecommendations)
}

func SetupMetricsRoutes(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
