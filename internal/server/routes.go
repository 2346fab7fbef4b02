package server

import (
	"github.com/capitolwatch/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", routes.HealthHandler)

	apiRoutes := e.Group("/api")

	// Politician routes
	apiRoutes.GET("/politicians", routes.GetPoliticiansHandler)
	apiRoutes.GET("/politicians/:id", routes.GetPoliticianHandler)
	apiRoutes.GET("/politicians/:id/votes", routes.GetPoliticianVotesHandler)
	apiRoutes.GET("/politicians/:id/contributions", routes.GetPoliticianContributionsHandler)
	apiRoutes.GET("/politicians/:id/stock-transactions", routes.GetPoliticianStockTransactionsHandler)

	// Aggregation routes
	apiRoutes.GET("/politicians/:id/timeline", routes.GetTimelineHandler)
	apiRoutes.GET("/politicians/:id/conflicts", routes.GetConflictsHandler)
	apiRoutes.GET("/politicians/:id/network", routes.GetNetworkHandler)

	// Corpus-wide stock transaction listing
	apiRoutes.GET("/stock-transactions", routes.GetStockTransactionsHandler)

	// Pipeline routes
	apiRoutes.POST("/pipelines/:name", routes.PostPipelineHandler)
	apiRoutes.GET("/pipelines/runs", routes.GetPipelineRunsHandler)
	apiRoutes.GET("/pipelines/:id/status", routes.GetPipelineStatusHandler)
	apiRoutes.GET("/pipelines/:id/archive", routes.GetPipelineArchiveHandler)
}
