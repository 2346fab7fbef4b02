package routes

import (
	"net/http"

	"github.com/capitolwatch/backend/internal/server/middleware"

	"github.com/labstack/echo/v4"
)

func HealthHandler(c echo.Context) error {
	conn := c.(*middleware.AppContext).App.DBConn
	if err := conn.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":  "error",
			"message": "Database unreachable",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Service is healthy",
	})
}
