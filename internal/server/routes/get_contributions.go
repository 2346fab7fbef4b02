package routes

import (
	"errors"
	"net/http"

	"github.com/capitolwatch/backend/internal/db"
	"github.com/capitolwatch/backend/internal/server/middleware"
	"github.com/capitolwatch/backend/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

func GetPoliticianContributionsHandler(c echo.Context) error {
	type getContributionsParams struct {
		PoliticianID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getContributionsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	if _, err := q.GetPolitician(ctx, params.PoliticianID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Politician not found"})
		}
		logger.Error("Failed to get politician", "id", params.PoliticianID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	contributions, err := q.ListContributionsForPolitician(ctx, params.PoliticianID)
	if err != nil {
		logger.Error("Failed to list contributions", "politician_id", params.PoliticianID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, contributions)
}
