package routes

import (
	"errors"
	"net/http"

	"github.com/capitolwatch/backend/internal/analysis"
	"github.com/capitolwatch/backend/internal/db"
	"github.com/capitolwatch/backend/internal/server/middleware"
	"github.com/capitolwatch/backend/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// GetConflictsHandler recomputes conflicts from the current votes and
// transactions on every read. The stored potential_conflict flag is a
// display hint only and never consulted here.
func GetConflictsHandler(c echo.Context) error {
	type getConflictsParams struct {
		PoliticianID int64 `param:"id" validate:"required,numeric"`
		Days         int   `query:"days"`
	}

	params := new(getConflictsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	windowDays := params.Days
	if windowDays <= 0 {
		windowDays = analysis.DefaultConflictWindowDays
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

	votes, err := q.ListVotesForPolitician(ctx, params.PoliticianID)
	if err != nil {
		logger.Error("Failed to list votes", "politician_id", params.PoliticianID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	transactions, err := q.ListStockTransactionsForPolitician(ctx, params.PoliticianID)
	if err != nil {
		logger.Error("Failed to list stock transactions", "politician_id", params.PoliticianID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	// The response is the flat conflict list itself, no envelope.
	return c.JSON(http.StatusOK, analysis.DetectConflicts(transactions, votes, windowDays))
}
