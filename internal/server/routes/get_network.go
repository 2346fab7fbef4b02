package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/capitolwatch/backend/internal/analysis"
	"github.com/capitolwatch/backend/internal/db"
	"github.com/capitolwatch/backend/internal/server/middleware"
	"github.com/capitolwatch/backend/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

func GetNetworkHandler(c echo.Context) error {
	type getNetworkParams struct {
		PoliticianID int64 `param:"id" validate:"required,numeric"`
		NDays        int   `query:"n_days"`
	}

	params := new(getNetworkParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	windowDays := params.NDays
	if windowDays <= 0 {
		windowDays = analysis.DefaultNetworkWindowDays
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	politician, err := q.GetPolitician(ctx, params.PoliticianID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Politician not found"})
	}
	if err != nil {
		logger.Error("Failed to get politician", "id", params.PoliticianID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	// The window filter runs again in BuildNetwork; the query just keeps
	// the transferred row set small.
	cutoff := time.Now().UTC().AddDate(0, 0, -windowDays)
	contributions, err := q.ListContributionsSince(ctx, db.ListContributionsSinceParams{
		PoliticianID: params.PoliticianID,
		Cutoff:       cutoff.Truncate(24 * time.Hour),
	})
	if err != nil {
		logger.Error("Failed to list contributions", "politician_id", params.PoliticianID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	network := analysis.BuildNetwork(politician, contributions, time.Now(), windowDays)

	return c.JSON(http.StatusOK, network)
}
