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

func GetPoliticianStockTransactionsHandler(c echo.Context) error {
	type getStockTransactionsParams struct {
		PoliticianID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getStockTransactionsParams)
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

	transactions, err := q.ListStockTransactionsForPolitician(ctx, params.PoliticianID)
	if err != nil {
		logger.Error("Failed to list stock transactions", "politician_id", params.PoliticianID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, transactions)
}

// GetStockTransactionsHandler is the corpus-wide listing with optional
// politician and stock-name filters.
func GetStockTransactionsHandler(c echo.Context) error {
	type listStockTransactionsParams struct {
		PoliticianID *int64  `query:"politician_id"`
		StockName    *string `query:"stock_name"`
		Limit        int32   `query:"limit"`
		Offset       int32   `query:"offset"`
	}

	params := new(listStockTransactionsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if params.Limit <= 0 || params.Limit > 500 {
		params.Limit = 100
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	transactions, err := q.ListStockTransactions(ctx, db.ListStockTransactionsParams{
		PoliticianID: params.PoliticianID,
		StockName:    params.StockName,
		Limit:        params.Limit,
		Offset:       params.Offset,
	})
	if err != nil {
		logger.Error("Failed to list stock transactions", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, transactions)
}
