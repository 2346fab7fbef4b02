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

func GetPoliticiansHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	politicians, err := q.ListPoliticians(ctx)
	if err != nil {
		logger.Error("Failed to list politicians", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, politicians)
}

// GetPoliticianHandler returns the detail view, including the external
// aliases the record was resolved from.
func GetPoliticianHandler(c echo.Context) error {
	type getPoliticianParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	type getPoliticianResponse struct {
		db.Politician
		Aliases []db.PoliticianAlias `json:"aliases"`
	}

	params := new(getPoliticianParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	politician, err := q.GetPolitician(ctx, params.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Politician not found"})
	}
	if err != nil {
		logger.Error("Failed to get politician", "id", params.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	aliases, err := q.ListAliasesForPolitician(ctx, politician.ID)
	if err != nil {
		logger.Error("Failed to list aliases", "id", params.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, getPoliticianResponse{
		Politician: politician,
		Aliases:    aliases,
	})
}
