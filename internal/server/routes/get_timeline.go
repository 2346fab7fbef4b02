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

// timelineResponse is the flat wire shape: the events under "items" with
// the pagination fields alongside them, not nested.
type timelineResponse struct {
	Items      []analysis.TimelineEvent `json:"items"`
	Total      int                      `json:"total"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
	TotalPages int                      `json:"total_pages"`
	NextPage   *int                     `json:"next_page"`
}

func newTimelineResponse(items []analysis.TimelineEvent, p analysis.Pagination) timelineResponse {
	return timelineResponse{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
		NextPage:   p.NextPage,
	}
}

func GetTimelineHandler(c echo.Context) error {
	type getTimelineParams struct {
		PoliticianID int64  `param:"id" validate:"required,numeric"`
		Page         int    `query:"page"`
		PageSize     int    `query:"page_size"`
		Sort         string `query:"sort"`
	}

	params := new(getTimelineParams)
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

	votes, err := q.ListVotesForPolitician(ctx, params.PoliticianID)
	if err != nil {
		logger.Error("Failed to list votes", "politician_id", params.PoliticianID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	contributions, err := q.ListContributionsForPolitician(ctx, params.PoliticianID)
	if err != nil {
		logger.Error("Failed to list contributions", "politician_id", params.PoliticianID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	transactions, err := q.ListStockTransactionsForPolitician(ctx, params.PoliticianID)
	if err != nil {
		logger.Error("Failed to list stock transactions", "politician_id", params.PoliticianID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	events, pagination := analysis.BuildTimeline(
		votes,
		contributions,
		transactions,
		params.Page,
		params.PageSize,
		params.Sort == "asc",
	)

	return c.JSON(http.StatusOK, newTimelineResponse(events, pagination))
}
