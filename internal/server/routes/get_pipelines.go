package routes

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/capitolwatch/backend/internal/db"
	"github.com/capitolwatch/backend/internal/server/middleware"
	"github.com/capitolwatch/backend/internal/storage"
	"github.com/capitolwatch/backend/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

func GetPipelineStatusHandler(c echo.Context) error {
	type getStatusParams struct {
		PipelineID string `param:"id" validate:"required"`
	}

	type getStatusResponse struct {
		Status         string     `json:"status"`
		Message        string     `json:"message"`
		Pipeline       string     `json:"pipeline,omitempty"`
		StartTime      *time.Time `json:"startTime,omitempty"`
		CompletionTime *time.Time `json:"completionTime,omitempty"`
		RowsProcessed  int32      `json:"rowsProcessed"`
		RowsInserted   int32      `json:"rowsInserted"`
	}

	params := new(getStatusParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getStatusResponse{
			Status:  "error",
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getStatusResponse{
			Status:  "error",
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	run, err := q.GetPipelineRunByPublicID(ctx, params.PipelineID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, getStatusResponse{
			Status:  "error",
			Message: "Pipeline run not found",
		})
	}
	if err != nil {
		logger.Error("Failed to get pipeline run", "run_id", params.PipelineID, "err", err)
		return c.JSON(http.StatusInternalServerError, getStatusResponse{
			Status:  "error",
			Message: "Internal server error",
		})
	}

	message := run.Status
	if run.Notes != nil {
		message = *run.Notes
	}
	return c.JSON(http.StatusOK, getStatusResponse{
		Status:         run.Status,
		Message:        message,
		Pipeline:       run.PipelineName,
		StartTime:      &run.StartedAt,
		CompletionTime: run.EndedAt,
		RowsProcessed:  run.RowsProcessed,
		RowsInserted:   run.RowsInserted,
	})
}

func GetPipelineArchiveHandler(c echo.Context) error {
	type getArchiveParams struct {
		PipelineID string `param:"id" validate:"required"`
		Name       string `query:"name" validate:"omitempty,oneof=job result"`
	}

	params := new(getArchiveParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if params.Name == "" {
		params.Name = "result"
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	if app.S3 == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Archive storage is not configured"})
	}
	q := db.New(app.DBConn)

	run, err := q.GetPipelineRunByPublicID(ctx, params.PipelineID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Pipeline run not found"})
	}
	if err != nil {
		logger.Error("Failed to get pipeline run", "run_id", params.PipelineID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	key := fmt.Sprintf("pipelines/%s/%s/%s.json", run.PipelineName, run.PublicID, params.Name)
	payload, err := storage.GetRunPayload(ctx, app.S3, key)
	if err != nil {
		logger.Error("Failed to fetch archived payload", "run_id", params.PipelineID, "key", key, "err", err)
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Archived payload not found"})
	}

	return c.JSONBlob(http.StatusOK, payload)
}

func GetPipelineRunsHandler(c echo.Context) error {
	type getRunsParams struct {
		Limit int32 `query:"limit"`
	}

	params := new(getRunsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if params.Limit <= 0 || params.Limit > 100 {
		params.Limit = 20
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	runs, err := q.ListPipelineRuns(ctx, params.Limit)
	if err != nil {
		logger.Error("Failed to list pipeline runs", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, runs)
}
