package routes

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/capitolwatch/backend/internal/db"
	"github.com/capitolwatch/backend/internal/queue"
	"github.com/capitolwatch/backend/internal/server/middleware"
	"github.com/capitolwatch/backend/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// PostPipelineHandler triggers a pipeline run: a durable pipeline_runs
// row is created first, then the job is published. The run ID goes back
// to the caller so the UI can poll the status endpoint.
func PostPipelineHandler(c echo.Context) error {
	type postPipelineBody struct {
		Pipeline       string `param:"name" validate:"required,oneof=fec congress stock"`
		CongressNumber int    `json:"congress_number"`
		Session        int    `json:"session"`
	}

	type postPipelineResponse struct {
		PipelineID string `json:"pipelineId,omitempty"`
		Status     string `json:"status"`
		Message    string `json:"message"`
	}

	data := new(postPipelineBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, postPipelineResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, postPipelineResponse{
			Status:  "error",
			Message: "Unknown pipeline",
		})
	}

	queueName := queue.QueueForPipeline(data.Pipeline)
	if queueName == "" {
		return c.JSON(http.StatusBadRequest, postPipelineResponse{
			Status:  "error",
			Message: "Unknown pipeline",
		})
	}

	suffix, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, postPipelineResponse{
			Status:  "error",
			Message: "Internal server error",
		})
	}
	publicID := fmt.Sprintf("%s_%s", data.Pipeline, suffix)

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	run, err := q.CreatePipelineRun(ctx, db.CreatePipelineRunParams{
		PublicID:     publicID,
		PipelineName: data.Pipeline,
	})
	if err != nil {
		logger.Error("Failed to create pipeline run", "pipeline", data.Pipeline, "err", err)
		return c.JSON(http.StatusInternalServerError, postPipelineResponse{
			Status:  "error",
			Message: "Internal server error",
		})
	}

	msg := queue.PipelineJobMsg{
		RunID:          run.PublicID,
		Pipeline:       data.Pipeline,
		CongressNumber: data.CongressNumber,
		Session:        data.Session,
	}
	msgBytes, err := json.Marshal(msg)
	if err != nil {
		logger.Error("Failed to marshal pipeline job", "pipeline", data.Pipeline, "err", err)
		return c.JSON(http.StatusInternalServerError, postPipelineResponse{
			Status:  "error",
			Message: "Internal server error",
		})
	}

	ch := c.(*middleware.AppContext).App.Queue
	if err := queue.PublishFIFO(ch, queueName, msgBytes); err != nil {
		logger.Error("Failed to publish pipeline job", "pipeline", data.Pipeline, "queue", queueName, "err", err)
		notes := "failed to publish job"
		if finishErr := q.FinishPipelineRun(ctx, db.FinishPipelineRunParams{
			PublicID: run.PublicID,
			Status:   "failed",
			Notes:    &notes,
		}); finishErr != nil {
			logger.Error("Failed to mark pipeline run as failed", "run_id", run.PublicID, "err", finishErr)
		}
		return c.JSON(http.StatusInternalServerError, postPipelineResponse{
			Status:  "error",
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, postPipelineResponse{
		PipelineID: run.PublicID,
		Status:     "started",
		Message:    fmt.Sprintf("%s data pipeline started successfully", data.Pipeline),
	})
}
