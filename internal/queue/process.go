package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/capitolwatch/backend/internal/db"
	"github.com/capitolwatch/backend/internal/importer"
	"github.com/capitolwatch/backend/internal/resolver"
	"github.com/capitolwatch/backend/internal/sources"
	"github.com/capitolwatch/backend/internal/storage"
	"github.com/capitolwatch/backend/internal/util"
	"github.com/capitolwatch/backend/pkg/leaselock"
	"github.com/capitolwatch/backend/pkg/logger"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultCongressNumber = 118

// ProcessPipelineMessage runs one pipeline job end to end: dispatch to
// the matching importer, record the outcome on the pipeline_runs row,
// and archive the job + result for audit. A returned error sends the
// message down the retry path; the run row is marked failed so the UI
// is never left polling a run that silently died.
func ProcessPipelineMessage(
	ctx context.Context,
	s3Client *awss3.Client,
	conn *pgxpool.Pool,
	msg string,
) (err error) {
	data := new(PipelineJobMsg)
	if err = json.Unmarshal([]byte(msg), &data); err != nil {
		return err
	}

	q := db.New(conn)
	defer func() {
		if err == nil || data.RunID == "" {
			return
		}
		updateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		notes := err.Error()
		if updateErr := q.FinishPipelineRun(updateCtx, db.FinishPipelineRunParams{
			PublicID: data.RunID,
			Status:   "failed",
			Notes:    &notes,
		}); updateErr != nil {
			logger.Warn("[Queue] Failed to mark pipeline run as failed", "run_id", data.RunID, "err", updateErr)
		}
	}()

	switch data.Pipeline {
	case "fec", "congress", "stock":
	default:
		logger.Warn("[Queue] Dropping message for unknown pipeline", "pipeline", data.Pipeline, "run_id", data.RunID)
		return nil
	}

	res := resolver.New(resolver.NewPGStore(conn), nil)

	// One active run per pipeline across all workers. A busy lock sends
	// the message down the retry path instead of interleaving imports.
	var result importer.Result
	lock := leaselock.New(conn)
	err = lock.WithLease(ctx, "pipeline:"+data.Pipeline, leaselock.Options{TTL: 10 * time.Minute}, func(ctx context.Context) error {
		var runErr error
		switch data.Pipeline {
		case "fec":
			result, runErr = importer.NewFECImporter(sources.NewFECClient(), res, q).Run(ctx)
		case "congress":
			congressNumber := data.CongressNumber
			if congressNumber == 0 {
				congressNumber = int(util.GetEnvNumeric("CONGRESS_NUMBER", defaultCongressNumber))
			}
			session := data.Session
			if session == 0 {
				session = 1
			}
			result, runErr = importer.NewCongressImporter(sources.NewCongressClient(), res, q).Run(ctx, congressNumber, session)
		case "stock":
			result, runErr = importer.NewStockImporter(sources.NewStockClient(), res, q).Run(ctx)
		}
		return runErr
	})
	if errors.Is(err, leaselock.ErrBusy) {
		return fmt.Errorf("pipeline %s already running: %w", data.Pipeline, err)
	}
	if err != nil {
		return err
	}

	if finishErr := q.FinishPipelineRun(ctx, db.FinishPipelineRunParams{
		PublicID:      data.RunID,
		Status:        "completed",
		RowsProcessed: int32(result.Processed),
		RowsInserted:  int32(result.Inserted),
	}); finishErr != nil {
		logger.Error("[Queue] Failed to mark pipeline run as completed", "run_id", data.RunID, "err", finishErr)
	}

	archiveRun(ctx, s3Client, data, result)

	logger.Info("[Queue] Pipeline run finished",
		"pipeline", data.Pipeline,
		"run_id", data.RunID,
		"rows_processed", result.Processed,
		"rows_inserted", result.Inserted,
	)
	return nil
}

// archiveRun is best effort; a failed archive never fails the run.
func archiveRun(ctx context.Context, s3Client *awss3.Client, data *PipelineJobMsg, result importer.Result) {
	if s3Client == nil {
		return
	}

	jobPayload, err := json.Marshal(data)
	if err == nil {
		if _, err := storage.ArchiveRunPayload(ctx, s3Client, data.Pipeline, data.RunID, "job", jobPayload); err != nil {
			logger.Warn("[Queue] Failed to archive job payload", "run_id", data.RunID, "err", err)
		}
	}

	resultPayload, err := json.Marshal(result)
	if err == nil {
		if _, err := storage.ArchiveRunPayload(ctx, s3Client, data.Pipeline, data.RunID, "result", resultPayload); err != nil {
			logger.Warn("[Queue] Failed to archive result payload", "run_id", data.RunID, "err", err)
		}
	}
}
