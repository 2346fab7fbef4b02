package db

import (
	"context"
)

const pipelineRunColumns = `id, public_id, pipeline_name, status, started_at, ended_at, rows_processed, rows_inserted, notes`

func scanPipelineRun(row interface{ Scan(dest ...any) error }) (PipelineRun, error) {
	var r PipelineRun
	err := row.Scan(
		&r.ID,
		&r.PublicID,
		&r.PipelineName,
		&r.Status,
		&r.StartedAt,
		&r.EndedAt,
		&r.RowsProcessed,
		&r.RowsInserted,
		&r.Notes,
	)
	return r, err
}

type CreatePipelineRunParams struct {
	PublicID     string
	PipelineName string
}

// CreatePipelineRun records a new run in the running state. Status lives
// only in this table; restarts lose nothing.
func (q *Queries) CreatePipelineRun(ctx context.Context, arg CreatePipelineRunParams) (PipelineRun, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO pipeline_runs (public_id, pipeline_name, status)
		VALUES ($1, $2, 'running')
		RETURNING `+pipelineRunColumns,
		arg.PublicID, arg.PipelineName,
	)
	return scanPipelineRun(row)
}

func (q *Queries) GetPipelineRunByPublicID(ctx context.Context, publicID string) (PipelineRun, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+pipelineRunColumns+`
		FROM pipeline_runs
		WHERE public_id = $1`,
		publicID,
	)
	return scanPipelineRun(row)
}

type FinishPipelineRunParams struct {
	PublicID      string
	Status        string
	RowsProcessed int32
	RowsInserted  int32
	Notes         *string
}

func (q *Queries) FinishPipelineRun(ctx context.Context, arg FinishPipelineRunParams) error {
	_, err := q.db.Exec(ctx, `
		UPDATE pipeline_runs
		SET status = $2, ended_at = now(), rows_processed = $3, rows_inserted = $4, notes = $5
		WHERE public_id = $1`,
		arg.PublicID, arg.Status, arg.RowsProcessed, arg.RowsInserted, arg.Notes,
	)
	return err
}

func (q *Queries) ListPipelineRuns(ctx context.Context, limit int32) ([]PipelineRun, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+pipelineRunColumns+`
		FROM pipeline_runs
		ORDER BY started_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]PipelineRun, 0)
	for rows.Next() {
		r, err := scanPipelineRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
