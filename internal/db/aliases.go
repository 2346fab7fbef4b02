package db

import (
	"context"
)

type GetAliasPoliticianIDParams struct {
	Source     string
	ExternalID string
}

// GetAliasPoliticianID returns the canonical politician for a
// (source, external_id) pair, or pgx.ErrNoRows when unmapped.
func (q *Queries) GetAliasPoliticianID(ctx context.Context, arg GetAliasPoliticianIDParams) (int64, error) {
	var politicianID int64
	err := q.db.QueryRow(ctx, `
		SELECT politician_id
		FROM politician_aliases
		WHERE source = $1 AND external_id = $2`,
		arg.Source, arg.ExternalID,
	).Scan(&politicianID)
	return politicianID, err
}

type CreateAliasParams struct {
	PoliticianID int64
	Source       string
	ExternalID   string
}

// CreateAlias inserts a new alias row. The unique index on
// (source, external_id) makes concurrent duplicate creation fail with a
// 23505, which callers handle with a re-read.
func (q *Queries) CreateAlias(ctx context.Context, arg CreateAliasParams) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO politician_aliases (politician_id, source, external_id)
		VALUES ($1, $2, $3)`,
		arg.PoliticianID, arg.Source, arg.ExternalID,
	)
	return err
}

func (q *Queries) ListAliasesForPolitician(ctx context.Context, politicianID int64) ([]PoliticianAlias, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, politician_id, source, external_id, created_at
		FROM politician_aliases
		WHERE politician_id = $1
		ORDER BY source, external_id`,
		politicianID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aliases := make([]PoliticianAlias, 0)
	for rows.Next() {
		var a PoliticianAlias
		if err := rows.Scan(&a.ID, &a.PoliticianID, &a.Source, &a.ExternalID, &a.CreatedAt); err != nil {
			return nil, err
		}
		aliases = append(aliases, a)
	}
	return aliases, rows.Err()
}
