package db

import (
	"context"
	"time"
)

const contributionColumns = `id, politician_id, organization, amount::text, contribution_date, industry`

type CreateContributionParams struct {
	PoliticianID     int64
	Organization     string
	Amount           string
	ContributionDate time.Time
	Industry         *string
}

func (q *Queries) CreateContribution(ctx context.Context, arg CreateContributionParams) (Contribution, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO contributions (politician_id, organization, amount, contribution_date, industry)
		VALUES ($1, $2, $3::numeric, $4, $5)
		RETURNING `+contributionColumns,
		arg.PoliticianID, arg.Organization, arg.Amount, arg.ContributionDate, arg.Industry,
	)
	var c Contribution
	err := row.Scan(&c.ID, &c.PoliticianID, &c.Organization, &c.Amount, &c.ContributionDate, &c.Industry)
	return c, err
}

func (q *Queries) ListContributionsForPolitician(ctx context.Context, politicianID int64) ([]Contribution, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+contributionColumns+`
		FROM contributions
		WHERE politician_id = $1
		ORDER BY contribution_date DESC, id`,
		politicianID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContributions(rows)
}

type ListContributionsSinceParams struct {
	PoliticianID int64
	Cutoff       time.Time
}

// ListContributionsSince returns contributions on or after the cutoff
// date. The boundary is inclusive.
func (q *Queries) ListContributionsSince(ctx context.Context, arg ListContributionsSinceParams) ([]Contribution, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+contributionColumns+`
		FROM contributions
		WHERE politician_id = $1 AND contribution_date >= $2
		ORDER BY contribution_date DESC, id`,
		arg.PoliticianID, arg.Cutoff,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContributions(rows)
}

func collectContributions(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]Contribution, error) {
	contributions := make([]Contribution, 0)
	for rows.Next() {
		var c Contribution
		if err := rows.Scan(&c.ID, &c.PoliticianID, &c.Organization, &c.Amount, &c.ContributionDate, &c.Industry); err != nil {
			return nil, err
		}
		contributions = append(contributions, c)
	}
	return contributions, rows.Err()
}
