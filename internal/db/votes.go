package db

import (
	"context"
	"time"
)

const voteColumns = `id, politician_id, bill_name, bill_description, vote_date, vote_result`

type CreateVoteParams struct {
	PoliticianID    int64
	BillName        string
	BillDescription *string
	VoteDate        time.Time
	VoteResult      string
}

func (q *Queries) CreateVote(ctx context.Context, arg CreateVoteParams) (Vote, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO votes (politician_id, bill_name, bill_description, vote_date, vote_result)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+voteColumns,
		arg.PoliticianID, arg.BillName, arg.BillDescription, arg.VoteDate, arg.VoteResult,
	)
	var v Vote
	err := row.Scan(&v.ID, &v.PoliticianID, &v.BillName, &v.BillDescription, &v.VoteDate, &v.VoteResult)
	return v, err
}

type VoteExistsParams struct {
	PoliticianID int64
	BillName     string
	VoteDate     time.Time
}

// VoteExists checks the natural key (politician, bill, date). This is the
// only duplicate guard on re-import; there is no uniqueness constraint on
// the table itself.
func (q *Queries) VoteExists(ctx context.Context, arg VoteExistsParams) (bool, error) {
	var count int64
	err := q.db.QueryRow(ctx, `
		SELECT count(*)
		FROM votes
		WHERE politician_id = $1 AND bill_name = $2 AND vote_date = $3`,
		arg.PoliticianID, arg.BillName, arg.VoteDate,
	).Scan(&count)
	return count > 0, err
}

func (q *Queries) ListVotesForPolitician(ctx context.Context, politicianID int64) ([]Vote, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+voteColumns+`
		FROM votes
		WHERE politician_id = $1
		ORDER BY vote_date DESC, id`,
		politicianID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	votes := make([]Vote, 0)
	for rows.Next() {
		var v Vote
		if err := rows.Scan(&v.ID, &v.PoliticianID, &v.BillName, &v.BillDescription, &v.VoteDate, &v.VoteResult); err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}
