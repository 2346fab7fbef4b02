package db

import (
	"context"
)

const politicianColumns = `id, first_name, last_name, state, party, photo_url, bioguide_id, fec_candidate_id, created_at, updated_at`

func scanPolitician(row interface{ Scan(dest ...any) error }) (Politician, error) {
	var p Politician
	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.State,
		&p.Party,
		&p.PhotoURL,
		&p.BioguideID,
		&p.FECCandidateID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

type CreatePoliticianParams struct {
	FirstName string
	LastName  string
	State     string
	Party     string
	PhotoURL  *string
}

func (q *Queries) CreatePolitician(ctx context.Context, arg CreatePoliticianParams) (Politician, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO politicians (first_name, last_name, state, party, photo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+politicianColumns,
		arg.FirstName, arg.LastName, arg.State, arg.Party, arg.PhotoURL,
	)
	return scanPolitician(row)
}

func (q *Queries) GetPolitician(ctx context.Context, id int64) (Politician, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+politicianColumns+`
		FROM politicians
		WHERE id = $1`,
		id,
	)
	return scanPolitician(row)
}

func (q *Queries) ListPoliticians(ctx context.Context) ([]Politician, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+politicianColumns+`
		FROM politicians
		ORDER BY last_name, first_name, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	politicians := make([]Politician, 0)
	for rows.Next() {
		p, err := scanPolitician(rows)
		if err != nil {
			return nil, err
		}
		politicians = append(politicians, p)
	}
	return politicians, rows.Err()
}

type UpdatePoliticianIdentityParams struct {
	ID        int64
	FirstName string
	LastName  string
	State     string
	Party     string
}

// UpdatePoliticianIdentity refreshes name/state/party from the latest
// sighting of the politician in any source.
func (q *Queries) UpdatePoliticianIdentity(ctx context.Context, arg UpdatePoliticianIdentityParams) error {
	_, err := q.db.Exec(ctx, `
		UPDATE politicians
		SET first_name = $2, last_name = $3, state = $4, party = $5, updated_at = now()
		WHERE id = $1`,
		arg.ID, arg.FirstName, arg.LastName, arg.State, arg.Party,
	)
	return err
}

type SetPoliticianPhotoParams struct {
	ID         int64
	PhotoURL   string
	BioguideID string
}

func (q *Queries) SetPoliticianPhoto(ctx context.Context, arg SetPoliticianPhotoParams) error {
	_, err := q.db.Exec(ctx, `
		UPDATE politicians
		SET photo_url = $2, bioguide_id = $3, updated_at = now()
		WHERE id = $1`,
		arg.ID, arg.PhotoURL, arg.BioguideID,
	)
	return err
}

type SetPoliticianFECCandidateIDParams struct {
	ID             int64
	FECCandidateID string
}

func (q *Queries) SetPoliticianFECCandidateID(ctx context.Context, arg SetPoliticianFECCandidateIDParams) error {
	_, err := q.db.Exec(ctx, `
		UPDATE politicians
		SET fec_candidate_id = $2, updated_at = now()
		WHERE id = $1`,
		arg.ID, arg.FECCandidateID,
	)
	return err
}
