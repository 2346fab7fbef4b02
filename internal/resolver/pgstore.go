package resolver

import (
	"context"
	"errors"

	"github.com/capitolwatch/backend/internal/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// PGStore backs the resolver with Postgres. The alias uniqueness
// constraint lives in the schema, so the create-if-absent race is safe
// across processes, not just goroutines.
type PGStore struct {
	conn *pgxpool.Pool
}

func NewPGStore(conn *pgxpool.Pool) *PGStore {
	return &PGStore{conn: conn}
}

func (s *PGStore) GetAliasPoliticianID(ctx context.Context, source, externalID string) (int64, error) {
	q := db.New(s.conn)
	politicianID, err := q.GetAliasPoliticianID(ctx, db.GetAliasPoliticianIDParams{
		Source:     source,
		ExternalID: externalID,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrAliasNotFound
	}
	if err != nil {
		return 0, err
	}
	return politicianID, nil
}

func (s *PGStore) CreatePoliticianWithAlias(ctx context.Context, cand Candidate, source, externalID string) (int64, error) {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)
	qtx := db.New(s.conn).WithTx(tx)

	politician, err := qtx.CreatePolitician(ctx, db.CreatePoliticianParams{
		FirstName: cand.FirstName,
		LastName:  cand.LastName,
		State:     cand.State,
		Party:     cand.Party,
	})
	if err != nil {
		return 0, err
	}

	err = qtx.CreateAlias(ctx, db.CreateAliasParams{
		PoliticianID: politician.ID,
		Source:       source,
		ExternalID:   externalID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrDuplicateAlias
		}
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return politician.ID, nil
}

func (s *PGStore) UpdatePoliticianIdentity(ctx context.Context, politicianID int64, cand Candidate) error {
	q := db.New(s.conn)
	return q.UpdatePoliticianIdentity(ctx, db.UpdatePoliticianIdentityParams{
		ID:        politicianID,
		FirstName: cand.FirstName,
		LastName:  cand.LastName,
		State:     cand.State,
		Party:     cand.Party,
	})
}

func (s *PGStore) SetBioguide(ctx context.Context, politicianID int64, bioguideID, photoURL string) error {
	q := db.New(s.conn)
	return q.SetPoliticianPhoto(ctx, db.SetPoliticianPhotoParams{
		ID:         politicianID,
		PhotoURL:   photoURL,
		BioguideID: bioguideID,
	})
}

func (s *PGStore) SetFECCandidateID(ctx context.Context, politicianID int64, fecCandidateID string) error {
	q := db.New(s.conn)
	return q.SetPoliticianFECCandidateID(ctx, db.SetPoliticianFECCandidateIDParams{
		ID:             politicianID,
		FECCandidateID: fecCandidateID,
	})
}
