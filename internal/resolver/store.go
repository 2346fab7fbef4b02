package resolver

import (
	"context"
	"errors"
)

// ErrAliasNotFound means no alias row maps the (source, external_id) pair.
var ErrAliasNotFound = errors.New("alias not found")

// ErrDuplicateAlias means a concurrent writer created the alias between
// our lookup and our insert. The resolver recovers by re-reading.
var ErrDuplicateAlias = errors.New("alias already exists")

// Candidate carries the attributes needed to create or refresh a
// politician when an external record is sighted.
type Candidate struct {
	FirstName string
	LastName  string
	State     string
	Party     string
}

// Store is the storage surface the resolver depends on. The production
// implementation is Postgres-backed; tests swap in a memory fake.
type Store interface {
	// GetAliasPoliticianID returns the canonical politician mapped to
	// (source, externalID), or ErrAliasNotFound.
	GetAliasPoliticianID(ctx context.Context, source, externalID string) (int64, error)

	// CreatePoliticianWithAlias atomically creates a politician from the
	// candidate attributes together with its alias row. Returns
	// ErrDuplicateAlias when the (source, externalID) uniqueness
	// constraint fires.
	CreatePoliticianWithAlias(ctx context.Context, cand Candidate, source, externalID string) (int64, error)

	// UpdatePoliticianIdentity refreshes name/state/party on a
	// subsequent sighting.
	UpdatePoliticianIdentity(ctx context.Context, politicianID int64, cand Candidate) error

	// SetBioguide stores the bioguide denormalization and photo URL pair.
	SetBioguide(ctx context.Context, politicianID int64, bioguideID, photoURL string) error

	// SetFECCandidateID stores the FEC candidate denormalization.
	SetFECCandidateID(ctx context.Context, politicianID int64, fecCandidateID string) error
}
