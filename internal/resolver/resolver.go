// Package resolver maps external identifiers onto canonical politician
// entities. Aliases only unify records that share a (source, external_id)
// pair; there is no cross-source merge, so "fec:P123" and
// "bioguide:A000360" stay two politicians unless matching alias rows are
// inserted manually. A smarter matcher can be plugged in through the
// Matcher interface without touching the import pipeline.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/capitolwatch/backend/pkg/logger"
)

// Source tags for the systems that feed the importer.
const (
	SourceFEC      = "fec"
	SourceBioguide = "bioguide"
	SourceHouseFD  = "house_fd"
	SourceSenateFD = "senate_fd"
)

// Matcher decides whether an external record refers to an already-known
// politician. The default implementation matches on the exact
// (source, external_id) alias; fuzzier strategies slot in here.
type Matcher interface {
	Match(ctx context.Context, source, externalID string, cand Candidate) (politicianID int64, ok bool, err error)
}

// AliasMatcher is the default Matcher: exact alias lookup, nothing else.
type AliasMatcher struct {
	store Store
}

func NewAliasMatcher(store Store) *AliasMatcher {
	return &AliasMatcher{store: store}
}

func (m *AliasMatcher) Match(ctx context.Context, source, externalID string, _ Candidate) (int64, bool, error) {
	politicianID, err := m.store.GetAliasPoliticianID(ctx, source, externalID)
	if errors.Is(err, ErrAliasNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return politicianID, true, nil
}

type Resolver struct {
	store   Store
	matcher Matcher
}

// New builds a resolver with the given matcher. A nil matcher falls back
// to the alias-only default.
func New(store Store, matcher Matcher) *Resolver {
	if matcher == nil {
		matcher = NewAliasMatcher(store)
	}
	return &Resolver{store: store, matcher: matcher}
}

// Resolve returns the canonical politician ID for an external identifier,
// creating the politician and alias when the pair has never been seen.
// Idempotent: repeated calls with the same (source, externalID) return
// the same ID and never create duplicates, including under concurrent
// first sightings. The storage uniqueness constraint on
// (source, external_id) turns the race loser's insert into a re-read.
func (r *Resolver) Resolve(ctx context.Context, source, externalID string, cand Candidate) (int64, error) {
	if source == "" || externalID == "" {
		return 0, fmt.Errorf("resolve requires a source and external id, got (%q, %q)", source, externalID)
	}

	politicianID, ok, err := r.matcher.Match(ctx, source, externalID, cand)
	if err != nil {
		return 0, fmt.Errorf("alias match failed for %s:%s: %w", source, externalID, err)
	}
	if ok {
		if err := r.store.UpdatePoliticianIdentity(ctx, politicianID, cand); err != nil {
			logger.Warn("[Resolver] Failed to refresh politician from sighting", "politician_id", politicianID, "source", source, "err", err)
		}
		r.applyDenormalizations(ctx, politicianID, source, externalID)
		return politicianID, nil
	}

	politicianID, err = r.store.CreatePoliticianWithAlias(ctx, cand, source, externalID)
	if errors.Is(err, ErrDuplicateAlias) {
		// Lost the insert race; the winner's row is authoritative.
		politicianID, err = r.store.GetAliasPoliticianID(ctx, source, externalID)
		if err != nil {
			return 0, fmt.Errorf("alias reconcile failed for %s:%s: %w", source, externalID, err)
		}
		return politicianID, nil
	}
	if err != nil {
		return 0, fmt.Errorf("politician create failed for %s:%s: %w", source, externalID, err)
	}

	r.applyDenormalizations(ctx, politicianID, source, externalID)
	return politicianID, nil
}

// applyDenormalizations copies convenience identifiers onto the
// politician row, on creation and on every later sighting so a cleared
// or stale photo URL heals itself. Best effort: the alias table stays
// the source of truth.
func (r *Resolver) applyDenormalizations(ctx context.Context, politicianID int64, source, externalID string) {
	switch source {
	case SourceBioguide:
		if err := r.store.SetBioguide(ctx, politicianID, externalID, BuildPhotoURL(externalID)); err != nil {
			logger.Warn("[Resolver] Failed to set bioguide denormalization", "politician_id", politicianID, "err", err)
		}
	case SourceFEC:
		if err := r.store.SetFECCandidateID(ctx, politicianID, externalID); err != nil {
			logger.Warn("[Resolver] Failed to set fec candidate denormalization", "politician_id", politicianID, "err", err)
		}
	}
}
