package importer

import (
	"context"
	"fmt"

	"github.com/capitolwatch/backend/internal/db"
	"github.com/capitolwatch/backend/internal/normalize"
	"github.com/capitolwatch/backend/internal/resolver"
	"github.com/capitolwatch/backend/internal/sources"
	"github.com/capitolwatch/backend/internal/util"
	"github.com/capitolwatch/backend/pkg/logger"
)

type FECSource interface {
	FetchCandidates(ctx context.Context) ([]sources.FECCandidate, error)
	FetchContributions(ctx context.Context, candidateID string) ([]sources.FECContribution, error)
}

type ContributionStore interface {
	CreateContribution(ctx context.Context, arg db.CreateContributionParams) (db.Contribution, error)
}

// FECImporter pulls candidates and their itemized contributions from
// the campaign finance API. One bad record never aborts the batch; it
// is logged and skipped.
type FECImporter struct {
	source   FECSource
	resolver PoliticianResolver
	store    ContributionStore
}

func NewFECImporter(source FECSource, res PoliticianResolver, store ContributionStore) *FECImporter {
	return &FECImporter{
		source:   source,
		resolver: res,
		store:    store,
	}
}

func (i *FECImporter) Run(ctx context.Context) (Result, error) {
	candidates, err := i.source.FetchCandidates(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch candidates: %w", err)
	}

	var result Result
	for _, candidate := range candidates {
		firstName, lastName := normalize.SplitName(candidate.Name)
		politicianID, err := i.resolver.Resolve(ctx, resolver.SourceFEC, candidate.CandidateID, resolver.Candidate{
			FirstName: firstName,
			LastName:  lastName,
			State:     normalize.State(candidate.State),
			Party:     normalize.Party(candidate.Party),
		})
		if err != nil {
			logger.Error("[FECImporter] Failed to resolve candidate", "candidate_id", candidate.CandidateID, "err", err)
			continue
		}

		contributions, err := i.source.FetchContributions(ctx, candidate.CandidateID)
		if err != nil {
			logger.Error("[FECImporter] Failed to fetch contributions", "candidate_id", candidate.CandidateID, "err", err)
			continue
		}

		result.add(i.importContributions(ctx, politicianID, contributions))
	}
	return result, nil
}

func (i *FECImporter) importContributions(ctx context.Context, politicianID int64, contributions []sources.FECContribution) Result {
	var result Result
	for _, raw := range contributions {
		result.Processed++

		date, ok := parseDate(raw.ContributionDate)
		if !ok {
			logger.Warn("[FECImporter] Skipping contribution with unparseable date", "politician_id", politicianID, "date", raw.ContributionDate)
			continue
		}

		organization := util.SanitizePostgresText(raw.ContributorOrg)
		if organization == "" {
			organization = util.SanitizePostgresText(raw.ContributorName)
		}

		_, err := i.store.CreateContribution(ctx, db.CreateContributionParams{
			PoliticianID:     politicianID,
			Organization:     organization,
			Amount:           normalize.Amount(raw.Amount).String(),
			ContributionDate: date,
		})
		if err != nil {
			logger.Error("[FECImporter] Failed to insert contribution", "politician_id", politicianID, "err", err)
			continue
		}
		result.Inserted++
	}
	return result
}
