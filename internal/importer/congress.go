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

type CongressSource interface {
	FetchMembers(ctx context.Context, congressNumber int) ([]sources.CongressMember, error)
	FetchMemberVotes(ctx context.Context, congressNumber, session int, bioguideID string) ([]sources.MemberVote, error)
}

type VoteStore interface {
	CreateVote(ctx context.Context, arg db.CreateVoteParams) (db.Vote, error)
	VoteExists(ctx context.Context, arg db.VoteExistsParams) (bool, error)
}

// CongressImporter pulls members and their recorded votes for one
// congress session. Re-imports dedupe votes on the
// (politician, bill, date) natural key since the table itself carries
// no uniqueness constraint.
type CongressImporter struct {
	source   CongressSource
	resolver PoliticianResolver
	store    VoteStore
}

func NewCongressImporter(source CongressSource, res PoliticianResolver, store VoteStore) *CongressImporter {
	return &CongressImporter{
		source:   source,
		resolver: res,
		store:    store,
	}
}

func (i *CongressImporter) Run(ctx context.Context, congressNumber, session int) (Result, error) {
	members, err := i.source.FetchMembers(ctx, congressNumber)
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch members of congress %d: %w", congressNumber, err)
	}

	var result Result
	for _, member := range members {
		firstName, lastName := normalize.SplitName(member.Name)
		politicianID, err := i.resolver.Resolve(ctx, resolver.SourceBioguide, member.BioguideID, resolver.Candidate{
			FirstName: firstName,
			LastName:  lastName,
			State:     normalize.State(member.State),
			Party:     normalize.Party(member.Party),
		})
		if err != nil {
			logger.Error("[CongressImporter] Failed to resolve member", "bioguide_id", member.BioguideID, "err", err)
			continue
		}

		votes, err := i.source.FetchMemberVotes(ctx, congressNumber, session, member.BioguideID)
		if err != nil {
			logger.Error("[CongressImporter] Failed to fetch member votes", "bioguide_id", member.BioguideID, "err", err)
			continue
		}

		result.add(i.importVotes(ctx, politicianID, votes))
	}
	return result, nil
}

func (i *CongressImporter) importVotes(ctx context.Context, politicianID int64, votes []sources.MemberVote) Result {
	var result Result
	for _, raw := range votes {
		result.Processed++

		bill := util.SanitizePostgresText(raw.Bill)
		if bill == "" {
			logger.Warn("[CongressImporter] Skipping vote without a bill", "politician_id", politicianID)
			continue
		}
		date, ok := parseDate(raw.VoteDate)
		if !ok {
			logger.Warn("[CongressImporter] Skipping vote with unparseable date", "politician_id", politicianID, "bill", bill, "date", raw.VoteDate)
			continue
		}

		exists, err := i.store.VoteExists(ctx, db.VoteExistsParams{
			PoliticianID: politicianID,
			BillName:     bill,
			VoteDate:     date,
		})
		if err != nil {
			logger.Error("[CongressImporter] Failed to check for existing vote", "politician_id", politicianID, "bill", bill, "err", err)
			continue
		}
		if exists {
			continue
		}

		var description *string
		if cleaned := util.SanitizePostgresText(raw.BillDescription); cleaned != "" {
			description = &cleaned
		}
		_, err = i.store.CreateVote(ctx, db.CreateVoteParams{
			PoliticianID:    politicianID,
			BillName:        bill,
			BillDescription: description,
			VoteDate:        date,
			VoteResult:      raw.VoteResult,
		})
		if err != nil {
			logger.Error("[CongressImporter] Failed to insert vote", "politician_id", politicianID, "bill", bill, "err", err)
			continue
		}
		result.Inserted++
	}
	return result
}
