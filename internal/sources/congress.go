package sources

import (
	"context"
	"fmt"

	"github.com/capitolwatch/backend/internal/util"
)

// CongressMember is a raw member record from the legislative API.
type CongressMember struct {
	BioguideID string `json:"bioguide_id"`
	Name       string `json:"name"`
	Party      string `json:"party"`
	State      string `json:"state"`
}

// MemberVote is a raw recorded vote for a single member on a single
// bill. VoteResult is free text (Yea/Nay/Present/Not Voting).
type MemberVote struct {
	BioguideID      string `json:"bioguide_id"`
	Bill            string `json:"bill"`
	BillDescription string `json:"bill_description"`
	VoteDate        string `json:"vote_date"`
	VoteResult      string `json:"vote_result"`
}

type CongressClient struct {
	Client
}

func NewCongressClient() *CongressClient {
	return &CongressClient{
		Client: newClient(
			util.GetEnvString("CONGRESS_API_URL", "https://api.congress.gov/v3"),
			util.GetEnv("CONGRESS_API_KEY"),
		),
	}
}

func (c *CongressClient) FetchMembers(ctx context.Context, congressNumber int) ([]CongressMember, error) {
	var payload struct {
		Members []CongressMember `json:"members"`
	}
	endpoint := fmt.Sprintf("%s/member/congress/%d", c.baseURL, congressNumber)
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Members, nil
}

func (c *CongressClient) FetchMemberVotes(ctx context.Context, congressNumber, session int, bioguideID string) ([]MemberVote, error) {
	var payload struct {
		Votes []MemberVote `json:"votes"`
	}
	endpoint := fmt.Sprintf("%s/member/%s/votes?congress=%d&session=%d", c.baseURL, bioguideID, congressNumber, session)
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Votes, nil
}
