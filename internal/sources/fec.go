package sources

import (
	"context"
	"fmt"
	"net/url"

	"github.com/capitolwatch/backend/internal/util"
)

// FECCandidate is a raw candidate-master record from the campaign
// finance API. Names arrive in "Last, First" order.
type FECCandidate struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Party       string `json:"party"`
	State       string `json:"state"`
}

// FECContribution is a raw itemized contribution record keyed to a
// candidate by their FEC candidate ID. Amounts are decimal strings.
type FECContribution struct {
	CandidateID      string `json:"candidate_id"`
	ContributorName  string `json:"contributor_name"`
	ContributorOrg   string `json:"contributor_organization"`
	Amount           string `json:"amount"`
	ContributionDate string `json:"contribution_date"`
}

type FECClient struct {
	Client
}

func NewFECClient() *FECClient {
	return &FECClient{
		Client: newClient(
			util.GetEnvString("FEC_API_URL", "https://api.open.fec.gov/v1"),
			util.GetEnv("FEC_API_KEY"),
		),
	}
}

func (c *FECClient) FetchCandidates(ctx context.Context) ([]FECCandidate, error) {
	var payload struct {
		Results []FECCandidate `json:"results"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/candidates", &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (c *FECClient) FetchContributions(ctx context.Context, candidateID string) ([]FECContribution, error) {
	var payload struct {
		Results []FECContribution `json:"results"`
	}
	endpoint := fmt.Sprintf("%s/schedules/schedule_a?candidate_id=%s", c.baseURL, url.QueryEscape(candidateID))
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}
