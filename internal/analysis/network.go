package analysis

import (
	"fmt"
	"time"

	"github.com/capitolwatch/backend/internal/db"
	"github.com/capitolwatch/backend/pkg/logger"

	"github.com/shopspring/decimal"
)

// DefaultNetworkWindowDays bounds the money map to recent contributions
// when no window is supplied.
const DefaultNetworkWindowDays = 365

type NetworkNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// NetworkLink carries one contribution. Parallel links between the same
// pair are intentional; the renderer fans them out or sums them.
type NetworkLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

type Network struct {
	Nodes []NetworkNode `json:"nodes"`
	Links []NetworkLink `json:"links"`
}

// BuildNetwork derives the bipartite politician-to-organization graph
// from contributions dated within windowDays of now. The cutoff compares
// at day granularity so a contribution dated exactly windowDays ago is
// included.
func BuildNetwork(politician db.Politician, contributions []db.Contribution, now time.Time, windowDays int) Network {
	if windowDays <= 0 {
		windowDays = DefaultNetworkWindowDays
	}

	nowUTC := now.UTC()
	today := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 0, 0, 0, 0, time.UTC)
	cutoff := today.AddDate(0, 0, -windowDays)

	politicianNode := NetworkNode{
		ID:    fmt.Sprintf("politician:%d", politician.ID),
		Label: politician.FirstName + " " + politician.LastName,
		Type:  "politician",
	}

	nodes := []NetworkNode{politicianNode}
	seenOrgs := make(map[string]bool)
	links := make([]NetworkLink, 0)

	for _, c := range contributions {
		if c.ContributionDate.IsZero() {
			logger.Warn("[Network] Skipping contribution with missing date", "contribution_id", c.ID)
			continue
		}
		if c.ContributionDate.Before(cutoff) {
			continue
		}

		orgID := "org:" + c.Organization
		if !seenOrgs[orgID] {
			seenOrgs[orgID] = true
			nodes = append(nodes, NetworkNode{
				ID:    orgID,
				Label: c.Organization,
				Type:  "organization",
			})
		}

		amount, err := decimal.NewFromString(c.Amount)
		if err != nil {
			logger.Warn("[Network] Contribution amount unparseable, weighting as zero", "contribution_id", c.ID, "amount", c.Amount)
			amount = decimal.Zero
		}
		links = append(links, NetworkLink{
			Source: orgID,
			Target: politicianNode.ID,
			Value:  amount.InexactFloat64(),
		})
	}

	return Network{Nodes: nodes, Links: links}
}
