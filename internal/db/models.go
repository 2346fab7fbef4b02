package db

import "time"

// Politician is the canonical entity: one row per real-world officeholder.
// BioguideID and FECCandidateID are convenience denormalizations of the
// alias table, not the source of truth for identity.
type Politician struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	State          string    `json:"state"`
	Party          string    `json:"party"`
	PhotoURL       *string   `json:"profileImage"`
	BioguideID     *string   `json:"bioguideId,omitempty"`
	FECCandidateID *string   `json:"fecCandidateId,omitempty"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

// PoliticianAlias maps one external system's identifier to a canonical
// politician. (source, external_id) is unique.
type PoliticianAlias struct {
	ID           int64     `json:"id"`
	PoliticianID int64     `json:"politicianId"`
	Source       string    `json:"source"`
	ExternalID   string    `json:"externalId"`
	CreatedAt    time.Time `json:"-"`
}

type Vote struct {
	ID              int64     `json:"id"`
	PoliticianID    int64     `json:"politicianId"`
	BillName        string    `json:"billName"`
	BillDescription *string   `json:"billDescription"`
	VoteDate        time.Time `json:"voteDate"`
	VoteResult      string    `json:"voteResult"`
}

// Contribution amounts are carried as strings end to end so large sums
// never pass through a float.
type Contribution struct {
	ID               int64     `json:"id"`
	PoliticianID     int64     `json:"politicianId"`
	Organization     string    `json:"organization"`
	Amount           string    `json:"amount"`
	ContributionDate time.Time `json:"contributionDate"`
	Industry         *string   `json:"industry"`
}

type StockTransaction struct {
	ID                int64     `json:"id"`
	PoliticianID      int64     `json:"politicianId"`
	StockName         string    `json:"stockName"`
	TradeDate         time.Time `json:"tradeDate"`
	TradeType         string    `json:"tradeType"`
	Amount            string    `json:"amount"`
	RelatedBill       *string   `json:"relatedBill"`
	PotentialConflict bool      `json:"potentialConflict"`
}

// PipelineRun is the durable job-status record polled by the UI. There is
// no in-memory cache in front of it.
type PipelineRun struct {
	ID            int64      `json:"id"`
	PublicID      string     `json:"pipelineId"`
	PipelineName  string     `json:"pipeline"`
	Status        string     `json:"status"`
	StartedAt     time.Time  `json:"startedAt"`
	EndedAt       *time.Time `json:"endedAt"`
	RowsProcessed int32      `json:"rowsProcessed"`
	RowsInserted  int32      `json:"rowsInserted"`
	Notes         *string    `json:"notes"`
}
