// Package analysis holds the read-side computations over a single
// politician's records: conflict detection, the merged timeline and the
// contribution network. Everything here is synchronous and I/O-free;
// callers fetch the rows first.
package analysis

import (
	"math"
	"time"

	"github.com/capitolwatch/backend/internal/db"
	"github.com/capitolwatch/backend/pkg/logger"
)

// DefaultConflictWindowDays is the trade-to-vote proximity threshold used
// when the caller does not supply one.
const DefaultConflictWindowDays = 30

const dateFormat = "2006-01-02"

// Conflict is one (trade, vote) pair on the same bill inside the window.
type Conflict struct {
	TradeID         int64   `json:"trade_id"`
	BillID          int64   `json:"bill_id"`
	DeltaDays       int     `json:"delta_days"`
	Amount          string  `json:"amount"`
	Symbol          string  `json:"symbol"`
	VoteDate        string  `json:"vote_date"`
	TradeDate       string  `json:"trade_date"`
	TradeType       string  `json:"trade_type"`
	VoteResult      string  `json:"vote_result"`
	BillName        string  `json:"bill_name"`
	BillDescription *string `json:"bill_description"`
}

// DetectConflicts pairs every transaction that names a related bill with
// every vote on that exact bill string, and keeps pairs whose dates fall
// within windowDays of each other (inclusive). The full cross-product is
// emitted: one trade near three votes yields three conflicts. The UI
// collapses duplicates, not this function.
//
// Bill matching is exact-string. Any formatting drift between the vote
// and transaction tables ("H.R. 1234" vs "Tech Regulation Act (H.R.
// 1234)") silently produces zero matches; that risk is documented rather
// than papered over with fuzzy matching.
func DetectConflicts(transactions []db.StockTransaction, votes []db.Vote, windowDays int) []Conflict {
	if windowDays <= 0 {
		windowDays = DefaultConflictWindowDays
	}

	votesByBill := make(map[string][]db.Vote, len(votes))
	for _, v := range votes {
		if v.VoteDate.IsZero() {
			logger.Warn("[Conflicts] Skipping vote with missing date", "vote_id", v.ID, "bill", v.BillName)
			continue
		}
		votesByBill[v.BillName] = append(votesByBill[v.BillName], v)
	}

	conflicts := make([]Conflict, 0)
	for _, t := range transactions {
		if t.RelatedBill == nil || *t.RelatedBill == "" {
			continue
		}
		if t.TradeDate.IsZero() {
			logger.Warn("[Conflicts] Skipping transaction with missing date", "trade_id", t.ID, "stock", t.StockName)
			continue
		}

		for _, v := range votesByBill[*t.RelatedBill] {
			delta := deltaDays(t.TradeDate, v.VoteDate)
			if delta > windowDays {
				continue
			}
			conflicts = append(conflicts, Conflict{
				TradeID:         t.ID,
				BillID:          v.ID,
				DeltaDays:       delta,
				Amount:          t.Amount,
				Symbol:          t.StockName,
				VoteDate:        v.VoteDate.Format(dateFormat),
				TradeDate:       t.TradeDate.Format(dateFormat),
				TradeType:       t.TradeType,
				VoteResult:      v.VoteResult,
				BillName:        v.BillName,
				BillDescription: v.BillDescription,
			})
		}
	}
	return conflicts
}

// deltaDays is the ceiling of the absolute difference in whole days:
// same-instant events are 0 days apart, any sub-day difference counts as
// a full day.
func deltaDays(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	const dayMs = 24 * 60 * 60 * 1000
	return int(math.Ceil(float64(diff.Milliseconds()) / float64(dayMs)))
}
