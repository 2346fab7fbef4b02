package analysis

import (
	"testing"
	"time"

	"github.com/capitolwatch/backend/internal/db"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func trade(id int64, stock, bill string, date time.Time) db.StockTransaction {
	t := db.StockTransaction{
		ID:        id,
		StockName: stock,
		TradeDate: date,
		TradeType: "BUY",
		Amount:    "50000",
	}
	if bill != "" {
		t.RelatedBill = strPtr(bill)
	}
	return t
}

func vote(id int64, bill string, date time.Time) db.Vote {
	return db.Vote{
		ID:         id,
		BillName:   bill,
		VoteDate:   date,
		VoteResult: "YES",
	}
}

func TestDetectConflictsWindowBoundary(t *testing.T) {
	t.Parallel()

	tradeDate := day(2023, time.March, 1)

	tests := []struct {
		name      string
		voteDate  time.Time
		wantCount int
		wantDelta int
	}{
		{name: "same_day_is_zero_days", voteDate: tradeDate, wantCount: 1, wantDelta: 0},
		{name: "one_day_later", voteDate: tradeDate.AddDate(0, 0, 1), wantCount: 1, wantDelta: 1},
		{name: "exactly_window_days_included", voteDate: tradeDate.AddDate(0, 0, 30), wantCount: 1, wantDelta: 30},
		{name: "window_plus_one_excluded", voteDate: tradeDate.AddDate(0, 0, 31), wantCount: 0},
		{name: "vote_before_trade_counts_absolute", voteDate: tradeDate.AddDate(0, 0, -30), wantCount: 1, wantDelta: 30},
		{name: "sub_day_difference_rounds_up", voteDate: tradeDate.Add(6 * time.Hour), wantCount: 1, wantDelta: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			conflicts := DetectConflicts(
				[]db.StockTransaction{trade(1, "ACME", "H.R. 1234", tradeDate)},
				[]db.Vote{vote(10, "H.R. 1234", tc.voteDate)},
				30,
			)
			if len(conflicts) != tc.wantCount {
				t.Fatalf("got %d conflicts, want %d", len(conflicts), tc.wantCount)
			}
			if tc.wantCount == 1 && conflicts[0].DeltaDays != tc.wantDelta {
				t.Fatalf("got delta_days %d, want %d", conflicts[0].DeltaDays, tc.wantDelta)
			}
		})
	}
}

func TestDetectConflictsCrossProduct(t *testing.T) {
	t.Parallel()

	base := day(2023, time.June, 15)
	transactions := []db.StockTransaction{
		trade(1, "ACME", "H.R. 99", base),
		trade(2, "ACME", "H.R. 99", base.AddDate(0, 0, 5)),
	}
	votes := []db.Vote{
		vote(10, "H.R. 99", base.AddDate(0, 0, 1)),
		vote(11, "H.R. 99", base.AddDate(0, 0, 2)),
		vote(12, "H.R. 99", base.AddDate(0, 0, 10)),
	}

	conflicts := DetectConflicts(transactions, votes, 30)
	if len(conflicts) != 6 {
		t.Fatalf("got %d conflicts, want the full 2x3 cross-product of 6", len(conflicts))
	}

	pairs := make(map[[2]int64]bool)
	for _, c := range conflicts {
		pairs[[2]int64{c.TradeID, c.BillID}] = true
	}
	if len(pairs) != 6 {
		t.Fatalf("got %d distinct (trade, vote) pairs, want 6", len(pairs))
	}
}

func TestDetectConflictsMatching(t *testing.T) {
	t.Parallel()

	base := day(2023, time.June, 15)

	t.Run("no_related_bill_never_matches", func(t *testing.T) {
		t.Parallel()
		conflicts := DetectConflicts(
			[]db.StockTransaction{trade(1, "ACME", "", base)},
			[]db.Vote{vote(10, "H.R. 99", base)},
			30,
		)
		if len(conflicts) != 0 {
			t.Fatalf("got %d conflicts, want 0", len(conflicts))
		}
	})

	t.Run("bill_match_is_exact_string", func(t *testing.T) {
		t.Parallel()
		conflicts := DetectConflicts(
			[]db.StockTransaction{trade(1, "ACME", "H.R. 1234", base)},
			[]db.Vote{vote(10, "Tech Regulation Act (H.R. 1234)", base)},
			30,
		)
		if len(conflicts) != 0 {
			t.Fatalf("got %d conflicts, want 0: differently formatted bill strings must not match", len(conflicts))
		}
	})

	t.Run("zero_window_falls_back_to_default", func(t *testing.T) {
		t.Parallel()
		conflicts := DetectConflicts(
			[]db.StockTransaction{trade(1, "ACME", "H.R. 99", base)},
			[]db.Vote{vote(10, "H.R. 99", base.AddDate(0, 0, DefaultConflictWindowDays))},
			0,
		)
		if len(conflicts) != 1 {
			t.Fatalf("got %d conflicts, want 1 within the default window", len(conflicts))
		}
	})

	t.Run("conflict_carries_both_records_fields", func(t *testing.T) {
		t.Parallel()
		v := vote(10, "H.R. 99", base.AddDate(0, 0, 3))
		v.BillDescription = strPtr("An act")
		v.VoteResult = "NO"
		conflicts := DetectConflicts(
			[]db.StockTransaction{trade(1, "ACME", "H.R. 99", base)},
			[]db.Vote{v},
			30,
		)
		if len(conflicts) != 1 {
			t.Fatalf("got %d conflicts, want 1", len(conflicts))
		}
		c := conflicts[0]
		if c.TradeID != 1 || c.BillID != 10 || c.Symbol != "ACME" ||
			c.TradeType != "BUY" || c.VoteResult != "NO" ||
			c.BillName != "H.R. 99" || c.Amount != "50000" ||
			c.TradeDate != "2023-06-15" || c.VoteDate != "2023-06-18" {
			t.Fatalf("conflict fields wrong: %+v", c)
		}
		if c.BillDescription == nil || *c.BillDescription != "An act" {
			t.Fatalf("bill_description wrong: %v", c.BillDescription)
		}
	})
}
