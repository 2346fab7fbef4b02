package analysis

import (
	"testing"
	"time"

	"github.com/capitolwatch/backend/internal/db"
)

func TestBuildTimelineMergeOrder(t *testing.T) {
	t.Parallel()

	votes := []db.Vote{{ID: 1, BillName: "H.R. 1", VoteDate: day(2023, time.January, 1), VoteResult: "YES"}}
	contributions := []db.Contribution{{ID: 2, Organization: "Acme PAC", Amount: "500", ContributionDate: day(2023, time.June, 1)}}
	transactions := []db.StockTransaction{{ID: 3, StockName: "ACME", Amount: "1000", TradeType: "BUY", TradeDate: day(2023, time.March, 1)}}

	t.Run("descending_default", func(t *testing.T) {
		t.Parallel()
		items, _ := BuildTimeline(votes, contributions, transactions, 1, 10, false)
		wantTypes := []string{EventContribution, EventStockTransaction, EventVote}
		if len(items) != 3 {
			t.Fatalf("got %d items, want 3", len(items))
		}
		for i, want := range wantTypes {
			if items[i].Type != want {
				t.Fatalf("item %d type = %q, want %q", i, items[i].Type, want)
			}
		}
	})

	t.Run("ascending_flag", func(t *testing.T) {
		t.Parallel()
		items, _ := BuildTimeline(votes, contributions, transactions, 1, 10, true)
		wantTypes := []string{EventVote, EventStockTransaction, EventContribution}
		for i, want := range wantTypes {
			if items[i].Type != want {
				t.Fatalf("item %d type = %q, want %q", i, items[i].Type, want)
			}
		}
	})

	t.Run("votes_have_nil_amount", func(t *testing.T) {
		t.Parallel()
		items, _ := BuildTimeline(votes, nil, nil, 1, 10, false)
		if len(items) != 1 {
			t.Fatalf("got %d items, want 1", len(items))
		}
		if items[0].Amount != nil {
			t.Fatalf("vote amount = %v, want nil", *items[0].Amount)
		}
	})
}

func TestBuildTimelineTieBreak(t *testing.T) {
	t.Parallel()

	sameDay := day(2023, time.May, 1)
	votes := []db.Vote{
		{ID: 7, BillName: "H.R. 2", VoteDate: sameDay, VoteResult: "NO"},
		{ID: 3, BillName: "H.R. 1", VoteDate: sameDay, VoteResult: "YES"},
	}
	contributions := []db.Contribution{{ID: 9, Organization: "Acme PAC", Amount: "500", ContributionDate: sameDay}}
	transactions := []db.StockTransaction{{ID: 4, StockName: "ACME", Amount: "1000", TradeType: "SELL", TradeDate: sameDay}}

	// Equal dates order by type tag then ID, in both directions.
	for _, asc := range []bool{false, true} {
		items, _ := BuildTimeline(votes, contributions, transactions, 1, 10, asc)
		if len(items) != 4 {
			t.Fatalf("got %d items, want 4", len(items))
		}
		wantOrder := []struct {
			typ string
			id  int64
		}{
			{EventContribution, 9},
			{EventStockTransaction, 4},
			{EventVote, 3},
			{EventVote, 7},
		}
		for i, want := range wantOrder {
			if items[i].Type != want.typ || items[i].ID != want.id {
				t.Fatalf("asc=%v item %d = (%s, %d), want (%s, %d)",
					asc, i, items[i].Type, items[i].ID, want.typ, want.id)
			}
		}
	}
}

func TestBuildTimelinePagination(t *testing.T) {
	t.Parallel()

	// 25 single-type events, one per day.
	votes := make([]db.Vote, 0, 25)
	for i := 0; i < 25; i++ {
		votes = append(votes, db.Vote{
			ID:         int64(i + 1),
			BillName:   "H.R. 1",
			VoteDate:   day(2023, time.January, 1).AddDate(0, 0, i),
			VoteResult: "YES",
		})
	}

	tests := []struct {
		page         int
		wantLen      int
		wantNextPage *int
	}{
		{page: 1, wantLen: 10, wantNextPage: intPtr(2)},
		{page: 2, wantLen: 10, wantNextPage: intPtr(3)},
		{page: 3, wantLen: 5, wantNextPage: nil},
		{page: 4, wantLen: 0, wantNextPage: nil},
	}

	for _, tc := range tests {
		items, pagination := BuildTimeline(votes, nil, nil, tc.page, 10, false)
		if len(items) != tc.wantLen {
			t.Fatalf("page %d: got %d items, want %d", tc.page, len(items), tc.wantLen)
		}
		if pagination.Total != 25 {
			t.Fatalf("page %d: total = %d, want 25", tc.page, pagination.Total)
		}
		if pagination.TotalPages != 3 {
			t.Fatalf("page %d: total_pages = %d, want 3", tc.page, pagination.TotalPages)
		}
		if (pagination.NextPage == nil) != (tc.wantNextPage == nil) {
			t.Fatalf("page %d: next_page = %v, want %v", tc.page, pagination.NextPage, tc.wantNextPage)
		}
		if tc.wantNextPage != nil && *pagination.NextPage != *tc.wantNextPage {
			t.Fatalf("page %d: next_page = %d, want %d", tc.page, *pagination.NextPage, *tc.wantNextPage)
		}
	}
}

func TestBuildTimelineDefaults(t *testing.T) {
	t.Parallel()

	votes := []db.Vote{{ID: 1, BillName: "H.R. 1", VoteDate: day(2023, time.January, 1), VoteResult: "YES"}}

	items, pagination := BuildTimeline(votes, nil, nil, 0, 0, false)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if pagination.Page != 1 {
		t.Fatalf("page clamped to %d, want 1", pagination.Page)
	}
	if pagination.PageSize != 20 {
		t.Fatalf("page_size defaulted to %d, want 20", pagination.PageSize)
	}
}

func intPtr(i int) *int {
	return &i
}
