package analysis

import (
	"sort"
	"time"

	"github.com/capitolwatch/backend/internal/db"
	"github.com/capitolwatch/backend/pkg/logger"
)

// Event type tags. Their lexicographic order doubles as the documented
// tie-break for equal dates, so tests stay deterministic.
const (
	EventContribution     = "contribution"
	EventStockTransaction = "stock_transaction"
	EventVote             = "vote"
)

// TimelineEvent is one record of any type, wrapped with a discriminant
// tag and a unified date. Amount is nil for votes.
type TimelineEvent struct {
	Type   string  `json:"type"`
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Amount *string `json:"amount"`

	BillName        string  `json:"bill_name,omitempty"`
	BillDescription *string `json:"bill_description,omitempty"`
	VoteResult      string  `json:"vote_result,omitempty"`
	Organization    string  `json:"organization,omitempty"`
	Industry        *string `json:"industry,omitempty"`
	StockName       string  `json:"stock_name,omitempty"`
	TradeType       string  `json:"trade_type,omitempty"`
}

// Pagination describes the slice returned by BuildTimeline. NextPage is
// nil on the last page.
type Pagination struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	NextPage   *int `json:"next_page"`
}

type datedEvent struct {
	event TimelineEvent
	date  time.Time
}

// BuildTimeline merges a politician's votes, contributions and stock
// transactions into one date-sorted, offset-paginated feed. Descending
// (most recent first) unless asc is set. Equal dates break on type tag
// then record ID so the order is stable across calls.
//
// The merge is in-memory over one politician's records; it is not meant
// to merge across the whole corpus.
func BuildTimeline(
	votes []db.Vote,
	contributions []db.Contribution,
	transactions []db.StockTransaction,
	page int,
	pageSize int,
	asc bool,
) ([]TimelineEvent, Pagination) {
	events := make([]datedEvent, 0, len(votes)+len(contributions)+len(transactions))

	for _, v := range votes {
		if v.VoteDate.IsZero() {
			logger.Warn("[Timeline] Skipping vote with missing date", "vote_id", v.ID)
			continue
		}
		events = append(events, datedEvent{
			date: v.VoteDate,
			event: TimelineEvent{
				Type:            EventVote,
				ID:              v.ID,
				Date:            v.VoteDate.Format(dateFormat),
				BillName:        v.BillName,
				BillDescription: v.BillDescription,
				VoteResult:      v.VoteResult,
			},
		})
	}
	for _, c := range contributions {
		if c.ContributionDate.IsZero() {
			logger.Warn("[Timeline] Skipping contribution with missing date", "contribution_id", c.ID)
			continue
		}
		amount := c.Amount
		events = append(events, datedEvent{
			date: c.ContributionDate,
			event: TimelineEvent{
				Type:         EventContribution,
				ID:           c.ID,
				Date:         c.ContributionDate.Format(dateFormat),
				Amount:       &amount,
				Organization: c.Organization,
				Industry:     c.Industry,
			},
		})
	}
	for _, t := range transactions {
		if t.TradeDate.IsZero() {
			logger.Warn("[Timeline] Skipping transaction with missing date", "trade_id", t.ID)
			continue
		}
		amount := t.Amount
		events = append(events, datedEvent{
			date: t.TradeDate,
			event: TimelineEvent{
				Type:      EventStockTransaction,
				ID:        t.ID,
				Date:      t.TradeDate.Format(dateFormat),
				Amount:    &amount,
				StockName: t.StockName,
				TradeType: t.TradeType,
			},
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.date.Equal(b.date) {
			if asc {
				return a.date.Before(b.date)
			}
			return a.date.After(b.date)
		}
		if a.event.Type != b.event.Type {
			return a.event.Type < b.event.Type
		}
		return a.event.ID < b.event.ID
	})

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	total := len(events)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]TimelineEvent, 0, end-start)
	for _, e := range events[start:end] {
		items = append(items, e.event)
	}

	pagination := Pagination{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
	if page < totalPages {
		next := page + 1
		pagination.NextPage = &next
	}
	return items, pagination
}
