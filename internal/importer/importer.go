package importer

import (
	"context"
	"time"

	"github.com/capitolwatch/backend/internal/resolver"
)

// Result reports how a batch import went. Processed counts every raw
// record seen, Inserted only the ones that made it into the database;
// the difference is records skipped for per-record failures.
type Result struct {
	Processed int `json:"rows_processed"`
	Inserted  int `json:"rows_inserted"`
}

func (r *Result) add(other Result) {
	r.Processed += other.Processed
	r.Inserted += other.Inserted
}

// PoliticianResolver maps an external identifier to a canonical
// politician, creating one on first sighting.
type PoliticianResolver interface {
	Resolve(ctx context.Context, source, externalID string, cand resolver.Candidate) (int64, error)
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
}

// parseDate tries the date formats the upstream feeds actually use.
func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
