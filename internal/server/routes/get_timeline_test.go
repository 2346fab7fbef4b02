package routes

import (
	"encoding/json"
	"testing"

	"github.com/capitolwatch/backend/internal/analysis"
)

func TestTimelineResponseIsFlat(t *testing.T) {
	t.Parallel()

	next := 2
	payload, err := json.Marshal(newTimelineResponse(
		[]analysis.TimelineEvent{{Type: analysis.EventVote, ID: 7, Date: "2023-05-01"}},
		analysis.Pagination{Total: 25, Page: 1, PageSize: 10, TotalPages: 3, NextPage: &next},
	))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]json.RawMessage
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"items", "total", "page", "page_size", "total_pages", "next_page"} {
		if _, ok := got[key]; !ok {
			t.Fatalf("missing top-level key %q in %s", key, payload)
		}
	}
	// The pagination fields sit beside the items, not under an envelope.
	for _, key := range []string{"events", "pagination"} {
		if _, ok := got[key]; ok {
			t.Fatalf("unexpected top-level key %q in %s", key, payload)
		}
	}

	if string(got["total"]) != "25" {
		t.Fatalf("got total %s, want 25", got["total"])
	}
	if string(got["next_page"]) != "2" {
		t.Fatalf("got next_page %s, want 2", got["next_page"])
	}
}

func TestTimelineResponseNextPageNullOnLastPage(t *testing.T) {
	t.Parallel()

	payload, err := json.Marshal(newTimelineResponse(
		nil,
		analysis.Pagination{Total: 5, Page: 1, PageSize: 10, TotalPages: 1},
	))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]json.RawMessage
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(got["next_page"]) != "null" {
		t.Fatalf("got next_page %s, want null", got["next_page"])
	}
}
