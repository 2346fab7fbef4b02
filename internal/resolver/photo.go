package resolver

import (
	"fmt"
	"strings"
)

// BuildPhotoURL returns a pipe-separated primary|fallback photo URL pair
// for a bioguide ID. The frontend tries them in order: the
// unitedstates.io mirror first, the official bioguide cloudfront second.
func BuildPhotoURL(bioguideID string) string {
	if bioguideID == "" {
		return ""
	}

	primary := fmt.Sprintf("https://theunitedstates.io/images/congress/450x550/%s.jpg", bioguideID)
	fallback := fmt.Sprintf(
		"https://bioguide-cloudfront.house.gov/bioguide/photo/%s/%s.jpg",
		strings.ToUpper(bioguideID[:1]),
		bioguideID,
	)
	return primary + "|" + fallback
}
