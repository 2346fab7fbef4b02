package normalize

import "strings"

// SplitName splits a "Last, First" formatted name on the first comma.
// Without a comma the whole string becomes the last name and the first
// name is empty. That is a known heuristic failure for sources that
// format names "First Last"; downstream matching depends on this exact
// behavior, so do not change it without migrating the stored rows.
func SplitName(name string) (firstName, lastName string) {
	last, first, found := strings.Cut(name, ",")
	if !found {
		return "", strings.TrimSpace(name)
	}
	return strings.TrimSpace(first), strings.TrimSpace(last)
}
