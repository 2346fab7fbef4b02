// Package normalize turns raw source-record fields into the shapes the
// rest of the system stores. Every function here is pure and total: no
// I/O, no panics, malformed input degrades instead of failing.
package normalize

import "strings"

// partyNames covers the abbreviations the government feeds actually use.
// FEC bulk data uses the three-letter forms, congressional feeds the
// one-letter forms.
var partyNames = map[string]string{
	"D":   "Democrat",
	"DEM": "Democrat",
	"R":   "Republican",
	"REP": "Republican",
	"I":   "Independent",
	"IND": "Independent",
	"L":   "Libertarian",
	"LIB": "Libertarian",
	"G":   "Green",
	"GRE": "Green",
	"CON": "Constitution",
}

// Party maps a party code to its full name. Unknown codes pass through
// unchanged; throwing data away here would silently shrink the corpus.
func Party(code string) string {
	trimmed := strings.TrimSpace(code)
	if full, ok := partyNames[strings.ToUpper(trimmed)]; ok {
		return full
	}
	return code
}
