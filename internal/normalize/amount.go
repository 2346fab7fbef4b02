package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// largeTradeThreshold is the screening cutoff above which a trade is
// flagged regardless of timing. Independent of the time-window conflict
// detector; the two rules are never merged.
var largeTradeThreshold = decimal.NewFromInt(100_000)

// Amount parses a raw monetary string into a decimal. Currency symbols,
// commas and surrounding whitespace are tolerated. Invalid or missing
// amounts normalize to zero so one bad field never drops the record.
func Amount(raw string) decimal.Decimal {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// LargeTradeFlag reports whether a trade amount alone warrants a
// potential-conflict flag. Used by the stock importer to seed the
// denormalized boolean; the conflicts endpoint never consults it.
func LargeTradeFlag(amount decimal.Decimal) bool {
	return amount.GreaterThan(largeTradeThreshold)
}
