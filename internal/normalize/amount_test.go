package normalize

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain_integer", raw: "5000", want: "5000"},
		{name: "decimal_cents", raw: "1234.56", want: "1234.56"},
		{name: "dollar_sign_and_commas", raw: "$1,500,000.00", want: "1500000"},
		{name: "negative_amount", raw: "-250.00", want: "-250"},
		{name: "surrounding_whitespace", raw: "  42.10  ", want: "42.1"},
		{name: "empty_normalizes_to_zero", raw: "", want: "0"},
		{name: "garbage_normalizes_to_zero", raw: "n/a", want: "0"},
		{name: "lone_dollar_sign_normalizes_to_zero", raw: "$", want: "0"},
		{name: "large_sum_keeps_precision", raw: "92233720368547758.07", want: "92233720368547758.07"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Amount(tc.raw)
			want, err := decimal.NewFromString(tc.want)
			if err != nil {
				t.Fatalf("bad want value %q: %v", tc.want, err)
			}
			if !got.Equal(want) {
				t.Fatalf("Amount(%q) = %s, want %s", tc.raw, got, want)
			}
		})
	}
}

func TestLargeTradeFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount string
		want   bool
	}{
		{name: "below_threshold", amount: "99999.99", want: false},
		{name: "exactly_threshold_not_flagged", amount: "100000", want: false},
		{name: "just_above_threshold", amount: "100000.01", want: true},
		{name: "far_above_threshold", amount: "5000000", want: true},
		{name: "zero", amount: "0", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			amount, err := decimal.NewFromString(tc.amount)
			if err != nil {
				t.Fatalf("bad amount %q: %v", tc.amount, err)
			}
			if got := LargeTradeFlag(amount); got != tc.want {
				t.Fatalf("LargeTradeFlag(%s) = %v, want %v", amount, got, tc.want)
			}
		})
	}
}
