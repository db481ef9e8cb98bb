// Package money converts between user-facing decimal currency and the integer
// minor units stored and transmitted everywhere else. Prices never travel as
// floating point.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ToCents parses a decimal currency amount ("180", "180.00", "149.99") and
// returns integer minor units, rounding half away from zero on sub-cent input.
func ToCents(amount string) (int, error) {
	trimmed := strings.TrimSpace(amount)
	if trimmed == "" {
		return 0, fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %q must not be negative", amount)
	}
	return int(d.Mul(hundred).Round(0).IntPart()), nil
}

// FromCents renders minor units as a two-decimal currency string.
func FromCents(cents int) string {
	return decimal.NewFromInt(int64(cents)).Div(hundred).StringFixed(2)
}
