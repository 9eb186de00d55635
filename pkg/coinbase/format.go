package coinbase

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatQuoteSize converts a crypto amount into its USD spend at the given
// spot price, rendered at exactly 2 decimal places.
func FormatQuoteSize(amount, price float64) string {
	usd := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(price))
	return usd.StringFixed(2)
}

// FormatBaseSize renders a crypto quantity at up to 8 decimal places,
// stripping trailing zeros and a trailing decimal point. Deterministic for
// a given input, so a retried submission formats identically.
func FormatBaseSize(amount float64) string {
	fixed := decimal.NewFromFloat(amount).StringFixed(8)
	fixed = strings.TrimRight(fixed, "0")
	return strings.TrimRight(fixed, ".")
}
