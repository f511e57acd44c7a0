package helpers

import (
	"fmt"

	"github.com/shopspring/decimal"

	"sole-exchange/internal/exchangeerrors"
)

// MaxPriceCents caps offer prices at $1,000,000.
const MaxPriceCents int64 = 100_000_000

// ParsePrice converts a decimal price string ("95.00") to integer cents.
// Prices must be positive, at most two fractional digits, and below the cap.
func ParsePrice(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w - price %q is not a decimal number", exchangeerrors.ErrInvalidOffer, s)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w - price must be positive, got %q", exchangeerrors.ErrInvalidOffer, s)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("%w - price %q has sub-cent precision", exchangeerrors.ErrInvalidOffer, s)
	}
	v := cents.IntPart()
	if v > MaxPriceCents {
		return 0, fmt.Errorf("%w - price %q exceeds the maximum", exchangeerrors.ErrInvalidOffer, s)
	}
	return v, nil
}

// FormatPrice renders integer cents as a two-decimal price string.
func FormatPrice(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
