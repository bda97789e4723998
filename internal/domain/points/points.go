// Package points holds the pure ledger arithmetic: the accrual rate and the
// available-balance calculation. Both logs are append-only; the balance is
// always derived, never stored.
package points

import (
	"errors"

	"github.com/shopspring/decimal"
)

// 1 point per 10 currency units of purchase amount, floored.
var accrualRate = decimal.NewFromFloat(0.1)

var ErrNonPositiveAmount = errors.New("purchase amount must be positive")

// EarnedFromPurchase converts a purchase amount into points.
func EarnedFromPurchase(amount decimal.Decimal) (int32, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return 0, ErrNonPositiveAmount
	}
	return int32(amount.Mul(accrualRate).Floor().IntPart()), nil
}

// Available derives the balance from the two log sums. No clamping: a
// negative result signals an upstream invariant violation and must surface
// as-is.
func Available(earned, redeemed int64) int64 {
	return earned - redeemed
}

// CanRedeem reports whether a balance covers a catalog entry's cost.
func CanRedeem(available int64, required int32) bool {
	return available >= int64(required)
}
