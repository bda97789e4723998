package shared

import (
	"time"

	"github.com/shopspring/decimal"
)

// EarnRecord is an immutable point-earning fact about to be appended.
type EarnRecord struct {
	MemberID       int64
	PurchaseAmount decimal.Decimal
	PointsEarned   int32
	Description    *string
	CreatedAt      time.Time
}

// RedemptionRecord freezes the catalog entry's cost at redemption time.
type RedemptionRecord struct {
	MemberID       int64
	CatalogEntryID int64
	PointsRedeemed int32
	Code           string
	RedeemedAt     time.Time
}
