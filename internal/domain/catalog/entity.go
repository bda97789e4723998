package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidName           = errors.New("catalog entry name is required")
	ErrInvalidPointsRequired = errors.New("points required must be positive")
	ErrInactiveEntry         = errors.New("catalog entry is not active")
)

// Entry is a redeemable reward definition. Unlike the ledger records it is
// mutable; redemptions freeze its cost at redemption time.
type Entry struct {
	id             int64
	name           string
	description    *string
	pointsRequired int32
	value          decimal.Decimal
	active         bool
}

func NewEntry(name string, description *string, pointsRequired int32, value decimal.Decimal) (*Entry, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if pointsRequired <= 0 {
		return nil, ErrInvalidPointsRequired
	}
	return &Entry{
		name:           name,
		description:    description,
		pointsRequired: pointsRequired,
		value:          value,
		active:         true,
	}, nil
}

// Restore rehydrates an entry from storage.
func Restore(id int64, name string, description *string, pointsRequired int32, value decimal.Decimal, active bool) *Entry {
	return &Entry{
		id:             id,
		name:           name,
		description:    description,
		pointsRequired: pointsRequired,
		value:          value,
		active:         active,
	}
}

// ValidateRedeemable checks the entry can currently be redeemed.
func (e *Entry) ValidateRedeemable() error {
	if !e.active {
		return ErrInactiveEntry
	}
	return nil
}

func (e *Entry) ID() int64              { return e.id }
func (e *Entry) Name() string           { return e.name }
func (e *Entry) Description() *string   { return e.description }
func (e *Entry) PointsRequired() int32  { return e.pointsRequired }
func (e *Entry) Value() decimal.Decimal { return e.value }
func (e *Entry) IsActive() bool         { return e.active }
