package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"member-rewards/internal/domain/points"
	"member-rewards/internal/infra"
	"member-rewards/internal/pkg/clock"
	"member-rewards/internal/pkg/errs"
	"member-rewards/internal/pkg/randcode"
	"member-rewards/internal/usecase/shared"
)

const (
	redemptionCodeLength = 8
	maxCodeGenAttempts   = 5
)

// InsufficientBalanceError carries the shortfall detail for the API response.
type InsufficientBalanceError struct {
	Required  int32
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient points: required %d, available %d", e.Required, e.Available)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return errs.ErrInsufficientBalance
}

type RedeemInput struct {
	MemberID       int64
	CatalogEntryID int64
}

type RedeemResult struct {
	RedemptionID    int64
	Code            string
	EntryName       string
	Value           decimal.Decimal
	PointsRedeemed  int32
	RemainingPoints int64
}

type RedemptionCommands interface {
	Redeem(ctx context.Context, input RedeemInput) (*RedeemResult, error)
}

type redemptionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRedemptionCommands(uow shared.UnitOfWork, clk clock.Clock) RedemptionCommands {
	return &redemptionCommandsImpl{uow: uow, clock: clk}
}

// Redeem exchanges points for a coupon code. The balance check and the
// redemption insert run in one transaction under a row lock on the member,
// so two concurrent redemptions cannot both spend the same points.
func (c *redemptionCommandsImpl) Redeem(ctx context.Context, input RedeemInput) (*RedeemResult, error) {
	var result *RedeemResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := tx.Members().FindByIDForUpdate(ctx, input.MemberID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrMemberNotEligible
			}
			return err
		}
		if !m.IsVerified() {
			return errs.ErrMemberNotEligible
		}

		entry, err := tx.Catalog().FindByID(ctx, input.CatalogEntryID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrCatalogEntryUnavailable
			}
			return err
		}
		if err := entry.ValidateRedeemable(); err != nil {
			return errs.ErrCatalogEntryUnavailable
		}

		earned, err := tx.Ledger().SumEarned(ctx, input.MemberID)
		if err != nil {
			return err
		}
		redeemed, err := tx.Redemptions().SumRedeemed(ctx, input.MemberID)
		if err != nil {
			return err
		}
		available := points.Available(earned, redeemed)

		if !points.CanRedeem(available, entry.PointsRequired()) {
			return &InsufficientBalanceError{
				Required:  entry.PointsRequired(),
				Available: available,
			}
		}

		code, err := c.generateUniqueCode(ctx, tx)
		if err != nil {
			return err
		}

		id, err := tx.Redemptions().Create(ctx, shared.RedemptionRecord{
			MemberID:       input.MemberID,
			CatalogEntryID: entry.ID(),
			PointsRedeemed: entry.PointsRequired(),
			Code:           code,
			RedeemedAt:     c.clock.Now(),
		})
		if err != nil {
			return err
		}

		result = &RedeemResult{
			RedemptionID:    id,
			Code:            code,
			EntryName:       entry.Name(),
			Value:           entry.Value(),
			PointsRedeemed:  entry.PointsRequired(),
			RemainingPoints: available - int64(entry.PointsRequired()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// generateUniqueCode draws codes until one is unused. The unique index on the
// code column is the real guarantee; the existence check just avoids burning
// the transaction on a collision.
func (c *redemptionCommandsImpl) generateUniqueCode(ctx context.Context, tx shared.Tx) (string, error) {
	for attempt := 0; attempt < maxCodeGenAttempts; attempt++ {
		code, err := randcode.Alphanumeric(redemptionCodeLength)
		if err != nil {
			return "", errs.Wrap(err, "failed to generate redemption code")
		}

		exists, err := tx.Redemptions().CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errs.New("failed to generate unique redemption code")
}
