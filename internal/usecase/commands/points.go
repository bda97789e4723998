package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"member-rewards/internal/domain/points"
	"member-rewards/internal/infra"
	"member-rewards/internal/pkg/clock"
	"member-rewards/internal/pkg/errs"
	"member-rewards/internal/usecase/shared"
)

type AddPointsInput struct {
	MemberID       int64
	PurchaseAmount decimal.Decimal
	Description    *string
}

type AddPointsResult struct {
	MemberID     int64
	PointsEarned int32
	TotalPoints  int64
}

type PointsCommands interface {
	AddPoints(ctx context.Context, input AddPointsInput) (*AddPointsResult, error)
}

type pointsCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPointsCommands(uow shared.UnitOfWork, clk clock.Clock) PointsCommands {
	return &pointsCommandsImpl{uow: uow, clock: clk}
}

// AddPoints records an earn event for a verified member. The row lock on the
// member keeps the returned total consistent with concurrent redemptions.
func (c *pointsCommandsImpl) AddPoints(ctx context.Context, input AddPointsInput) (*AddPointsResult, error) {
	earned, err := points.EarnedFromPurchase(input.PurchaseAmount)
	if err != nil {
		return nil, err
	}

	description := input.Description
	if description == nil {
		d := fmt.Sprintf("Purchase of %s", input.PurchaseAmount.StringFixed(2))
		description = &d
	}

	var result *AddPointsResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
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

		if _, err := tx.Ledger().AppendEarn(ctx, shared.EarnRecord{
			MemberID:       input.MemberID,
			PurchaseAmount: input.PurchaseAmount,
			PointsEarned:   earned,
			Description:    description,
			CreatedAt:      c.clock.Now(),
		}); err != nil {
			return err
		}

		totalEarned, err := tx.Ledger().SumEarned(ctx, input.MemberID)
		if err != nil {
			return err
		}
		totalRedeemed, err := tx.Redemptions().SumRedeemed(ctx, input.MemberID)
		if err != nil {
			return err
		}

		result = &AddPointsResult{
			MemberID:     input.MemberID,
			PointsEarned: earned,
			TotalPoints:  points.Available(totalEarned, totalRedeemed),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
