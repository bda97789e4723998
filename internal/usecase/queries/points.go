package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"member-rewards/internal/domain/points"
	"member-rewards/internal/infra/db"
	"member-rewards/internal/pkg/errs"
	"member-rewards/internal/usecase/shared"
)

// Read models (DTO for read side)
type MemberView struct {
	ID           int64  `json:"id"`
	MobileNumber string `json:"mobile_number"`
	IsVerified   bool   `json:"is_verified"`
}

type PointTransactionView struct {
	Date           time.Time       `json:"date"`
	PurchaseAmount decimal.Decimal `json:"purchase_amount"`
	PointsEarned   int32           `json:"points_earned"`
	Description    *string         `json:"description,omitempty"`
}

type MemberPointsView struct {
	MemberID     int64                  `json:"member_id"`
	MobileNumber string                 `json:"mobile_number"`
	TotalPoints  int64                  `json:"total_points"`
	Transactions []PointTransactionView `json:"transactions"`
}

type MemberReadStore interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*MemberView, error)
}

type LedgerReadStore interface {
	SumEarned(ctx context.Context, dbtx db.DBTX, memberID int64) (int64, error)
	SumRedeemed(ctx context.Context, dbtx db.DBTX, memberID int64) (int64, error)
	// ListEarnTransactions returns earn records, most recent first.
	ListEarnTransactions(ctx context.Context, dbtx db.DBTX, memberID int64) ([]PointTransactionView, error)
}

type PointsQueries interface {
	GetMemberPoints(ctx context.Context, memberID int64) (*MemberPointsView, error)
}

type pointsQueriesImpl struct {
	uow     shared.UnitOfWork
	members MemberReadStore
	ledger  LedgerReadStore
}

func NewPointsQueries(uow shared.UnitOfWork, members MemberReadStore, ledger LedgerReadStore) PointsQueries {
	return &pointsQueriesImpl{
		uow:     uow,
		members: members,
		ledger:  ledger,
	}
}

// GetMemberPoints recomputes the balance from the full logs inside one
// read-only snapshot, so the total and the history always agree.
func (q *pointsQueriesImpl) GetMemberPoints(ctx context.Context, memberID int64) (*MemberPointsView, error) {
	var view *MemberPointsView

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		m, err := q.members.FindByID(ctx, dbtx, memberID)
		if err != nil {
			return err
		}
		if m == nil || !m.IsVerified {
			return errs.ErrMemberNotEligible
		}

		earned, err := q.ledger.SumEarned(ctx, dbtx, memberID)
		if err != nil {
			return err
		}
		redeemed, err := q.ledger.SumRedeemed(ctx, dbtx, memberID)
		if err != nil {
			return err
		}

		transactions, err := q.ledger.ListEarnTransactions(ctx, dbtx, memberID)
		if err != nil {
			return err
		}

		view = &MemberPointsView{
			MemberID:     m.ID,
			MobileNumber: m.MobileNumber,
			TotalPoints:  points.Available(earned, redeemed),
			Transactions: transactions,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}
