package queries

import (
	"context"

	"github.com/shopspring/decimal"

	"member-rewards/internal/domain/points"
	"member-rewards/internal/infra/db"
	"member-rewards/internal/pkg/errs"
	"member-rewards/internal/usecase/shared"
)

type CatalogEntryView struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    *string         `json:"description,omitempty"`
	PointsRequired int32           `json:"points_required"`
	Value          decimal.Decimal `json:"value"`
	CanRedeem      bool            `json:"can_redeem"`
}

type AvailableCatalogView struct {
	MemberID        int64              `json:"member_id"`
	AvailablePoints int64              `json:"available_points"`
	Entries         []CatalogEntryView `json:"entries"`
}

type CatalogReadStore interface {
	// ListActive returns active entries ordered by points required ascending.
	ListActive(ctx context.Context, dbtx db.DBTX) ([]CatalogEntryView, error)
}

type CatalogQueries interface {
	ListAvailable(ctx context.Context, memberID int64) (*AvailableCatalogView, error)
}

type catalogQueriesImpl struct {
	uow     shared.UnitOfWork
	members MemberReadStore
	ledger  LedgerReadStore
	catalog CatalogReadStore
}

func NewCatalogQueries(
	uow shared.UnitOfWork,
	members MemberReadStore,
	ledger LedgerReadStore,
	catalog CatalogReadStore,
) CatalogQueries {
	return &catalogQueriesImpl{
		uow:     uow,
		members: members,
		ledger:  ledger,
		catalog: catalog,
	}
}

func (q *catalogQueriesImpl) ListAvailable(ctx context.Context, memberID int64) (*AvailableCatalogView, error) {
	var view *AvailableCatalogView

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
		available := points.Available(earned, redeemed)

		entries, err := q.catalog.ListActive(ctx, dbtx)
		if err != nil {
			return err
		}
		for i := range entries {
			entries[i].CanRedeem = points.CanRedeem(available, entries[i].PointsRequired)
		}

		view = &AvailableCatalogView{
			MemberID:        memberID,
			AvailablePoints: available,
			Entries:         entries,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}
