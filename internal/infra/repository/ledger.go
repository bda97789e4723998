package repository

import (
	"context"

	"member-rewards/internal/infra"
	"member-rewards/internal/infra/db"
	"member-rewards/internal/usecase/shared"
)

// LedgerRepository appends to the earn log. Records are immutable facts:
// there are no update or delete paths.
type LedgerRepository struct {
	db db.DBTX
}

func NewLedgerRepository(dbtx db.DBTX) *LedgerRepository {
	return &LedgerRepository{db: dbtx}
}

func (r *LedgerRepository) AppendEarn(ctx context.Context, rec shared.EarnRecord) (int64, error) {
	const query = `
		INSERT INTO earn_records (member_id, purchase_amount, points_earned, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		rec.MemberID, rec.PurchaseAmount, rec.PointsEarned, rec.Description, rec.CreatedAt,
	).Scan(&id)
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("member not found", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to append earn record", err)
	}
	return id, nil
}

func (r *LedgerRepository) SumEarned(ctx context.Context, memberID int64) (int64, error) {
	const query = `SELECT COALESCE(SUM(points_earned), 0) FROM earn_records WHERE member_id = $1`

	var sum int64
	if err := r.db.QueryRow(ctx, query, memberID).Scan(&sum); err != nil {
		return 0, infra.WrapRepoErr("failed to sum earned points", err)
	}
	return sum, nil
}
