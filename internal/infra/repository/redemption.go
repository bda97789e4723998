package repository

import (
	"context"

	"member-rewards/internal/infra"
	"member-rewards/internal/infra/db"
	"member-rewards/internal/usecase/shared"
)

type RedemptionRepository struct {
	db db.DBTX
}

func NewRedemptionRepository(dbtx db.DBTX) *RedemptionRepository {
	return &RedemptionRepository{db: dbtx}
}

func (r *RedemptionRepository) Create(ctx context.Context, rec shared.RedemptionRecord) (int64, error) {
	const query = `
		INSERT INTO redemptions (member_id, catalog_entry_id, points_redeemed, code, redeemed_at, is_used)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		rec.MemberID, rec.CatalogEntryID, rec.PointsRedeemed, rec.Code, rec.RedeemedAt,
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return 0, infra.WrapRepoErr("redemption code collision", err, infra.KindDuplicateKey)
		}
		if infra.IsForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("member or catalog entry not found", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to create redemption record", err)
	}
	return id, nil
}

func (r *RedemptionRepository) SumRedeemed(ctx context.Context, memberID int64) (int64, error) {
	const query = `SELECT COALESCE(SUM(points_redeemed), 0) FROM redemptions WHERE member_id = $1`

	var sum int64
	if err := r.db.QueryRow(ctx, query, memberID).Scan(&sum); err != nil {
		return 0, infra.WrapRepoErr("failed to sum redeemed points", err)
	}
	return sum, nil
}

func (r *RedemptionRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM redemptions WHERE code = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check redemption code", err)
	}
	return exists, nil
}
