package readstore

import (
	"context"

	"member-rewards/internal/infra"
	"member-rewards/internal/infra/db"
	"member-rewards/internal/usecase/queries"
)

type LedgerReadStore struct{}

func NewLedgerReadStore() *LedgerReadStore {
	return &LedgerReadStore{}
}

func (s *LedgerReadStore) SumEarned(ctx context.Context, dbtx db.DBTX, memberID int64) (int64, error) {
	const query = `SELECT COALESCE(SUM(points_earned), 0) FROM earn_records WHERE member_id = $1`

	var sum int64
	if err := dbtx.QueryRow(ctx, query, memberID).Scan(&sum); err != nil {
		return 0, infra.WrapRepoErr("failed to sum earned points", err)
	}
	return sum, nil
}

func (s *LedgerReadStore) SumRedeemed(ctx context.Context, dbtx db.DBTX, memberID int64) (int64, error) {
	const query = `SELECT COALESCE(SUM(points_redeemed), 0) FROM redemptions WHERE member_id = $1`

	var sum int64
	if err := dbtx.QueryRow(ctx, query, memberID).Scan(&sum); err != nil {
		return 0, infra.WrapRepoErr("failed to sum redeemed points", err)
	}
	return sum, nil
}

func (s *LedgerReadStore) ListEarnTransactions(ctx context.Context, dbtx db.DBTX, memberID int64) ([]queries.PointTransactionView, error) {
	const query = `
		SELECT created_at, purchase_amount, points_earned, description
		FROM earn_records
		WHERE member_id = $1
		ORDER BY created_at DESC`

	rows, err := dbtx.Query(ctx, query, memberID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list earn transactions", err)
	}
	defer rows.Close()

	transactions := make([]queries.PointTransactionView, 0)
	for rows.Next() {
		var t queries.PointTransactionView
		if err := rows.Scan(&t.Date, &t.PurchaseAmount, &t.PointsEarned, &t.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan earn transaction", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate earn transactions", err)
	}

	return transactions, nil
}
