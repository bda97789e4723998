package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"member-rewards/internal/domain/catalog"
	"member-rewards/internal/infra"
	"member-rewards/internal/infra/db"
)

type CatalogRepository struct {
	db db.DBTX
}

func NewCatalogRepository(dbtx db.DBTX) *CatalogRepository {
	return &CatalogRepository{db: dbtx}
}

func (r *CatalogRepository) FindByID(ctx context.Context, id int64) (*catalog.Entry, error) {
	const query = `
		SELECT id, name, description, points_required, value, is_active
		FROM catalog_entries
		WHERE id = $1`

	var (
		entryID        int64
		name           string
		description    *string
		pointsRequired int32
		value          decimal.Decimal
		isActive       bool
	)

	err := r.db.QueryRow(ctx, query, id).Scan(
		&entryID, &name, &description, &pointsRequired, &value, &isActive,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("catalog entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find catalog entry", err)
	}

	return catalog.Restore(entryID, name, description, pointsRequired, value, isActive), nil
}
