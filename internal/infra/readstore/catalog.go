package readstore

import (
	"context"

	"member-rewards/internal/infra"
	"member-rewards/internal/infra/db"
	"member-rewards/internal/usecase/queries"
)

type CatalogReadStore struct{}

func NewCatalogReadStore() *CatalogReadStore {
	return &CatalogReadStore{}
}

func (s *CatalogReadStore) ListActive(ctx context.Context, dbtx db.DBTX) ([]queries.CatalogEntryView, error) {
	const query = `
		SELECT id, name, description, points_required, value
		FROM catalog_entries
		WHERE is_active = TRUE
		ORDER BY points_required ASC`

	rows, err := dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list catalog entries", err)
	}
	defer rows.Close()

	entries := make([]queries.CatalogEntryView, 0)
	for rows.Next() {
		var e queries.CatalogEntryView
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.PointsRequired, &e.Value); err != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate catalog entries", err)
	}

	return entries, nil
}
