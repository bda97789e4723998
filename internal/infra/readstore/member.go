package readstore

import (
	"context"

	"member-rewards/internal/infra"
	"member-rewards/internal/infra/db"
	"member-rewards/internal/usecase/queries"
)

type MemberReadStore struct{}

func NewMemberReadStore() *MemberReadStore {
	return &MemberReadStore{}
}

// FindByID returns nil (no error) when the member does not exist so that
// callers can fold "missing" and "not verified" into a single outcome.
func (s *MemberReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*queries.MemberView, error) {
	const query = `
		SELECT id, mobile_number, is_verified
		FROM members
		WHERE id = $1`

	var view queries.MemberView
	err := dbtx.QueryRow(ctx, query, id).Scan(&view.ID, &view.MobileNumber, &view.IsVerified)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read member", err)
	}
	return &view, nil
}
