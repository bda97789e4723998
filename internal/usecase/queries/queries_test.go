//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member-rewards/internal/infra/db"
	"member-rewards/internal/pkg/errs"
	"member-rewards/internal/usecase/queries"
	"member-rewards/internal/usecase/shared"
)

type fakeReadDB struct {
	members      map[int64]queries.MemberView
	earned       map[int64]int64
	redeemed     map[int64]int64
	transactions map[int64][]queries.PointTransactionView
	entries      []queries.CatalogEntryView
}

func (f *fakeReadDB) Within(_ context.Context, _ func(ctx context.Context, tx shared.Tx) error) error {
	panic("not used by queries")
}

func (f *fakeReadDB) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeReadDB) FindByID(_ context.Context, _ db.DBTX, id int64) (*queries.MemberView, error) {
	if m, ok := f.members[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (f *fakeReadDB) SumEarned(_ context.Context, _ db.DBTX, memberID int64) (int64, error) {
	return f.earned[memberID], nil
}

func (f *fakeReadDB) SumRedeemed(_ context.Context, _ db.DBTX, memberID int64) (int64, error) {
	return f.redeemed[memberID], nil
}

func (f *fakeReadDB) ListEarnTransactions(_ context.Context, _ db.DBTX, memberID int64) ([]queries.PointTransactionView, error) {
	return f.transactions[memberID], nil
}

func (f *fakeReadDB) ListActive(_ context.Context, _ db.DBTX) ([]queries.CatalogEntryView, error) {
	return append([]queries.CatalogEntryView(nil), f.entries...), nil
}

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func newFakeReadDB() *fakeReadDB {
	return &fakeReadDB{
		members:      make(map[int64]queries.MemberView),
		earned:       make(map[int64]int64),
		redeemed:     make(map[int64]int64),
		transactions: make(map[int64][]queries.PointTransactionView),
	}
}

func TestGetMemberPoints(t *testing.T) {
	t.Run("balance derived from both logs with history", func(t *testing.T) {
		f := newFakeReadDB()
		f.members[1] = queries.MemberView{ID: 1, MobileNumber: "+819012345678", IsVerified: true}
		f.earned[1] = 300
		f.redeemed[1] = 120
		f.transactions[1] = []queries.PointTransactionView{
			{Date: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), PurchaseAmount: decimal.NewFromInt(2000), PointsEarned: 200},
			{Date: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), PurchaseAmount: decimal.NewFromInt(1000), PointsEarned: 100},
		}

		q := queries.NewPointsQueries(f, f, f)
		view, err := q.GetMemberPoints(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, int64(180), view.TotalPoints)
		assert.Equal(t, "+819012345678", view.MobileNumber)
		if diff := cmp.Diff(f.transactions[1], view.Transactions, decimalComparer); diff != "" {
			t.Errorf("transactions mismatch (-want +got):\n%s", diff)
		}
		require.Len(t, view.Transactions, 2)
		assert.True(t, view.Transactions[0].Date.After(view.Transactions[1].Date))
	})

	t.Run("unknown member", func(t *testing.T) {
		q := queries.NewPointsQueries(newFakeReadDB(), newFakeReadDB(), newFakeReadDB())
		_, err := q.GetMemberPoints(context.Background(), 42)
		assert.ErrorIs(t, err, errs.ErrMemberNotEligible)
	})

	t.Run("unverified member", func(t *testing.T) {
		f := newFakeReadDB()
		f.members[1] = queries.MemberView{ID: 1, MobileNumber: "+819012345678", IsVerified: false}

		q := queries.NewPointsQueries(f, f, f)
		_, err := q.GetMemberPoints(context.Background(), 1)
		assert.ErrorIs(t, err, errs.ErrMemberNotEligible)
	})
}

func TestListAvailable(t *testing.T) {
	t.Run("flags redeemable entries against the balance", func(t *testing.T) {
		f := newFakeReadDB()
		f.members[1] = queries.MemberView{ID: 1, MobileNumber: "+819012345678", IsVerified: true}
		f.earned[1] = 700
		f.redeemed[1] = 100
		f.entries = []queries.CatalogEntryView{
			{ID: 1, Name: "50 Off Coupon", PointsRequired: 500, Value: decimal.NewFromInt(50)},
			{ID: 2, Name: "100 Off Coupon", PointsRequired: 1000, Value: decimal.NewFromInt(100)},
		}

		q := queries.NewCatalogQueries(f, f, f, f)
		view, err := q.ListAvailable(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, int64(600), view.AvailablePoints)
		require.Len(t, view.Entries, 2)
		assert.True(t, view.Entries[0].CanRedeem)
		assert.False(t, view.Entries[1].CanRedeem)
	})

	t.Run("exact balance is redeemable", func(t *testing.T) {
		f := newFakeReadDB()
		f.members[1] = queries.MemberView{ID: 1, MobileNumber: "+819012345678", IsVerified: true}
		f.earned[1] = 500
		f.entries = []queries.CatalogEntryView{
			{ID: 1, Name: "50 Off Coupon", PointsRequired: 500, Value: decimal.NewFromInt(50)},
		}

		q := queries.NewCatalogQueries(f, f, f, f)
		view, err := q.ListAvailable(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, view.Entries[0].CanRedeem)
	})

	t.Run("unverified member", func(t *testing.T) {
		f := newFakeReadDB()
		f.members[1] = queries.MemberView{ID: 1, IsVerified: false}

		q := queries.NewCatalogQueries(f, f, f, f)
		_, err := q.ListAvailable(context.Background(), 1)
		assert.ErrorIs(t, err, errs.ErrMemberNotEligible)
	})
}
