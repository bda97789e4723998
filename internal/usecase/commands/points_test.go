//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member-rewards/internal/domain/member"
	"member-rewards/internal/domain/points"
	"member-rewards/internal/pkg/clock"
	"member-rewards/internal/pkg/errs"
	"member-rewards/internal/usecase/commands"
)

func seedMember(t *testing.T, store *fakeStore, mobile string, verified bool) int64 {
	t.Helper()
	mob, err := member.NewMobileNumber(mobile)
	require.NoError(t, err)

	id := store.nextMemberID
	store.nextMemberID++
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var verifiedAt *time.Time
	if verified {
		v := createdAt.Add(time.Minute)
		verifiedAt = &v
	}
	store.members[id] = member.Restore(id, mob, nil, nil, "hash", verified, createdAt, verifiedAt)
	store.byMobile[mobile] = id
	return id
}

func TestAddPoints(t *testing.T) {
	baseTime := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("accrues floored points and returns running total", func(t *testing.T) {
		store := newFakeStore()
		memberID := seedMember(t, store, testMobile, true)
		cmds := commands.NewPointsCommands(newFakeUoW(store), clock.NewMockClock(baseTime))

		result, err := cmds.AddPoints(context.Background(), commands.AddPointsInput{
			MemberID:       memberID,
			PurchaseAmount: decimal.RequireFromString("105.50"),
		})
		require.NoError(t, err)
		assert.Equal(t, int32(10), result.PointsEarned)
		assert.Equal(t, int64(10), result.TotalPoints)

		result, err = cmds.AddPoints(context.Background(), commands.AddPointsInput{
			MemberID:       memberID,
			PurchaseAmount: decimal.RequireFromString("200.00"),
		})
		require.NoError(t, err)
		assert.Equal(t, int32(20), result.PointsEarned)
		assert.Equal(t, int64(30), result.TotalPoints)

		require.Len(t, store.earns, 2)
		assert.Equal(t, baseTime, store.earns[0].CreatedAt)
	})

	t.Run("default description records the purchase amount", func(t *testing.T) {
		store := newFakeStore()
		memberID := seedMember(t, store, testMobile, true)
		cmds := commands.NewPointsCommands(newFakeUoW(store), clock.NewMockClock(baseTime))

		_, err := cmds.AddPoints(context.Background(), commands.AddPointsInput{
			MemberID:       memberID,
			PurchaseAmount: decimal.RequireFromString("150"),
		})
		require.NoError(t, err)

		require.Len(t, store.earns, 1)
		require.NotNil(t, store.earns[0].Description)
		assert.Equal(t, "Purchase of 150.00", *store.earns[0].Description)
	})

	t.Run("supplied description wins over the default", func(t *testing.T) {
		store := newFakeStore()
		memberID := seedMember(t, store, testMobile, true)
		cmds := commands.NewPointsCommands(newFakeUoW(store), clock.NewMockClock(baseTime))

		desc := "In-store promo"
		_, err := cmds.AddPoints(context.Background(), commands.AddPointsInput{
			MemberID:       memberID,
			PurchaseAmount: decimal.RequireFromString("150"),
			Description:    &desc,
		})
		require.NoError(t, err)

		require.Len(t, store.earns, 1)
		assert.Equal(t, desc, *store.earns[0].Description)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		store := newFakeStore()
		memberID := seedMember(t, store, testMobile, true)
		cmds := commands.NewPointsCommands(newFakeUoW(store), clock.NewMockClock(baseTime))

		_, err := cmds.AddPoints(context.Background(), commands.AddPointsInput{
			MemberID:       memberID,
			PurchaseAmount: decimal.Zero,
		})
		assert.ErrorIs(t, err, points.ErrNonPositiveAmount)
		assert.Empty(t, store.earns)
	})

	t.Run("unverified member rejected", func(t *testing.T) {
		store := newFakeStore()
		memberID := seedMember(t, store, testMobile, false)
		cmds := commands.NewPointsCommands(newFakeUoW(store), clock.NewMockClock(baseTime))

		_, err := cmds.AddPoints(context.Background(), commands.AddPointsInput{
			MemberID:       memberID,
			PurchaseAmount: decimal.RequireFromString("100"),
		})
		assert.ErrorIs(t, err, errs.ErrMemberNotEligible)
		assert.Empty(t, store.earns)
	})

	t.Run("unknown member rejected", func(t *testing.T) {
		store := newFakeStore()
		cmds := commands.NewPointsCommands(newFakeUoW(store), clock.NewMockClock(baseTime))

		_, err := cmds.AddPoints(context.Background(), commands.AddPointsInput{
			MemberID:       999,
			PurchaseAmount: decimal.RequireFromString("100"),
		})
		assert.ErrorIs(t, err, errs.ErrMemberNotEligible)
	})
}
