//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"member-rewards/internal/domain/catalog"
	"member-rewards/internal/domain/member"
	"member-rewards/internal/infra"
	"member-rewards/internal/infra/db"
	"member-rewards/internal/usecase/shared"
)

// fakeStore is in-memory state shared by the fake repositories. The UoW
// mutex serializes transactions the way the row lock does in Postgres.
type fakeStore struct {
	mu sync.Mutex

	nextMemberID int64
	members      map[int64]*member.Member
	byMobile     map[string]int64

	earns []shared.EarnRecord

	nextRedemptionID int64
	redemptions      []shared.RedemptionRecord

	catalog map[int64]*catalog.Entry
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextMemberID:     1,
		members:          make(map[int64]*member.Member),
		byMobile:         make(map[string]int64),
		nextRedemptionID: 1,
		catalog:          make(map[int64]*catalog.Entry),
	}
}

func cloneMember(m *member.Member) *member.Member {
	return member.Restore(
		m.ID(), m.MobileNumber(), m.Name(), m.Email(),
		m.CodeHash(), m.IsVerified(), m.CreatedAt(), m.VerifiedAt(),
	)
}

func (s *fakeStore) snapshot() *fakeStore {
	snap := newFakeStore()
	snap.nextMemberID = s.nextMemberID
	snap.nextRedemptionID = s.nextRedemptionID
	for id, m := range s.members {
		snap.members[id] = cloneMember(m)
	}
	for mobile, id := range s.byMobile {
		snap.byMobile[mobile] = id
	}
	snap.earns = append([]shared.EarnRecord(nil), s.earns...)
	snap.redemptions = append([]shared.RedemptionRecord(nil), s.redemptions...)
	for id, e := range s.catalog {
		snap.catalog[id] = e
	}
	return snap
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.nextMemberID = snap.nextMemberID
	s.nextRedemptionID = snap.nextRedemptionID
	s.members = snap.members
	s.byMobile = snap.byMobile
	s.earns = snap.earns
	s.redemptions = snap.redemptions
	s.catalog = snap.catalog
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) *fakeUoW {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	snap := u.store.snapshot()
	if err := fn(ctx, &fakeTx{store: u.store}); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return fn(ctx, nil)
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Members() shared.MemberRepository         { return &fakeMemberRepo{store: t.store} }
func (t *fakeTx) Ledger() shared.LedgerRepository          { return &fakeLedgerRepo{store: t.store} }
func (t *fakeTx) Catalog() shared.CatalogRepository        { return &fakeCatalogRepo{store: t.store} }
func (t *fakeTx) Redemptions() shared.RedemptionRepository { return &fakeRedemptionRepo{store: t.store} }

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows"), infra.KindNotFound)
}

type fakeMemberRepo struct {
	store *fakeStore
}

func (r *fakeMemberRepo) Create(_ context.Context, m *member.Member) (int64, error) {
	if _, ok := r.store.byMobile[m.MobileNumber().Value()]; ok {
		return 0, infra.WrapRepoErr("duplicate mobile number", errors.New("unique violation"), infra.KindDuplicateKey)
	}
	id := r.store.nextMemberID
	r.store.nextMemberID++
	stored := member.Restore(id, m.MobileNumber(), m.Name(), m.Email(), m.CodeHash(), m.IsVerified(), m.CreatedAt(), m.VerifiedAt())
	r.store.members[id] = stored
	r.store.byMobile[m.MobileNumber().Value()] = id
	return id, nil
}

func (r *fakeMemberRepo) FindByID(_ context.Context, id int64) (*member.Member, error) {
	m, ok := r.store.members[id]
	if !ok {
		return nil, notFoundErr("member not found")
	}
	return cloneMember(m), nil
}

func (r *fakeMemberRepo) FindByIDForUpdate(ctx context.Context, id int64) (*member.Member, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeMemberRepo) FindByMobileForUpdate(_ context.Context, mobileNumber string) (*member.Member, error) {
	id, ok := r.store.byMobile[mobileNumber]
	if !ok {
		return nil, notFoundErr("member not found")
	}
	return cloneMember(r.store.members[id]), nil
}

func (r *fakeMemberRepo) ReissueCode(_ context.Context, id int64, codeHash string, name, email *string, issuedAt time.Time) error {
	m, ok := r.store.members[id]
	if !ok || m.IsVerified() {
		return notFoundErr("pending member not found")
	}
	if err := m.Reissue(codeHash, name, email, issuedAt); err != nil {
		return err
	}
	return nil
}

func (r *fakeMemberRepo) MarkVerified(_ context.Context, id int64, verifiedAt time.Time) error {
	m, ok := r.store.members[id]
	if !ok || m.IsVerified() {
		return notFoundErr("pending member not found")
	}
	return m.Verify(verifiedAt)
}

type fakeLedgerRepo struct {
	store *fakeStore
}

func (r *fakeLedgerRepo) AppendEarn(_ context.Context, rec shared.EarnRecord) (int64, error) {
	if _, ok := r.store.members[rec.MemberID]; !ok {
		return 0, infra.WrapRepoErr("member not found", errors.New("fk violation"), infra.KindForeignKeyViolated)
	}
	r.store.earns = append(r.store.earns, rec)
	return int64(len(r.store.earns)), nil
}

func (r *fakeLedgerRepo) SumEarned(_ context.Context, memberID int64) (int64, error) {
	var sum int64
	for _, rec := range r.store.earns {
		if rec.MemberID == memberID {
			sum += int64(rec.PointsEarned)
		}
	}
	return sum, nil
}

type fakeCatalogRepo struct {
	store *fakeStore
}

func (r *fakeCatalogRepo) FindByID(_ context.Context, id int64) (*catalog.Entry, error) {
	e, ok := r.store.catalog[id]
	if !ok {
		return nil, notFoundErr("catalog entry not found")
	}
	return e, nil
}

type fakeRedemptionRepo struct {
	store *fakeStore
}

func (r *fakeRedemptionRepo) Create(_ context.Context, rec shared.RedemptionRecord) (int64, error) {
	for _, existing := range r.store.redemptions {
		if existing.Code == rec.Code {
			return 0, infra.WrapRepoErr("redemption code collision", errors.New("unique violation"), infra.KindDuplicateKey)
		}
	}
	r.store.redemptions = append(r.store.redemptions, rec)
	id := r.store.nextRedemptionID
	r.store.nextRedemptionID++
	return id, nil
}

func (r *fakeRedemptionRepo) SumRedeemed(_ context.Context, memberID int64) (int64, error) {
	var sum int64
	for _, rec := range r.store.redemptions {
		if rec.MemberID == memberID {
			sum += int64(rec.PointsRedeemed)
		}
	}
	return sum, nil
}

func (r *fakeRedemptionRepo) CodeExists(_ context.Context, code string) (bool, error) {
	for _, rec := range r.store.redemptions {
		if rec.Code == code {
			return true, nil
		}
	}
	return false, nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	sends []sentCode
	err   error
}

type sentCode struct {
	mobileNumber string
	code         string
}

func (n *fakeNotifier) Send(_ context.Context, mobileNumber, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sends = append(n.sends, sentCode{mobileNumber: mobileNumber, code: code})
	return nil
}
