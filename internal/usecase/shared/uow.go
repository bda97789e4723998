package shared

import (
	"context"
	"time"

	"member-rewards/internal/domain/catalog"
	"member-rewards/internal/domain/member"
	"member-rewards/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Members() MemberRepository
	Ledger() LedgerRepository
	Catalog() CatalogRepository
	Redemptions() RedemptionRepository
}

type MemberRepository interface {
	Create(ctx context.Context, m *member.Member) (int64, error)
	FindByID(ctx context.Context, id int64) (*member.Member, error)
	// FindByIDForUpdate takes a row lock on the member, serializing
	// concurrent ledger writes for that member.
	FindByIDForUpdate(ctx context.Context, id int64) (*member.Member, error)
	FindByMobileForUpdate(ctx context.Context, mobileNumber string) (*member.Member, error)
	ReissueCode(ctx context.Context, id int64, codeHash string, name, email *string, issuedAt time.Time) error
	MarkVerified(ctx context.Context, id int64, verifiedAt time.Time) error
}

type LedgerRepository interface {
	AppendEarn(ctx context.Context, rec EarnRecord) (int64, error)
	SumEarned(ctx context.Context, memberID int64) (int64, error)
}

type CatalogRepository interface {
	FindByID(ctx context.Context, id int64) (*catalog.Entry, error)
}

type RedemptionRepository interface {
	Create(ctx context.Context, rec RedemptionRecord) (int64, error)
	SumRedeemed(ctx context.Context, memberID int64) (int64, error)
	CodeExists(ctx context.Context, code string) (bool, error)
}
