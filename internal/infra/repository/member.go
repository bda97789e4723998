package repository

import (
	"context"
	"time"

	"member-rewards/internal/domain/member"
	"member-rewards/internal/infra"
	"member-rewards/internal/infra/db"
)

const memberColumns = `id, mobile_number, name, email, code_hash, is_verified, created_at, verified_at`

type MemberRepository struct {
	db db.DBTX
}

func NewMemberRepository(dbtx db.DBTX) *MemberRepository {
	return &MemberRepository{db: dbtx}
}

func (r *MemberRepository) Create(ctx context.Context, m *member.Member) (int64, error) {
	const query = `
		INSERT INTO members (mobile_number, name, email, code_hash, is_verified, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		m.MobileNumber().Value(), m.Name(), m.Email(), m.CodeHash(), m.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return 0, infra.WrapRepoErr("mobile number already registered", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to create member", err)
	}
	return id, nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id int64) (*member.Member, error) {
	return r.findOne(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id)
}

func (r *MemberRepository) FindByIDForUpdate(ctx context.Context, id int64) (*member.Member, error) {
	return r.findOne(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1 FOR UPDATE`, id)
}

func (r *MemberRepository) FindByMobileForUpdate(ctx context.Context, mobileNumber string) (*member.Member, error) {
	return r.findOne(ctx, `SELECT `+memberColumns+` FROM members WHERE mobile_number = $1 FOR UPDATE`, mobileNumber)
}

func (r *MemberRepository) ReissueCode(ctx context.Context, id int64, codeHash string, name, email *string, issuedAt time.Time) error {
	const query = `
		UPDATE members
		SET code_hash = $2,
		    name = COALESCE($3, name),
		    email = COALESCE($4, email),
		    created_at = $5
		WHERE id = $1 AND is_verified = FALSE`

	tag, err := r.db.Exec(ctx, query, id, codeHash, name, email, issuedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to reissue verification code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pending member not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MemberRepository) MarkVerified(ctx context.Context, id int64, verifiedAt time.Time) error {
	const query = `
		UPDATE members
		SET is_verified = TRUE, verified_at = $2
		WHERE id = $1 AND is_verified = FALSE`

	tag, err := r.db.Exec(ctx, query, id, verifiedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to mark member verified", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pending member not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MemberRepository) findOne(ctx context.Context, query string, arg any) (*member.Member, error) {
	var (
		id           int64
		mobileNumber string
		name         *string
		email        *string
		codeHash     string
		isVerified   bool
		createdAt    time.Time
		verifiedAt   *time.Time
	)

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&id, &mobileNumber, &name, &email, &codeHash, &isVerified, &createdAt, &verifiedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member", err)
	}

	mobile, err := member.NewMobileNumber(mobileNumber)
	if err != nil {
		return nil, infra.WrapRepoErr("stored mobile number is invalid", err)
	}

	return member.Restore(id, mobile, name, email, codeHash, isVerified, createdAt, verifiedAt), nil
}
