package member

import (
	"errors"
	"time"
)

// VerificationWindow is how long an issued code stays valid. Reissuing a
// code restarts the window from the reissue timestamp.
const VerificationWindow = 10 * time.Minute

var (
	ErrAlreadyVerified = errors.New("member is already verified")
	ErrNotVerified     = errors.New("member is not verified")
)

// Member is the identity record gating ledger access. It is created
// unverified and transitions to verified exactly once; there is no way back.
type Member struct {
	id           int64
	mobileNumber MobileNumber
	name         *string
	email        *string
	codeHash     string
	verified     bool
	createdAt    time.Time
	verifiedAt   *time.Time
}

// NewMember creates a pending member. createdAt anchors the code expiry
// window.
func NewMember(mobileNumber MobileNumber, name, email *string, codeHash string, createdAt time.Time) *Member {
	return &Member{
		mobileNumber: mobileNumber,
		name:         name,
		email:        email,
		codeHash:     codeHash,
		verified:     false,
		createdAt:    createdAt,
	}
}

// Restore rehydrates a member from storage.
func Restore(id int64, mobileNumber MobileNumber, name, email *string, codeHash string, verified bool, createdAt time.Time, verifiedAt *time.Time) *Member {
	return &Member{
		id:           id,
		mobileNumber: mobileNumber,
		name:         name,
		email:        email,
		codeHash:     codeHash,
		verified:     verified,
		createdAt:    createdAt,
		verifiedAt:   verifiedAt,
	}
}

// CodeExpired reports whether the verification window has passed. The
// boundary is exclusive: a code checked at exactly createdAt+window is
// still valid.
func (m *Member) CodeExpired(now time.Time) bool {
	return now.After(m.createdAt.Add(VerificationWindow))
}

// Verify transitions the member to verified.
func (m *Member) Verify(now time.Time) error {
	if m.verified {
		return ErrAlreadyVerified
	}
	m.verified = true
	m.verifiedAt = &now
	return nil
}

// Reissue replaces the verification code and restarts the expiry window.
// Name and email are updated only when newly supplied.
func (m *Member) Reissue(codeHash string, name, email *string, now time.Time) error {
	if m.verified {
		return ErrAlreadyVerified
	}
	m.codeHash = codeHash
	if name != nil {
		m.name = name
	}
	if email != nil {
		m.email = email
	}
	m.createdAt = now
	return nil
}

func (m *Member) ID() int64                  { return m.id }
func (m *Member) MobileNumber() MobileNumber { return m.mobileNumber }
func (m *Member) Name() *string              { return m.name }
func (m *Member) Email() *string             { return m.email }
func (m *Member) CodeHash() string           { return m.codeHash }
func (m *Member) IsVerified() bool           { return m.verified }
func (m *Member) CreatedAt() time.Time       { return m.createdAt }
func (m *Member) VerifiedAt() *time.Time     { return m.verifiedAt }
