package commands

import (
	"context"
	"log/slog"

	"member-rewards/internal/domain/member"
	"member-rewards/internal/infra"
	"member-rewards/internal/notifier"
	"member-rewards/internal/pkg/clock"
	"member-rewards/internal/pkg/errs"
	"member-rewards/internal/pkg/jwt"
	"member-rewards/internal/pkg/otp"
	"member-rewards/internal/usecase/shared"
)

type RegisterInput struct {
	MobileNumber string
	Name         *string
	Email        *string
}

type RegisterResult struct {
	MemberID         int64
	VerificationCode string
	Reissued         bool
}

type VerifyInput struct {
	MobileNumber string
	Code         string
}

type VerifyResult struct {
	MemberID int64
	Token    string
}

type MemberCommands interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	Verify(ctx context.Context, input VerifyInput) (*VerifyResult, error)
}

type memberCommandsImpl struct {
	uow      shared.UnitOfWork
	tokens   *jwt.Service
	notifier notifier.Notifier
	clock    clock.Clock
}

func NewMemberCommands(uow shared.UnitOfWork, tokens *jwt.Service, n notifier.Notifier, clk clock.Clock) MemberCommands {
	return &memberCommandsImpl{
		uow:      uow,
		tokens:   tokens,
		notifier: n,
		clock:    clk,
	}
}

// Register creates a pending member, or reissues the verification code when
// the mobile number already has an unverified registration. A verified number
// cannot register again.
func (c *memberCommandsImpl) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	mobile, err := member.NewMobileNumber(input.MobileNumber)
	if err != nil {
		return nil, err
	}
	if input.Email != nil {
		if _, err := member.NewEmail(*input.Email); err != nil {
			return nil, err
		}
	}

	// Hashing is slow on purpose; keep it outside the transaction.
	code, codeHash, err := otp.Issue()
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue verification code")
	}

	var result *RegisterResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		existing, err := tx.Members().FindByMobileForUpdate(ctx, mobile.Value())
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		if existing == nil {
			m := member.NewMember(mobile, input.Name, input.Email, codeHash, now)
			id, err := tx.Members().Create(ctx, m)
			if err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return errs.ErrAlreadyRegistered
				}
				return err
			}
			result = &RegisterResult{MemberID: id, VerificationCode: code}
			return nil
		}

		if existing.IsVerified() {
			return errs.ErrAlreadyRegistered
		}

		if err := existing.Reissue(codeHash, input.Name, input.Email, now); err != nil {
			return err
		}
		if err := tx.Members().ReissueCode(ctx, existing.ID(), codeHash, input.Name, input.Email, now); err != nil {
			return err
		}
		result = &RegisterResult{MemberID: existing.ID(), VerificationCode: code, Reissued: true}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Delivery failure must not undo the registration; the member can
	// re-register to get a fresh code.
	if err := c.notifier.Send(ctx, mobile.Value(), code); err != nil {
		slog.Warn("failed to send verification code",
			"member_id", result.MemberID,
			"error", err.Error())
	}

	return result, nil
}

// Verify checks the submitted code against the stored hash and, on success,
// marks the member verified and issues an access token.
func (c *memberCommandsImpl) Verify(ctx context.Context, input VerifyInput) (*VerifyResult, error) {
	mobile, err := member.NewMobileNumber(input.MobileNumber)
	if err != nil {
		return nil, err
	}

	var result *VerifyResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		m, err := tx.Members().FindByMobileForUpdate(ctx, mobile.Value())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrMemberNotFound
			}
			return err
		}

		if m.IsVerified() {
			return errs.ErrAlreadyVerified
		}
		if err := otp.Compare(m.CodeHash(), input.Code); err != nil {
			return errs.ErrCodeMismatch
		}
		if m.CodeExpired(now) {
			return errs.ErrCodeExpired
		}

		if err := m.Verify(now); err != nil {
			return err
		}
		if err := tx.Members().MarkVerified(ctx, m.ID(), now); err != nil {
			return err
		}

		result = &VerifyResult{MemberID: m.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := c.tokens.GenerateToken(result.MemberID, mobile.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}
	result.Token = token

	return result, nil
}
