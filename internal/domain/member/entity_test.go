//go:build unit

package member_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member-rewards/internal/domain/member"
)

func mustMobile(t *testing.T, s string) member.MobileNumber {
	t.Helper()
	m, err := member.NewMobileNumber(s)
	require.NoError(t, err)
	return m
}

func TestMobileNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "plain digits OK", input: "9876543210"},
		{name: "with country code OK", input: "+819012345678"},
		{name: "fifteen digits OK", input: "123456789012345"},
		{name: "surrounding whitespace trimmed", input: " 9876543210 "},
		{name: "too short NG", input: "123456789", errIs: member.ErrInvalidMobileNumber},
		{name: "sixteen digits NG", input: "1234567890123456", errIs: member.ErrInvalidMobileNumber},
		{name: "letters NG", input: "98765abcde", errIs: member.ErrInvalidMobileNumber},
		{name: "empty NG", input: "", errIs: member.ErrInvalidMobileNumber},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := member.NewMobileNumber(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCodeExpired(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := member.NewMember(mustMobile(t, "9876543210"), nil, nil, "hash", issued)

	t.Run("within window", func(t *testing.T) {
		assert.False(t, m.CodeExpired(issued))
		assert.False(t, m.CodeExpired(issued.Add(5*time.Minute)))
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		assert.False(t, m.CodeExpired(issued.Add(member.VerificationWindow)))
	})

	t.Run("past window", func(t *testing.T) {
		assert.True(t, m.CodeExpired(issued.Add(member.VerificationWindow+time.Nanosecond)))
		assert.True(t, m.CodeExpired(issued.Add(time.Hour)))
	})
}

func TestVerify(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := issued.Add(2 * time.Minute)

	t.Run("pending member transitions to verified", func(t *testing.T) {
		m := member.NewMember(mustMobile(t, "9876543210"), nil, nil, "hash", issued)

		require.NoError(t, m.Verify(now))
		assert.True(t, m.IsVerified())
		require.NotNil(t, m.VerifiedAt())
		assert.Equal(t, now, *m.VerifiedAt())
	})

	t.Run("second verify fails", func(t *testing.T) {
		m := member.NewMember(mustMobile(t, "9876543210"), nil, nil, "hash", issued)
		require.NoError(t, m.Verify(now))

		assert.ErrorIs(t, m.Verify(now.Add(time.Minute)), member.ErrAlreadyVerified)
	})
}

func TestReissue(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	name := "Alice"
	email := "alice@example.com"

	t.Run("restarts the expiry window", func(t *testing.T) {
		m := member.NewMember(mustMobile(t, "9876543210"), nil, nil, "hash1", issued)

		reissuedAt := issued.Add(15 * time.Minute)
		require.True(t, m.CodeExpired(reissuedAt))

		require.NoError(t, m.Reissue("hash2", nil, nil, reissuedAt))
		assert.Equal(t, "hash2", m.CodeHash())
		assert.Equal(t, reissuedAt, m.CreatedAt())
		assert.False(t, m.CodeExpired(reissuedAt.Add(member.VerificationWindow)))
	})

	t.Run("updates name and email only when supplied", func(t *testing.T) {
		m := member.NewMember(mustMobile(t, "9876543210"), &name, &email, "hash1", issued)

		require.NoError(t, m.Reissue("hash2", nil, nil, issued.Add(time.Minute)))
		require.NotNil(t, m.Name())
		assert.Equal(t, name, *m.Name())
		require.NotNil(t, m.Email())
		assert.Equal(t, email, *m.Email())

		newName := "Bob"
		require.NoError(t, m.Reissue("hash3", &newName, nil, issued.Add(2*time.Minute)))
		require.NotNil(t, m.Name())
		assert.Equal(t, newName, *m.Name())
		assert.Equal(t, email, *m.Email())
	})

	t.Run("verified member cannot be reissued", func(t *testing.T) {
		m := member.NewMember(mustMobile(t, "9876543210"), nil, nil, "hash1", issued)
		require.NoError(t, m.Verify(issued.Add(time.Minute)))

		assert.ErrorIs(t, m.Reissue("hash2", nil, nil, issued.Add(2*time.Minute)), member.ErrAlreadyVerified)
	})
}
