package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shopledger/internal/core/apperror"
)

func newTestService(t *testing.T) (*Service, *time.Time) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	jwtSvc := NewJWTService(DefaultJWTConfig("test-secret"))
	jwtSvc.now = clock
	svc := NewService(ServiceConfig{
		Username:         "till",
		PasswordHash:     string(hash),
		MaxLoginAttempts: 3,
		LockDuration:     time.Minute,
	}, jwtSvc)
	svc.now = clock
	return svc, &now
}

func TestLogin_IssuesValidToken(t *testing.T) {
	svc, _ := newTestService(t)

	token, err := svc.Login(context.Background(), Credentials{Username: "till", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)

	op, err := svc.Authenticate(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "till", op.Username)
	assert.NotEmpty(t, op.SessionID)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, Credentials{Username: "till", Password: "wrong"})
	assert.True(t, hasCode(err, apperror.CodeUnauthorized))

	_, err = svc.Login(ctx, Credentials{Username: "admin", Password: "s3cret"})
	assert.True(t, hasCode(err, apperror.CodeUnauthorized))
}

func TestLogin_LocksAfterRepeatedFailures(t *testing.T) {
	svc, now := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Login(ctx, Credentials{Username: "till", Password: "nope"})
		require.Error(t, err)
	}

	_, err := svc.Login(ctx, Credentials{Username: "till", Password: "s3cret"})
	require.Error(t, err, "locked even with the right password")

	*now = now.Add(2 * time.Minute)
	_, err = svc.Login(ctx, Credentials{Username: "till", Password: "s3cret"})
	assert.NoError(t, err)
}

func TestAuthenticate_RejectsExpiredAndForeignTokens(t *testing.T) {
	svc, now := newTestService(t)

	token, err := svc.Login(context.Background(), Credentials{Username: "till", Password: "s3cret"})
	require.NoError(t, err)

	other := NewJWTService(DefaultJWTConfig("another-secret"))
	foreign, _, err := other.GenerateAccessToken("till")
	require.NoError(t, err)
	_, err = svc.Authenticate(foreign)
	assert.True(t, hasCode(err, apperror.CodeUnauthorized))

	*now = now.Add(13 * time.Hour)
	_, err = svc.Authenticate(token.AccessToken)
	assert.True(t, hasCode(err, apperror.CodeUnauthorized))
}

func TestEnabled(t *testing.T) {
	disabled := NewService(ServiceConfig{Username: "till"}, NewJWTService(DefaultJWTConfig("x")))
	assert.False(t, disabled.Enabled())

	_, err := disabled.Login(context.Background(), Credentials{Username: "till"})
	assert.True(t, apperror.IsValidation(err))
}

func hasCode(err error, code string) bool {
	appErr, ok := apperror.AsAppError(err)
	return ok && appErr.Code == code
}
