package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

func newService(secret, issuer string) *JWTService {
	return NewJWTService(JWTConfig{SecretKey: secret, TokenExp: time.Hour, TokenIssuer: issuer})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService("secret", "catalog")
	token, expiresAt, err := svc.GenerateToken("alice", RoleAdmin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateRequiresSecret(t *testing.T) {
	_, _, err := newService("", "catalog").GenerateToken("alice", RoleAdmin)
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	svc := newService("secret", "catalog")
	token, _, err := svc.GenerateToken("alice", RoleAdmin)
	require.NoError(t, err)

	_, err = newService("other", "catalog").ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = newService("secret", "someone-else").ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = svc.ValidateToken("garbage")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)

	_, err = svc.ValidateToken("")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestValidateExpired(t *testing.T) {
	svc := newService("secret", "catalog")
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := svc.GenerateToken("alice", RoleAdmin)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("   ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
}
