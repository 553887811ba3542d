package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grievance/internal/shared/authorization"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	token, expiresIn, err := svc.GenerateAccessToken(42, authorization.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.EqualValues(t, 3600, expiresIn)

	userID, role, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, authorization.RoleAdmin, role)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", 60)
	verifier := NewJWTService("secret-b", 60)

	token, _, err := issuer.GenerateAccessToken(1, authorization.RoleStudent)
	require.NoError(t, err)

	_, _, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	_, _, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -1)

	token, _, err := svc.GenerateAccessToken(1, authorization.RoleStudent)
	require.NoError(t, err)

	_, _, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, hasher.Compare(hash, "hunter22"))
	assert.Error(t, hasher.Compare(hash, "wrong"))
	assert.Error(t, hasher.Compare("not-a-hash", "hunter22"))
}
