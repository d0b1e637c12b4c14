package jwt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officehub/officehub-backend-go/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAndDecodeAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenStr, expiresAt, err := svc.GenerateAccessToken("user-1", "jdoe", "Jane Doe", user.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenStr)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "jdoe", claims["username"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestSSETokenRoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenStr, expiresIn, err := svc.GenerateSSEToken("user-1", user.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, role, err := svc.ValidateSSEToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, user.RoleEmployee, role)
}

func TestValidateSSEToken_RejectsAccessTokens(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenStr, _, err := svc.GenerateAccessToken("user-1", "jdoe", "Jane Doe", user.RoleEmployee)
	require.NoError(t, err)

	_, _, err = svc.ValidateSSEToken(tokenStr)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenStr, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenStr))
	svc.RevokeToken(tokenStr)
	assert.True(t, svc.IsTokenRevoked(tokenStr))
}
