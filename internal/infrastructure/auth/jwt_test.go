package auth

import (
	"testing"
	"time"

	"github.com/bizsuite/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-test-secret-test-secret",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "bizsuite-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService()
	tenantID := uuid.New()
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateToken(tenantID, userID, "jdoe")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, tenantID.String(), claims.TenantID)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)

	gotTenant, err := claims.GetTenantUUID()
	require.NoError(t, err)
	assert.Equal(t, tenantID, gotTenant)

	gotUser, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, gotUser)
}

func TestJWTService_ValidateRejectsBadTokens(t *testing.T) {
	svc := newTestService()

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                "another-secret-another-secret-12",
			AccessTokenExpiration: 15 * time.Minute,
			Issuer:                "bizsuite-test",
		})
		token, _, err := other.GenerateToken(uuid.New(), uuid.New(), "jdoe")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTService(config.JWTConfig{
			Secret:                "test-secret-test-secret-test-secret",
			AccessTokenExpiration: -time.Minute,
			Issuer:                "bizsuite-test",
		})
		token, _, err := expired.GenerateToken(uuid.New(), uuid.New(), "jdoe")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
