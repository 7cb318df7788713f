package auth_test

import (
	"testing"

	"flohmarkt_backend/internal/auth"
	"flohmarkt_backend/internal/config"
	"flohmarkt_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, auth.CheckPasswordHash("correct horse battery", hash))
	assert.False(t, auth.CheckPasswordHash("wrong password", hash))
}

func TestValidatePassword_MinLength(t *testing.T) {
	t.Parallel()

	assert.Error(t, auth.ValidatePassword("short"))
	assert.NoError(t, auth.ValidatePassword("longenough"))
}

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "test-secret"
	config.AppConfig.JWT.TTL = 60

	token, err := auth.GenerateToken("user-1", models.UserRoleAdmin)
	require.NoError(t, err)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.UserRoleAdmin, claims.Role)

	_, err = auth.ParseToken(token + "tampered")
	assert.Error(t, err)
}

func TestPermissions(t *testing.T) {
	t.Parallel()

	assert.True(t, auth.CanManageProduct("u1", models.UserRoleUser, "u1"))
	assert.False(t, auth.CanManageProduct("u2", models.UserRoleUser, "u1"))
	assert.True(t, auth.CanManageProduct("u2", models.UserRoleAdmin, "u1"))

	assert.True(t, auth.CanAccessMessages("u1", models.UserRoleUser, "u1"))
	assert.False(t, auth.CanAccessMessages("u2", models.UserRoleUser, "u1"))
	assert.True(t, auth.CanAccessMessages("u2", models.UserRoleAdmin, "u1"))
}
