package auth

import (
	"testing"
	"time"

	"paygate/config"
	"paygate/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     "u1",
		Email:        "u1@x.com",
		PasswordHash: "$2a$10$hash",
	}
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(t)
	user := newTestUser()

	token, err := svc.SignAccessToken(user)
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.User.ID)
	assert.Equal(t, "u1", claims.User.Username)
	assert.Equal(t, "u1@x.com", claims.User.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	assert.NotContains(t, token, "hash")
}

func TestJWTService_ParseAccessTokenAcceptsExpired(t *testing.T) {
	svc := newTestJWTService(t)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.SignAccessToken(newTestUser())
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsExpired(time.Now()))
}

func TestJWTService_ParseAccessTokenRejectsForeignSignature(t *testing.T) {
	svc := newTestJWTService(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user": map[string]any{"id": uuid.NewString()}})
	token, err := forged.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ParseAccessTokenRejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t)

	claims, err := svc.ParseAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RefreshToken(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	first, err := svc.SignRefreshToken(userID)
	require.NoError(t, err)
	second, err := svc.SignRefreshToken(userID)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	claims, err := svc.ValidateRefreshToken(first)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_RefreshTokenExpired(t *testing.T) {
	svc := newTestJWTService(t)
	svc.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }

	token, err := svc.SignRefreshToken(uuid.New())
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestJWTService_AccessTokenIsNotARefreshToken(t *testing.T) {
	svc := newTestJWTService(t)

	access, err := svc.SignAccessToken(newTestUser())
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.ErrorIs(t, err, errSecretsMissing)
	assert.Nil(t, svc)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-only"
	_, err = NewJWTService(cfg)
	assert.ErrorIs(t, err, errSecretsMissing)
}

func TestJWTService_ConfiguredTTLs(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}}
	cfg.SecretKey.Access = "a"
	cfg.SecretKey.Refresh = "r"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, svc.(*jwtService).accessTTL)
	assert.Equal(t, time.Hour, svc.(*jwtService).refreshTTL)
}
