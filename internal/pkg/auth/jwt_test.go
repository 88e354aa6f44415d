package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/internhub/internal/app/models"
)

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "internhub.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testJWTService(time.Hour)
	user := &models.User{ID: 42, Email: "ada@internhub.app", RoleType: models.RoleStudent}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, int(time.Hour.Seconds()), expiresIn)
	assert.Equal(t, int((24 * time.Hour).Seconds()), refreshExpiresIn)

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ada@internhub.app", claims.Email)
	assert.Equal(t, "STUDENT", claims.RoleType)
	assert.Equal(t, "internhub.test", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testJWTService(-time.Minute)
	user := &models.User{ID: 1, Email: "a@b.c", RoleType: models.RoleAdmin}

	accessToken, _, _, _, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(accessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenSignedWithWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@b.c", RoleType: models.RoleAdmin}
	accessToken, _, _, _, err := testJWTService(time.Hour).GenerateTokenPair(user)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "internhub.test",
	})
	_, err = other.ValidateAndExtractClaims(accessToken)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	_, err := testJWTService(time.Hour).ValidateAndExtractClaims("not.a.token")
	assert.Error(t, err)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	svc := testJWTService(time.Hour)
	user := &models.User{ID: 1, Email: "a@b.c", RoleType: models.RoleStudent}

	_, first, _, _, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)
	_, second, _, _, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc123", "abc123", false},
		{"case insensitive scheme", "bearer abc123", "abc123", false},
		{"empty header", "", "", true},
		{"missing token", "Bearer", "", true},
		{"wrong scheme", "Basic abc123", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-Passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-Passw0rd", hash)

	assert.True(t, CheckPasswordHash("s3cret-Passw0rd", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}
