package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/okanoworks/orgtask-api/internal/models"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	user := &models.User{
		ID:    42,
		Role:  models.RoleOrgAdmin,
		OrgID: 7,
	}

	token, err := GenerateToken(user, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, uint64(42), claims.UserID)
	require.Equal(t, models.RoleOrgAdmin, claims.Role)
	require.Equal(t, uint64(7), claims.OrgID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleMember, OrgID: 1}

	token, err := GenerateToken(user, testSecret)
	require.NoError(t, err)

	_, err = ParseToken(token, "another-secret")
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	claims := Claims{
		UserID: 1,
		Role:   models.RoleMember,
		OrgID:  1,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	require.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", testSecret)
	require.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	require.Equal(t, "abc", ExtractBearerToken("Bearer abc"))
	require.Equal(t, "abc", ExtractBearerToken("bearer abc"))
	require.Equal(t, "", ExtractBearerToken(""))
	require.Equal(t, "", ExtractBearerToken("abc"))
	require.Equal(t, "", ExtractBearerToken("Basic abc"))
}
