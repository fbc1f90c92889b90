package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svce/hostel-management/internal/utils"
)

func TestNewAccessToken(t *testing.T) {
	const secret = "test-secret"
	access, err := utils.NewAccessToken(secret, "svce", "admin", 60)
	require.NoError(t, err)
	assert.NotEmpty(t, access.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), access.Exp, 5*time.Second)

	tok, err := jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "svce", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
}

func TestNewAccessTokenWrongSecretRejected(t *testing.T) {
	access, err := utils.NewAccessToken("secret-a", "svce", "admin", 60)
	require.NoError(t, err)

	_, err = jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	assert.Error(t, err)
}
