package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svce/hostel-management/internal/utils"
)

func TestHashPasswordFormat(t *testing.T) {
	hash, err := utils.HashPassword("1234")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 3)
	assert.Equal(t, "sha256", parts[0])
	assert.Len(t, parts[1], 16) // 8 random bytes, hex encoded
	assert.Len(t, parts[2], 64) // sha256 digest, hex encoded
}

func TestVerifyPassword(t *testing.T) {
	hash, err := utils.HashPassword("1234")
	require.NoError(t, err)

	assert.True(t, utils.VerifyPassword(hash, "1234"))
	assert.False(t, utils.VerifyPassword(hash, "12345"))
	assert.False(t, utils.VerifyPassword("not-a-hash", "1234"))
	assert.False(t, utils.VerifyPassword("md5$abcd$ef01", "1234"))
	assert.False(t, utils.VerifyPassword("", "1234"))
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	a, err := utils.HashPassword("1234")
	require.NoError(t, err)
	b, err := utils.HashPassword("1234")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRandomHex(t *testing.T) {
	a, err := utils.RandomHex(16)
	require.NoError(t, err)
	assert.Len(t, a, 32)

	b, err := utils.RandomHex(16)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
