package utils_test

import (
	"testing"
	"time"

	"github.com/hqasem/small-biz-erp/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateSessionToken(42, "jdoe", testSecret, time.Hour, "erp-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseSessionToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "erp-test", claims.Issuer)

	userID, err := utils.UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	token, err := utils.GenerateSessionToken(42, "jdoe", testSecret, time.Hour, "erp-test")
	require.NoError(t, err)

	_, err = utils.ParseSessionToken(token, "a-different-secret")
	assert.Error(t, err)
}

func TestParseSessionTokenExpired(t *testing.T) {
	token, err := utils.GenerateSessionToken(42, "jdoe", testSecret, -time.Second, "erp-test")
	require.NoError(t, err)

	_, err = utils.ParseSessionToken(token, testSecret)
	assert.Error(t, err)
}

func TestParseSessionTokenGarbage(t *testing.T) {
	_, err := utils.ParseSessionToken("garbage.token.value", testSecret)
	assert.Error(t, err)
}
