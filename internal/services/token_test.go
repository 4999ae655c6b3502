package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	InitTokens("unit-test-secret", 30)

	token, err := CreateAccessToken("alice@example.edu")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.edu", email)
}

func TestTokenUniquePerIssue(t *testing.T) {
	InitTokens("unit-test-secret", 30)

	a, err := CreateAccessToken("alice@example.edu")
	require.NoError(t, err)
	b, err := CreateAccessToken("alice@example.edu")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestTamperedTokenRejected(t *testing.T) {
	InitTokens("unit-test-secret", 30)

	token, err := CreateAccessToken("alice@example.edu")
	require.NoError(t, err)

	_, err = ParseAccessToken(token + "x")
	assert.Error(t, err)

	_, err = ParseAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	InitTokens("unit-test-secret", 0)

	token, err := CreateAccessToken("alice@example.edu")
	require.NoError(t, err)

	time.Sleep(time.Second)
	_, err = ParseAccessToken(token)
	assert.Error(t, err)

	InitTokens("unit-test-secret", 30)
}

func TestWrongSecretRejected(t *testing.T) {
	InitTokens("first-secret", 30)
	token, err := CreateAccessToken("alice@example.edu")
	require.NoError(t, err)

	InitTokens("second-secret", 30)
	_, err = ParseAccessToken(token)
	assert.Error(t, err)
}
