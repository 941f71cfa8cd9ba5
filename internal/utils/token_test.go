package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMintSessionToken_RoundTrip(t *testing.T) {
	token, err := MintSessionToken(42, "mukesh", "test-secret", time.Hour)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseSessionToken(token, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "mukesh", claims.Username)
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	token, err := MintSessionToken(42, "mukesh", "test-secret", time.Hour)
	assert.NoError(t, err)

	claims, err := ParseSessionToken(token, "other-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseSessionToken_Expired(t *testing.T) {
	token, err := MintSessionToken(42, "mukesh", "test-secret", -time.Minute)
	assert.NoError(t, err)

	claims, err := ParseSessionToken(token, "test-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseSessionToken_Garbage(t *testing.T) {
	claims, err := ParseSessionToken("not-a-token", "test-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
