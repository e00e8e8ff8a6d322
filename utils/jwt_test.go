package utils

import (
	"testing"
	"time"

	"report2clean/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-42", models.AccountUser, time.Hour)
	require.NoError(t, err)

	sub, role, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)
	assert.Equal(t, models.AccountUser, role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-42", models.AccountUser, -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, _, err := ExtractIDFromToken("not.a.token")
	assert.Error(t, err)
}
