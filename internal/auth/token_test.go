package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)

	loginID := NewLoginID()
	token, err := issuer.Issue(42, loginID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, gotLoginID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
	assert.Equal(t, loginID, gotLoginID)
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", -time.Minute)
	require.NoError(t, err)

	token, err := issuer.Issue(42, NewLoginID())
	require.NoError(t, err)

	_, _, err = issuer.Verify(token)
	assert.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenIssuer("different", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue(42, NewLoginID())
	require.NoError(t, err)

	_, _, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)

	_, _, err = issuer.Verify("not-a-token")
	assert.Error(t, err)
}

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour)
	assert.Error(t, err)
}

func TestNewLoginIDUnique(t *testing.T) {
	assert.NotEqual(t, NewLoginID(), NewLoginID())
}
