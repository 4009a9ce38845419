package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	authn, err := NewJWT("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := authn.IssueToken(42, "a@x.com")
	require.NoError(t, err)

	userID, err := authn.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(42), userID)
}

func TestJWTRejectsForeignToken(t *testing.T) {
	issuer, err := NewJWT("secret-one", time.Hour)
	require.NoError(t, err)
	verifier, err := NewJWT("secret-two", time.Hour)
	require.NoError(t, err)

	token, err := issuer.IssueToken(42, "a@x.com")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	require.Error(t, err)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	authn, err := NewJWT("test-secret", -time.Minute)
	require.NoError(t, err)

	token, err := authn.IssueToken(42, "a@x.com")
	require.NoError(t, err)

	_, err = authn.VerifyToken(token)
	require.Error(t, err)
}

func TestNewJWTRequiresSecret(t *testing.T) {
	_, err := NewJWT("", time.Hour)
	require.Error(t, err)
}
