package auth

import (
	"testing"

	domainerrors "jobfinder/internal/domain/errors"
	"jobfinder/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return signed
}

func TestClaimsDecoder_DecodeAccountID_AccountIDClaim(t *testing.T) {
	decoder := NewClaimsDecoder()

	token := signToken(t, jwt.MapClaims{"accountId": "acc-1", "sub": "someone-else"})

	id, err := decoder.DecodeAccountID(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", id)
}

func TestClaimsDecoder_DecodeAccountID_SubjectFallback(t *testing.T) {
	decoder := NewClaimsDecoder()

	token := signToken(t, jwt.MapClaims{"sub": "u123"})

	id, err := decoder.DecodeAccountID(token)
	require.NoError(t, err)
	assert.Equal(t, "u123", id)
}

func TestClaimsDecoder_DecodeAccountID_NoIdentityClaim(t *testing.T) {
	decoder := NewClaimsDecoder()

	token := signToken(t, jwt.MapClaims{"role": "candidate"})

	_, err := decoder.DecodeAccountID(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenDecodeFailed))
}

func TestClaimsDecoder_DecodeAccountID_Malformed(t *testing.T) {
	decoder := NewClaimsDecoder()

	for _, token := range []string{"", "not-a-jwt", "a.b"} {
		_, err := decoder.DecodeAccountID(token)
		require.Error(t, err, token)
		assert.True(t, errors.Is(err, domainerrors.ErrTokenDecodeFailed), token)
	}
}

func TestClaimsDecoder_DecodeAccountID_IgnoresSignature(t *testing.T) {
	decoder := NewClaimsDecoder()

	// The client holds no signing key, so a token signed with an unknown
	// secret still yields its claims.
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"accountId": "acc-2"}).
		SignedString([]byte("unknown-secret"))
	require.NoError(t, err)

	id, err := decoder.DecodeAccountID(signed)
	require.NoError(t, err)
	assert.Equal(t, "acc-2", id)
}
