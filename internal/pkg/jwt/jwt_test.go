package jwt

import (
	"strings"
	"testing"
	"time"

	"nexum-supply/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", time.Hour)

	token, err := issuer.Issue(42, "a@b.com", domain.RoleStandard)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, domain.RoleStandard, claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", -time.Minute)

	token, err := issuer.Issue(1, "a@b.com", domain.RoleStandard)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewIssuer("right-secret", time.Hour).Issue(1, "a@b.com", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = NewIssuer("wrong-secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", time.Hour)

	token, err := issuer.Issue(1, "a@b.com", domain.RoleManager)
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(token, ".")))

	// Flip the last character of the signature
	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	_, err = issuer.Verify(tampered)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", time.Hour)

	for _, token := range []string{"", "garbage", "not.a.jwt", "a.b"} {
		_, err := issuer.Verify(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid, "token %q", token)
	}
}
