package token_test

import (
	"testing"

	"hirehub/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	m := token.NewManager("test-secret")

	signed, err := m.IssueSession("user-1", "dev@example.com", "jobseeker")
	require.NoError(t, err)

	claims, err := m.ParseSession(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "dev@example.com", claims.Email)
	assert.Equal(t, "jobseeker", claims.Role)
}

func TestWrongSecretRejected(t *testing.T) {
	signed, err := token.NewManager("secret-a").IssueSession("user-1", "a@b.c", "recruiter")
	require.NoError(t, err)

	_, err = token.NewManager("secret-b").ParseSession(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestResetTokenIsNotASession(t *testing.T) {
	m := token.NewManager("test-secret")

	reset, err := m.IssueReset("user-1", "a@b.c")
	require.NoError(t, err)

	_, err = m.ParseSession(reset)
	assert.ErrorIs(t, err, token.ErrInvalidToken)

	claims, err := m.ParseReset(reset)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestSessionTokenIsNotAReset(t *testing.T) {
	m := token.NewManager("test-secret")

	session, err := m.IssueSession("user-1", "a@b.c", "jobseeker")
	require.NoError(t, err)

	_, err = m.ParseReset(session)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestGarbageRejected(t *testing.T) {
	_, err := token.NewManager("test-secret").ParseSession("not.a.token")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
