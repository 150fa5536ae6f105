package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager("test-secret", "finance-tracker", "finance-tracker-ui")
}

func TestTokenManager_IssueAndValidate(t *testing.T) {
	manager := newTestTokenManager()
	now := time.Now()

	token, expiresAt, err := manager.Issue(42, "Ada", "ada@example.com", now)
	assert.NoError(t, err)
	assert.WithinDuration(t, now.Add(TokenLifetime), expiresAt, time.Second)

	claims, err := manager.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "ada@example.com", claims.Email)

	userID, err := claims.UserID()
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenManager_TamperedTokenRejected(t *testing.T) {
	manager := newTestTokenManager()

	token, _, err := manager.Issue(42, "Ada", "ada@example.com", time.Now())
	assert.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = manager.Validate(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecretRejected(t *testing.T) {
	token, _, err := newTestTokenManager().Issue(42, "Ada", "ada@example.com", time.Now())
	assert.NoError(t, err)

	other := NewTokenManager("different-secret", "finance-tracker", "finance-tracker-ui")
	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_ExpiredTokenRejected(t *testing.T) {
	manager := newTestTokenManager()

	// Issued eight days ago, one day past the seven-day lifetime.
	issuedAt := time.Now().Add(-8 * 24 * time.Hour)
	token, _, err := manager.Issue(42, "Ada", "ada@example.com", issuedAt)
	assert.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongIssuerRejected(t *testing.T) {
	issuer := NewTokenManager("test-secret", "someone-else", "finance-tracker-ui")
	token, _, err := issuer.Issue(42, "Ada", "ada@example.com", time.Now())
	assert.NoError(t, err)

	_, err = newTestTokenManager().Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongAudienceRejected(t *testing.T) {
	issuer := NewTokenManager("test-secret", "finance-tracker", "another-app")
	token, _, err := issuer.Issue(42, "Ada", "ada@example.com", time.Now())
	assert.NoError(t, err)

	_, err = newTestTokenManager().Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaims_UserIDNonNumericSubject(t *testing.T) {
	claims := &Claims{}
	claims.Subject = "not-a-number"

	_, err := claims.UserID()
	assert.ErrorIs(t, err, ErrInvalidToken)
}
