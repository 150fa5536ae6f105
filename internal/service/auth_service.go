package service

import (
	"context"
	"errors"
	"time"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// AuthResult is what both registration and login hand back to the API layer.
type AuthResult struct {
	Token     string
	Name      string
	Email     string
	ExpiresAt time.Time
}

// AuthService handles registration, login, and account removal.
type AuthService struct {
	storage    *storage.Storage
	operator   *operator.OperatorDelegator
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *storage.Storage, op *operator.OperatorDelegator, tokens *auth.TokenManager, bcryptCost int) *AuthService {
	return &AuthService{
		storage:    store,
		operator:   op,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register stores a new user with a salted password hash and issues a
// token. The plaintext password is never stored. A duplicate email returns
// ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	action := &actions.RegisterUser{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return s.issueFor(action.Created)
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password return the identical ErrInvalidCredentials; the unknown-email
// path still performs a bcrypt comparison so the two cannot be told apart
// by timing.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.storage.Users.FindByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		auth.CheckPasswordDummy(password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueFor(u)
}

// DeleteAccount removes the user and, in the same database transaction,
// every transaction they own.
func (s *AuthService) DeleteAccount(ctx context.Context, userID int64) error {
	err := s.operator.Process(ctx, &actions.DeleteUser{UserID: userID})
	if errors.Is(err, user.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *AuthService) issueFor(u *user.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(u.ID, u.Name, u.Email, time.Now())
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token:     token,
		Name:      u.Name,
		Email:     u.Email,
		ExpiresAt: expiresAt,
	}, nil
}
