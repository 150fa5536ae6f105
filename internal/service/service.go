package service

import (
	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Auth        *AuthService
	Transaction *TransactionService
}

// NewService creates a new Service with the given storage, write operator,
// and token manager.
func NewService(store *storage.Storage, op *operator.OperatorDelegator, tokens *auth.TokenManager, bcryptCost int) *Service {
	return &Service{
		Auth:        NewAuthService(store, op, tokens, bcryptCost),
		Transaction: NewTransactionService(store, op),
	}
}
