package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	coreauth "github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/middleware"
	"github.com/carson-networks/finance-tracker/internal/service"
)

const testUserID int64 = 1

// newTestAuth returns an authenticator backed by a real token manager plus a
// ready-to-use Authorization header for testUserID.
func newTestAuth(t *testing.T) (*middleware.Authenticator, string) {
	t.Helper()

	tokens := coreauth.NewTokenManager("test-secret", "finance-tracker", "finance-tracker-ui")
	token, _, err := tokens.Issue(testUserID, "Ada", "ada@example.com", time.Now())
	require.NoError(t, err)
	return middleware.NewAuthenticator(tokens), "Authorization: Bearer " + token
}

func mustDecimal(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func serviceTransaction(id int64) *service.Transaction {
	return &service.Transaction{
		ID:          id,
		Amount:      mustDecimal("42.50"),
		Description: "Groceries",
		Date:        time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC),
		Category:    "Food & Dining",
		Type:        service.TransactionTypeExpense,
		CreatedAt:   time.Date(2026, 3, 15, 9, 31, 0, 0, time.UTC),
	}
}

func validTransactionBody() TransactionBody {
	return TransactionBody{
		Amount:      "42.50",
		Description: "Groceries",
		Date:        "2026-03-15T09:30:00Z",
		Category:    "Food & Dining",
		Type:        2,
	}
}

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) List(ctx context.Context, userID int64, params service.ListParams) ([]service.Transaction, int, error) {
	args := m.Called(ctx, userID, params)
	rows, _ := args.Get(0).([]service.Transaction)
	return rows, args.Int(1), args.Error(2)
}

func (m *mockTransactionService) Get(ctx context.Context, userID, id int64) (*service.Transaction, error) {
	args := m.Called(ctx, userID, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) Create(ctx context.Context, userID int64, input service.TransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, userID, input)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) Update(ctx context.Context, userID, id int64, input service.TransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, userID, id, input)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *mockTransactionService) Summarize(ctx context.Context, userID int64, month, year int) (*service.Summary, error) {
	args := m.Called(ctx, userID, month, year)
	summary, _ := args.Get(0).(*service.Summary)
	return summary, args.Error(1)
}

func (m *mockTransactionService) Categories(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	categories, _ := args.Get(0).([]string)
	return categories, args.Error(1)
}
