package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no transaction matches the id for the given
// owner. Rows owned by a different user are deliberately indistinguishable
// from absent rows.
var ErrNotFound = errors.New("transaction not found")

// TransactionType enumerates the two kinds of transaction. The numeric
// values are part of the stored and wire format.
type TransactionType int8

const (
	TypeIncome  TransactionType = 1
	TypeExpense TransactionType = 2
)

// Valid reports whether t is one of the two enumerated values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a transaction record.
type Transaction struct {
	ID          int64
	UserID      int64
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    string
	Type        TransactionType
	CreatedAt   time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID      int64
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    string
	Type        TransactionType
}

// TransactionUpdate replaces all mutable fields of a transaction.
type TransactionUpdate struct {
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    string
	Type        TransactionType
}

// TransactionFilter specifies filters for listing transactions. Category is
// a case-insensitive substring match; Type is an exact match when set.
type TransactionFilter struct {
	Category string
	Type     *TransactionType
	Limit    int
	Offset   int
}

// ITransactionTable defines the interface for transaction storage reads.
// Every operation is scoped to the owning user id.
type ITransactionTable interface {
	FindByID(ctx context.Context, userID, id int64) (*Transaction, error)
	List(ctx context.Context, userID int64, filter *TransactionFilter) ([]*Transaction, error)
	Count(ctx context.Context, userID int64, filter *TransactionFilter) (int, error)
	ListBetween(ctx context.Context, userID int64, from, to time.Time) ([]*Transaction, error)
	DistinctCategories(ctx context.Context, userID int64) ([]string, error)
}
