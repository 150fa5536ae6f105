package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// TransactionType represents a transaction type in the service layer.
// Values match the stored and wire representation.
type TransactionType int8

const (
	TransactionTypeIncome  TransactionType = 1
	TransactionTypeExpense TransactionType = 2
)

// Valid reports whether t is one of the two enumerated values.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          int64
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    string
	Type        TransactionType
	CreatedAt   time.Time
}

// TransactionInput carries the mutable fields for create and update.
type TransactionInput struct {
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    string
	Type        TransactionType
}

// ListParams selects a page of transactions. Page is 1-indexed; Category is
// a case-insensitive substring filter; Type filters exactly when set.
type ListParams struct {
	Page     int
	PageSize int
	Category string
	Type     *TransactionType
}

// CategoryAmount is one slice of the expense breakdown.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// Summary aggregates one calendar month of a user's transactions.
type Summary struct {
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	Balance           decimal.Decimal
	TransactionCount  int
	CategoryBreakdown []CategoryAmount
	Month             int
	Year              int
}

func transactionTypeToStorage(t TransactionType) transaction.TransactionType {
	return transaction.TransactionType(t)
}

func transactionTypeFromStorage(t transaction.TransactionType) TransactionType {
	return TransactionType(t)
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Amount:      row.Amount,
		Description: row.Description,
		Date:        row.Date,
		Category:    row.Category,
		Type:        transactionTypeFromStorage(row.Type),
		CreatedAt:   row.CreatedAt,
	}
}
