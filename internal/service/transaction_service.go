package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// defaultCategories is always unioned with the user's historical categories.
var defaultCategories = []string{
	"Food & Dining", "Transportation", "Shopping", "Entertainment",
	"Bills & Utilities", "Education", "Travel",
	"Coffee", "Restaurants", "Utilities",
	"Salary", "Business", "Investments", "Other",
}

// TransactionService handles transaction business logic. Every operation
// takes the authenticated user id explicitly; nothing is read from ambient
// state.
type TransactionService struct {
	storage  *storage.Storage
	operator *operator.OperatorDelegator
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, op *operator.OperatorDelegator) *TransactionService {
	return &TransactionService{storage: store, operator: op}
}

// List returns one page of the user's transactions, newest date first, plus
// the total match count ignoring pagination.
func (s *TransactionService) List(ctx context.Context, userID int64, params ListParams) ([]Transaction, int, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := &transaction.TransactionFilter{
		Category: params.Category,
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	}
	if params.Type != nil {
		storageType := transactionTypeToStorage(*params.Type)
		filter.Type = &storageType
	}

	total, err := s.storage.Transactions.Count(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.storage.Transactions.List(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
	}
	return converted, total, nil
}

// Get retrieves one of the user's transactions by id.
func (s *TransactionService) Get(ctx context.Context, userID, id int64) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, userID, id)
	if err != nil {
		return nil, mapStorageError(err)
	}
	converted := transactionFromStorage(row)
	return &converted, nil
}

// Create validates the input and stores a new transaction for the user.
func (s *TransactionService) Create(ctx context.Context, userID int64, input TransactionInput) (*Transaction, error) {
	if errs := validateTransactionInput(input); len(errs) > 0 {
		return nil, errs
	}

	action := &actions.CreateTransaction{
		UserID:      userID,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
		Category:    input.Category,
		Type:        transactionTypeToStorage(input.Type),
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	converted := transactionFromStorage(action.Created)
	return &converted, nil
}

// Update validates the input and replaces the mutable fields of the user's
// transaction. Absent or not-owned ids fail with ErrNotFound.
func (s *TransactionService) Update(ctx context.Context, userID, id int64, input TransactionInput) (*Transaction, error) {
	if errs := validateTransactionInput(input); len(errs) > 0 {
		return nil, errs
	}

	action := &actions.UpdateTransaction{
		UserID:      userID,
		ID:          id,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
		Category:    input.Category,
		Type:        transactionTypeToStorage(input.Type),
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, mapStorageError(err)
	}

	converted := transactionFromStorage(action.Updated)
	return &converted, nil
}

// Delete permanently removes the user's transaction. Absent or not-owned
// ids fail with ErrNotFound.
func (s *TransactionService) Delete(ctx context.Context, userID, id int64) error {
	err := s.operator.Process(ctx, &actions.DeleteTransaction{UserID: userID, ID: id})
	if err != nil {
		return mapStorageError(err)
	}
	return nil
}

// Summarize aggregates the user's transactions for the given calendar month,
// computed in server-local time. Sums use exact decimal arithmetic.
func (s *TransactionService) Summarize(ctx context.Context, userID int64, month, year int) (*Summary, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, 0)

	rows, err := s.storage.Transactions.ListBetween(ctx, userID, monthStart.UTC(), monthEnd.UTC())
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TransactionCount:  len(rows),
		CategoryBreakdown: []CategoryAmount{},
		Month:             month,
		Year:              year,
	}

	expenseByCategory := make(map[string]decimal.Decimal)
	var categoryOrder []string

	for _, row := range rows {
		switch row.Type {
		case transaction.TypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(row.Amount)
		case transaction.TypeExpense:
			summary.TotalExpenses = summary.TotalExpenses.Add(row.Amount)
			if _, seen := expenseByCategory[row.Category]; !seen {
				categoryOrder = append(categoryOrder, row.Category)
			}
			expenseByCategory[row.Category] = expenseByCategory[row.Category].Add(row.Amount)
		}
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpenses)

	for _, category := range categoryOrder {
		summary.CategoryBreakdown = append(summary.CategoryBreakdown, CategoryAmount{
			Category: category,
			Amount:   expenseByCategory[category],
		})
	}
	// Descending by amount; stable so ties keep first-seen order.
	sort.SliceStable(summary.CategoryBreakdown, func(i, j int) bool {
		return summary.CategoryBreakdown[i].Amount.GreaterThan(summary.CategoryBreakdown[j].Amount)
	})

	return summary, nil
}

// Categories returns the sorted union of the fixed default categories and
// the user's historical ones, without duplicates.
func (s *TransactionService) Categories(ctx context.Context, userID int64) ([]string, error) {
	userCategories, err := s.storage.Transactions.DistinctCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(defaultCategories)+len(userCategories))
	union := make([]string, 0, len(defaultCategories)+len(userCategories))
	for _, category := range defaultCategories {
		if _, ok := seen[category]; !ok {
			seen[category] = struct{}{}
			union = append(union, category)
		}
	}
	for _, category := range userCategories {
		if _, ok := seen[category]; !ok {
			seen[category] = struct{}{}
			union = append(union, category)
		}
	}

	sort.Strings(union)
	return union, nil
}

func validateTransactionInput(input TransactionInput) ValidationErrors {
	var errs ValidationErrors

	if !input.Amount.IsPositive() {
		errs = append(errs, ValidationError{Field: "amount", Message: "must be greater than 0"})
	} else if input.Amount.Exponent() < -2 {
		errs = append(errs, ValidationError{Field: "amount", Message: "must have at most two decimal places"})
	}
	if strings.TrimSpace(input.Description) == "" {
		errs = append(errs, ValidationError{Field: "description", Message: "is required"})
	} else if len(input.Description) > 200 {
		errs = append(errs, ValidationError{Field: "description", Message: "must be at most 200 characters"})
	}
	if input.Date.IsZero() {
		errs = append(errs, ValidationError{Field: "date", Message: "is required"})
	}
	if strings.TrimSpace(input.Category) == "" {
		errs = append(errs, ValidationError{Field: "category", Message: "is required"})
	} else if len(input.Category) > 50 {
		errs = append(errs, ValidationError{Field: "category", Message: "must be at most 50 characters"})
	}
	if !input.Type.Valid() {
		errs = append(errs, ValidationError{Field: "type", Message: "must be 1 (income) or 2 (expense)"})
	}

	return errs
}

func mapStorageError(err error) error {
	if errors.Is(err, transaction.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
