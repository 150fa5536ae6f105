package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) FindByID(ctx context.Context, userID, id int64) (*transaction.Transaction, error) {
	args := m.Called(ctx, userID, id)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) List(ctx context.Context, userID int64, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	rows, _ := args.Get(0).([]*transaction.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionTable) Count(ctx context.Context, userID int64, filter *transaction.TransactionFilter) (int, error) {
	args := m.Called(ctx, userID, filter)
	return args.Int(0), args.Error(1)
}

func (m *mockTransactionTable) ListBetween(ctx context.Context, userID int64, from, to time.Time) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, userID, from, to)
	rows, _ := args.Get(0).([]*transaction.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionTable) DistinctCategories(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	categories, _ := args.Get(0).([]string)
	return categories, args.Error(1)
}

func newMockedTransactionService(table *mockTransactionTable) *TransactionService {
	return NewTransactionService(&storage.Storage{Transactions: table}, nil)
}

func expenseRow(id int64, amount, category string, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		ID:          id,
		UserID:      1,
		Amount:      decimal.RequireFromString(amount),
		Description: "Entry",
		Date:        date,
		Category:    category,
		Type:        transaction.TypeExpense,
	}
}

func incomeRow(id int64, amount, category string, date time.Time) *transaction.Transaction {
	row := expenseRow(id, amount, category, date)
	row.Type = transaction.TypeIncome
	return row
}

func TestList_DefaultsAndOffset(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newMockedTransactionService(table)

	table.On("Count", mock.Anything, int64(1), mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Limit == 50 && f.Offset == 0
	})).Return(1, nil)
	table.On("List", mock.Anything, int64(1), mock.Anything).
		Return([]*transaction.Transaction{expenseRow(7, "10.00", "Coffee", time.Now())}, nil)

	rows, total, err := svc.List(context.Background(), 1, ListParams{})
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(7), rows[0].ID)
	table.AssertExpectations(t)
}

func TestList_PageMath(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newMockedTransactionService(table)

	table.On("Count", mock.Anything, int64(1), mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Limit == 10 && f.Offset == 20
	})).Return(35, nil)
	table.On("List", mock.Anything, int64(1), mock.Anything).
		Return([]*transaction.Transaction(nil), nil)

	_, total, err := svc.List(context.Background(), 1, ListParams{Page: 3, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, 35, total)
	table.AssertExpectations(t)
}

func TestList_PageSizeCapped(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newMockedTransactionService(table)

	table.On("Count", mock.Anything, int64(1), mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Limit == 200
	})).Return(0, nil)
	table.On("List", mock.Anything, int64(1), mock.Anything).
		Return([]*transaction.Transaction(nil), nil)

	_, _, err := svc.List(context.Background(), 1, ListParams{PageSize: 10000})
	assert.NoError(t, err)
	table.AssertExpectations(t)
}

func TestList_TypeFilterPassedThrough(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newMockedTransactionService(table)

	table.On("Count", mock.Anything, int64(1), mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Type != nil && *f.Type == transaction.TypeIncome && f.Category == "sal"
	})).Return(0, nil)
	table.On("List", mock.Anything, int64(1), mock.Anything).
		Return([]*transaction.Transaction(nil), nil)

	filterType := TransactionTypeIncome
	_, _, err := svc.List(context.Background(), 1, ListParams{Category: "sal", Type: &filterType})
	assert.NoError(t, err)
	table.AssertExpectations(t)
}

func TestGet_NotFound(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newMockedTransactionService(table)

	table.On("FindByID", mock.Anything, int64(1), int64(99)).
		Return((*transaction.Transaction)(nil), transaction.ErrNotFound)

	_, err := svc.Get(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSummarize_SplitsIncomeAndExpenses(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newMockedTransactionService(table)

	during := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	table.On("ListBetween", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return([]*transaction.Transaction{
			incomeRow(1, "1000.00", "Salary", during),
			expenseRow(2, "200.00", "Food & Dining", during),
			expenseRow(3, "50.00", "Food & Dining", during),
			expenseRow(4, "100.00", "Travel", during),
		}, nil)

	summary, err := svc.Summarize(context.Background(), 1, 6, 2026)
	require.NoError(t, err)

	assert.Equal(t, "1000.00", summary.TotalIncome.StringFixed(2))
	assert.Equal(t, "350.00", summary.TotalExpenses.StringFixed(2))
	assert.Equal(t, "650.00", summary.Balance.StringFixed(2))
	assert.Equal(t, 4, summary.TransactionCount)
	assert.Equal(t, 6, summary.Month)
	assert.Equal(t, 2026, summary.Year)

	// Expense-only breakdown, largest category first.
	require.Len(t, summary.CategoryBreakdown, 2)
	assert.Equal(t, "Food & Dining", summary.CategoryBreakdown[0].Category)
	assert.Equal(t, "250.00", summary.CategoryBreakdown[0].Amount.StringFixed(2))
	assert.Equal(t, "Travel", summary.CategoryBreakdown[1].Category)
	assert.Equal(t, "100.00", summary.CategoryBreakdown[1].Amount.StringFixed(2))
}

func TestSummarize_EmptyMonth(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newMockedTransactionService(table)

	table.On("ListBetween", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return([]*transaction.Transaction(nil), nil)

	summary, err := svc.Summarize(context.Background(), 1, 2, 2026)
	require.NoError(t, err)

	assert.Equal(t, "0.00", summary.TotalIncome.StringFixed(2))
	assert.Equal(t, "0.00", summary.TotalExpenses.StringFixed(2))
	assert.Equal(t, "0.00", summary.Balance.StringFixed(2))
	assert.Equal(t, 0, summary.TransactionCount)
	assert.NotNil(t, summary.CategoryBreakdown)
	assert.Empty(t, summary.CategoryBreakdown)
}

func TestSummarize_MonthWindow(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newMockedTransactionService(table)

	monthStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)
	table.On("ListBetween", mock.Anything, int64(1),
		monthStart.UTC(), monthStart.AddDate(0, 1, 0).UTC()).
		Return([]*transaction.Transaction(nil), nil)

	_, err := svc.Summarize(context.Background(), 1, 6, 2026)
	assert.NoError(t, err)
	table.AssertExpectations(t)
}

func TestCategories_UnionSortedDeduplicated(t *testing.T) {
	table := new(mockTransactionTable)
	svc := newMockedTransactionService(table)

	table.On("DistinctCategories", mock.Anything, int64(1)).
		Return([]string{"Vinyl Records", "Coffee"}, nil)

	categories, err := svc.Categories(context.Background(), 1)
	require.NoError(t, err)

	// All 14 defaults plus the one non-default user category.
	assert.Len(t, categories, 15)
	assert.Contains(t, categories, "Vinyl Records")

	counts := make(map[string]int)
	for _, category := range categories {
		counts[category]++
	}
	assert.Equal(t, 1, counts["Coffee"])

	for i := 1; i < len(categories); i++ {
		assert.LessOrEqual(t, categories[i-1], categories[i])
	}
}

func TestCreate_ValidationRejectsBeforeWrite(t *testing.T) {
	// A nil operator proves validation fails fast: reaching the write path
	// would panic.
	svc := newMockedTransactionService(new(mockTransactionTable))

	cases := []struct {
		name  string
		input TransactionInput
		field string
	}{
		{
			name: "zero amount",
			input: TransactionInput{
				Amount: decimal.Zero, Description: "x", Date: time.Now(),
				Category: "Other", Type: TransactionTypeExpense,
			},
			field: "amount",
		},
		{
			name: "negative amount",
			input: TransactionInput{
				Amount: decimal.RequireFromString("-5.00"), Description: "x",
				Date: time.Now(), Category: "Other", Type: TransactionTypeExpense,
			},
			field: "amount",
		},
		{
			name: "too many decimal places",
			input: TransactionInput{
				Amount: decimal.RequireFromString("1.005"), Description: "x",
				Date: time.Now(), Category: "Other", Type: TransactionTypeExpense,
			},
			field: "amount",
		},
		{
			name: "blank description",
			input: TransactionInput{
				Amount: decimal.RequireFromString("1.00"), Description: "   ",
				Date: time.Now(), Category: "Other", Type: TransactionTypeExpense,
			},
			field: "description",
		},
		{
			name: "missing date",
			input: TransactionInput{
				Amount: decimal.RequireFromString("1.00"), Description: "x",
				Category: "Other", Type: TransactionTypeExpense,
			},
			field: "date",
		},
		{
			name: "missing category",
			input: TransactionInput{
				Amount: decimal.RequireFromString("1.00"), Description: "x",
				Date: time.Now(), Type: TransactionTypeExpense,
			},
			field: "category",
		},
		{
			name: "bad type",
			input: TransactionInput{
				Amount: decimal.RequireFromString("1.00"), Description: "x",
				Date: time.Now(), Category: "Other", Type: 7,
			},
			field: "type",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, tc.input)
			require.Error(t, err)

			verrs, ok := AsValidationErrors(err)
			require.True(t, ok)

			found := false
			for _, ve := range verrs {
				if ve.Field == tc.field {
					found = true
				}
			}
			assert.True(t, found, "expected a %q validation error, got %v", tc.field, verrs)
		})
	}
}

func TestCreateUpdateDelete_WritePath(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	result, err := svc.Auth.Register(ctx, "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)
	owner, err := store.Users.FindByEmail(ctx, result.Email)
	require.NoError(t, err)

	created, err := svc.Transaction.Create(ctx, owner.ID, TransactionInput{
		Amount:      decimal.RequireFromString("19.99"),
		Description: "Headphones",
		Date:        time.Date(2026, 5, 3, 14, 0, 0, 0, time.UTC),
		Category:    "Shopping",
		Type:        TransactionTypeExpense,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	updated, err := svc.Transaction.Update(ctx, owner.ID, created.ID, TransactionInput{
		Amount:      decimal.RequireFromString("24.99"),
		Description: "Better headphones",
		Date:        time.Date(2026, 5, 4, 14, 0, 0, 0, time.UTC),
		Category:    "Shopping",
		Type:        TransactionTypeExpense,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Better headphones", updated.Description)

	_, err = svc.Transaction.Update(ctx, owner.ID, 9999, TransactionInput{
		Amount:      decimal.RequireFromString("1.00"),
		Description: "x",
		Date:        time.Now(),
		Category:    "Other",
		Type:        TransactionTypeExpense,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Transaction.Delete(ctx, owner.ID, created.ID))
	assert.ErrorIs(t, svc.Transaction.Delete(ctx, owner.ID, created.ID), ErrNotFound)
}
