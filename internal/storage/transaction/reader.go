package transaction

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Executor is the subset of database/sql shared by *sql.DB and *sql.Tx.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var _ ITransactionTable = (*Table)(nil)

type Table struct {
	exec Executor
}

func NewTable(exec Executor) Table {
	return Table{exec: exec}
}

const transactionColumns = "id, user_id, amount, description, date, category, type, created_at"

// FindByID retrieves a transaction by id, scoped to the owning user.
func (t *Table) FindByID(ctx context.Context, userID, id int64) (*Transaction, error) {
	row := t.exec.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = ? AND user_id = ?",
		id, userID)

	var tx Transaction
	err := scanTransaction(row.Scan, &tx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// List returns the user's transactions matching the filter, ordered by
// transaction date descending.
func (t *Table) List(ctx context.Context, userID int64, filter *TransactionFilter) ([]*Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE user_id = ?"
	args := []any{userID}

	query, args = applyFilter(query, args, filter)
	query += " ORDER BY date DESC, id DESC"

	if filter != nil && filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := t.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// Count returns the number of the user's transactions matching the filter,
// ignoring pagination.
func (t *Table) Count(ctx context.Context, userID int64, filter *TransactionFilter) (int, error) {
	query := "SELECT COUNT(*) FROM transactions WHERE user_id = ?"
	args := []any{userID}

	query, args = applyFilter(query, args, filter)

	var count int
	if err := t.exec.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ListBetween returns the user's transactions with from <= date < to,
// ordered by date descending. Dates are stored normalized to UTC, so the
// bounds must be UTC as well.
func (t *Table) ListBetween(ctx context.Context, userID int64, from, to time.Time) ([]*Transaction, error) {
	rows, err := t.exec.QueryContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE user_id = ? AND date >= ? AND date < ? ORDER BY date DESC, id DESC",
		userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// DistinctCategories returns the user's historical category labels, sorted.
func (t *Table) DistinctCategories(ctx context.Context, userID int64) ([]string, error) {
	rows, err := t.exec.QueryContext(ctx,
		"SELECT DISTINCT category FROM transactions WHERE user_id = ? ORDER BY category",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func applyFilter(query string, args []any, filter *TransactionFilter) (string, []any) {
	if filter == nil {
		return query, args
	}
	if filter.Category != "" {
		query += " AND instr(lower(category), lower(?)) > 0"
		args = append(args, filter.Category)
	}
	if filter.Type != nil {
		query += " AND type = ?"
		args = append(args, *filter.Type)
	}
	return query, args
}

func scanTransaction(scan func(dest ...any) error, tx *Transaction) error {
	return scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Description, &tx.Date, &tx.Category, &tx.Type, &tx.CreatedAt)
}

func collectTransactions(rows *sql.Rows) ([]*Transaction, error) {
	var result []*Transaction
	for rows.Next() {
		var tx Transaction
		if err := scanTransaction(rows.Scan, &tx); err != nil {
			return nil, err
		}
		result = append(result, &tx)
	}
	return result, rows.Err()
}
