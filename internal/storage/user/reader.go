package user

import (
	"context"
	"database/sql"
	"errors"
)

// Executor is the subset of database/sql shared by *sql.DB and *sql.Tx.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var _ IUserTable = (*Table)(nil)

type Table struct {
	exec Executor
}

func NewTable(exec Executor) Table {
	return Table{exec: exec}
}

const userColumns = "id, name, email, password_hash, created_at"

// FindByID retrieves a user by primary key.
func (t *Table) FindByID(ctx context.Context, id int64) (*User, error) {
	row := t.exec.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return scanUser(row)
}

// FindByEmail retrieves a user by exact, case-sensitive email match.
func (t *Table) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := t.exec.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = ?", email)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
