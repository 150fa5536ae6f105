package user

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

type Writer struct {
	tx *sql.Tx
	Table
}

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx:    tx,
		Table: Table{exec: tx},
	}
}

// Insert creates a new user and returns the stored record. A unique email
// violation maps to ErrEmailTaken.
func (w *Writer) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	result, err := w.tx.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, created_at) VALUES (?, ?, ?, ?)",
		create.Name, create.Email, create.PasswordHash, time.Now().UTC())
	if err != nil {
		if isUniqueEmailViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return w.FindByID(ctx, id)
}

// Delete removes a user row. The transactions cascade is handled explicitly
// by the delete-user action, not left to the schema.
func (w *Writer) Delete(ctx context.Context, id int64) error {
	result, err := w.tx.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueEmailViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed: users.email")
}
