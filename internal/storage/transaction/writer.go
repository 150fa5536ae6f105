package transaction

import (
	"context"
	"database/sql"
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

// Insert creates a new transaction and returns the stored record. The id
// and creation timestamp are assigned here; the date is normalized to UTC.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	result, err := w.tx.ExecContext(ctx,
		"INSERT INTO transactions (user_id, amount, description, date, category, type, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		create.UserID, create.Amount, create.Description, create.Date.UTC(),
		create.Category, create.Type, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return w.FindByID(ctx, create.UserID, id)
}

// Update replaces the mutable fields of the user's transaction. The WHERE
// clause carries both id and user_id, so the ownership check and the
// mutation are a single atomic statement. Zero affected rows means absent
// or not owned, both ErrNotFound.
func (w *Writer) Update(ctx context.Context, userID, id int64, update *TransactionUpdate) (*Transaction, error) {
	result, err := w.tx.ExecContext(ctx,
		"UPDATE transactions SET amount = ?, description = ?, date = ?, category = ?, type = ? WHERE id = ? AND user_id = ?",
		update.Amount, update.Description, update.Date.UTC(), update.Category, update.Type,
		id, userID)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return w.FindByID(ctx, userID, id)
}

// Delete removes the user's transaction permanently. Same ownership
// semantics as Update.
func (w *Writer) Delete(ctx context.Context, userID, id int64) error {
	result, err := w.tx.ExecContext(ctx,
		"DELETE FROM transactions WHERE id = ? AND user_id = ?", id, userID)
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

// DeleteAllForUser removes every transaction owned by the user. Used by the
// delete-user action so the cascade is one atomic store operation.
func (w *Writer) DeleteAllForUser(ctx context.Context, userID int64) error {
	_, err := w.tx.ExecContext(ctx, "DELETE FROM transactions WHERE user_id = ?", userID)
	return err
}
