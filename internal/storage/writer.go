package storage

import (
	"database/sql"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

type Writer struct {
	tx          *sql.Tx
	User        *user.Writer
	Transaction *transaction.Writer
}

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx:          tx,
		User:        user.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}
