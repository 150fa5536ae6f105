package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type CreateTransaction struct {
	UserID      int64
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    string
	Type        transaction.TransactionType

	// Created holds the stored transaction after a successful Perform.
	Created *transaction.Transaction
	IAction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		Amount:      a.Amount,
		Description: a.Description,
		Date:        a.Date,
		Category:    a.Category,
		Type:        a.Type,
	})
	if err != nil {
		return err
	}

	a.Created = created
	return nil
}
