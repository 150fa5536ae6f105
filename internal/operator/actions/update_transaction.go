package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// UpdateTransaction replaces the mutable fields of a transaction owned by
// UserID. A mismatched owner surfaces as transaction.ErrNotFound.
type UpdateTransaction struct {
	UserID      int64
	ID          int64
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    string
	Type        transaction.TransactionType

	// Updated holds the stored transaction after a successful Perform.
	Updated *transaction.Transaction
	IAction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	updated, err := writer.Transaction.Update(ctx, a.UserID, a.ID, &transaction.TransactionUpdate{
		Amount:      a.Amount,
		Description: a.Description,
		Date:        a.Date,
		Category:    a.Category,
		Type:        a.Type,
	})
	if err != nil {
		return err
	}

	a.Updated = updated
	return nil
}
