package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteTransaction removes a transaction owned by UserID. A mismatched
// owner surfaces as transaction.ErrNotFound.
type DeleteTransaction struct {
	UserID int64
	ID     int64
	IAction
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transaction.Delete(ctx, a.UserID, a.ID)
}
