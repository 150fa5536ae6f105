package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteUser removes a user and all of their transactions in one database
// transaction, so the cascade is a single atomic store operation.
type DeleteUser struct {
	UserID int64
	IAction
}

func (a *DeleteUser) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Transaction.DeleteAllForUser(ctx, a.UserID); err != nil {
		return err
	}
	return writer.User.Delete(ctx, a.UserID)
}
