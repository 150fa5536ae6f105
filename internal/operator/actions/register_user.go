package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// RegisterUser inserts a new user row. The unique email constraint decides
// duplicates; Perform surfaces user.ErrEmailTaken when it fires.
type RegisterUser struct {
	Name         string
	Email        string
	PasswordHash string

	// Created holds the stored user after a successful Perform.
	Created *user.User
	IAction
}

func (a *RegisterUser) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.User.Insert(ctx, &user.UserCreate{
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
	})
	if err != nil {
		return err
	}

	a.Created = created
	return nil
}
