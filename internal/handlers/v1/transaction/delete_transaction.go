package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/middleware"
)

// DeleteInput is the Huma input for deleting a transaction.
type DeleteInput struct {
	ID int64 `path:"id" doc:"Transaction id"`
}

// DeleteOutput is intentionally empty; the endpoint responds 204.
type DeleteOutput struct{}

// transactionDeleter is the interface for the transaction delete service.
type transactionDeleter interface {
	Delete(ctx context.Context, userID, id int64) error
}

// DeleteHandler handles DELETE /transactions/{id}.
type DeleteHandler struct {
	Auth    *middleware.Authenticator
	Service transactionDeleter
}

// NewDeleteHandler creates a new DeleteHandler.
func NewDeleteHandler(authn *middleware.Authenticator, svc transactionDeleter) *DeleteHandler {
	return &DeleteHandler{Auth: authn, Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "transactions-delete",
		Method:        http.MethodDelete,
		Path:          "/transactions/{id}",
		Summary:       "Delete transaction",
		Description:   "Permanently removes one of the caller's transactions.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   huma.Middlewares{h.Auth.Require(api)},
	}, h.handle)
}

func (h *DeleteHandler) handle(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.Service.Delete(ctx, userID, input.ID); err != nil {
		return nil, serviceError(err, "DeleteTransaction", "An error occurred while deleting the transaction")
	}

	return &DeleteOutput{}, nil
}
