package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/middleware"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateInput is the Huma input for updating a transaction.
type UpdateInput struct {
	ID   int64 `path:"id" doc:"Transaction id"`
	Body TransactionBody
}

// UpdateOutput is the Huma output for updating a transaction.
type UpdateOutput struct {
	Body Transaction
}

// transactionUpdater is the interface for the transaction update service.
type transactionUpdater interface {
	Update(ctx context.Context, userID, id int64, input service.TransactionInput) (*service.Transaction, error)
}

// UpdateHandler handles PUT /transactions/{id}.
type UpdateHandler struct {
	Auth    *middleware.Authenticator
	Service transactionUpdater
}

// NewUpdateHandler creates a new UpdateHandler.
func NewUpdateHandler(authn *middleware.Authenticator, svc transactionUpdater) *UpdateHandler {
	return &UpdateHandler{Auth: authn, Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transactions-update",
		Method:      http.MethodPut,
		Path:        "/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Replaces the mutable fields of one of the caller's transactions.",
		Tags:        []string{"Transactions"},
		Middlewares: huma.Middlewares{h.Auth.Require(api)},
	}, h.handle)
}

func (h *UpdateHandler) handle(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	parsed, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	updated, err := h.Service.Update(ctx, userID, input.ID, parsed)
	if err != nil {
		return nil, serviceError(err, "UpdateTransaction", "An error occurred while updating the transaction")
	}

	return &UpdateOutput{Body: transactionFromService(updated)}, nil
}
