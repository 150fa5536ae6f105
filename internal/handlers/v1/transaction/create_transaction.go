package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/middleware"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateInput is the Huma input for creating a transaction.
type CreateInput struct {
	Body TransactionBody
}

// CreateOutput is the Huma output for creating a transaction.
type CreateOutput struct {
	Body Transaction
}

// transactionCreator is the interface for the transaction create service.
type transactionCreator interface {
	Create(ctx context.Context, userID int64, input service.TransactionInput) (*service.Transaction, error)
}

// CreateHandler handles POST /transactions.
type CreateHandler struct {
	Auth    *middleware.Authenticator
	Service transactionCreator
}

// NewCreateHandler creates a new CreateHandler.
func NewCreateHandler(authn *middleware.Authenticator, svc transactionCreator) *CreateHandler {
	return &CreateHandler{Auth: authn, Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "transactions-create",
		Method:        http.MethodPost,
		Path:          "/transactions",
		Summary:       "Create transaction",
		Description:   "Records a new transaction for the caller.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   huma.Middlewares{h.Auth.Require(api)},
	}, h.handle)
}

func (h *CreateHandler) handle(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	parsed, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	created, err := h.Service.Create(ctx, userID, parsed)
	if err != nil {
		return nil, serviceError(err, "CreateTransaction", "An error occurred while creating the transaction")
	}

	return &CreateOutput{Body: transactionFromService(created)}, nil
}
