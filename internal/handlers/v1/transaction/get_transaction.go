package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/middleware"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// GetInput is the Huma input for fetching a single transaction.
type GetInput struct {
	ID int64 `path:"id" doc:"Transaction id"`
}

// GetOutput is the Huma output for fetching a single transaction.
type GetOutput struct {
	Body Transaction
}

// transactionGetter is the interface for the transaction fetch service.
type transactionGetter interface {
	Get(ctx context.Context, userID, id int64) (*service.Transaction, error)
}

// GetHandler handles GET /transactions/{id}.
type GetHandler struct {
	Auth    *middleware.Authenticator
	Service transactionGetter
}

// NewGetHandler creates a new GetHandler.
func NewGetHandler(authn *middleware.Authenticator, svc transactionGetter) *GetHandler {
	return &GetHandler{Auth: authn, Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transactions-get",
		Method:      http.MethodGet,
		Path:        "/transactions/{id}",
		Summary:     "Get transaction",
		Description: "Returns one of the caller's transactions by id.",
		Tags:        []string{"Transactions"},
		Middlewares: huma.Middlewares{h.Auth.Require(api)},
	}, h.handle)
}

func (h *GetHandler) handle(ctx context.Context, input *GetInput) (*GetOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := h.Service.Get(ctx, userID, input.ID)
	if err != nil {
		return nil, serviceError(err, "GetTransaction", "An error occurred while fetching the transaction")
	}

	return &GetOutput{Body: transactionFromService(tx)}, nil
}
