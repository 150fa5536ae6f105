package transaction

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/middleware"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListInput is the Huma input for listing transactions.
type ListInput struct {
	Page     int    `query:"page" doc:"1-indexed page, defaults to 1"`
	PageSize int    `query:"pageSize" doc:"Page size, defaults to 50, capped at 200"`
	Category string `query:"category" doc:"Case-insensitive substring filter on category"`
	Type     int    `query:"type" doc:"Filter by type, 1 = income, 2 = expense"`
}

// ListOutput is the Huma output for listing transactions. Pagination
// metadata rides in response headers, the body is the bare page.
type ListOutput struct {
	TotalCount string `header:"X-Total-Count"`
	Page       string `header:"X-Page"`
	PageSize   string `header:"X-Page-Size"`
	Body       []Transaction
}

// transactionLister is the interface for the transaction list service.
type transactionLister interface {
	List(ctx context.Context, userID int64, params service.ListParams) ([]service.Transaction, int, error)
}

// ListHandler handles GET /transactions.
type ListHandler struct {
	Auth    *middleware.Authenticator
	Service transactionLister
}

// NewListHandler creates a new ListHandler.
func NewListHandler(authn *middleware.Authenticator, svc transactionLister) *ListHandler {
	return &ListHandler{Auth: authn, Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transactions-list",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List transactions",
		Description: "Returns one page of the caller's transactions, newest first.",
		Tags:        []string{"Transactions"},
		Middlewares: huma.Middlewares{h.Auth.Require(api)},
	}, h.handle)
}

func (h *ListHandler) handle(ctx context.Context, input *ListInput) (*ListOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	params := service.ListParams{
		Page:     input.Page,
		PageSize: input.PageSize,
		Category: input.Category,
	}
	if input.Type != 0 {
		filterType := service.TransactionType(input.Type)
		if !filterType.Valid() {
			return nil, huma.Error400BadRequest("type must be 1 (income) or 2 (expense)")
		}
		params.Type = &filterType
	}

	rows, total, err := h.Service.List(ctx, userID, params)
	if err != nil {
		return nil, serviceError(err, "ListTransactions", "An error occurred while listing transactions")
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 50
	} else if pageSize > 200 {
		pageSize = 200
	}

	out := &ListOutput{
		TotalCount: strconv.Itoa(total),
		Page:       strconv.Itoa(page),
		PageSize:   strconv.Itoa(pageSize),
		Body:       make([]Transaction, len(rows)),
	}
	for i := range rows {
		out.Body[i] = transactionFromService(&rows[i])
	}
	return out, nil
}
