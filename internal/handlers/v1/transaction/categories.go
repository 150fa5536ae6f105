package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/middleware"
)

// CategoriesOutput is the Huma output for listing categories.
type CategoriesOutput struct {
	Body []string
}

// categoryLister is the interface for the category list service.
type categoryLister interface {
	Categories(ctx context.Context, userID int64) ([]string, error)
}

// CategoriesHandler handles GET /transactions/categories.
type CategoriesHandler struct {
	Auth    *middleware.Authenticator
	Service categoryLister
}

// NewCategoriesHandler creates a new CategoriesHandler.
func NewCategoriesHandler(authn *middleware.Authenticator, svc categoryLister) *CategoriesHandler {
	return &CategoriesHandler{Auth: authn, Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transactions-categories",
		Method:      http.MethodGet,
		Path:        "/transactions/categories",
		Summary:     "List categories",
		Description: "Returns the default categories merged with the caller's own.",
		Tags:        []string{"Transactions"},
		Middlewares: huma.Middlewares{h.Auth.Require(api)},
	}, h.handle)
}

func (h *CategoriesHandler) handle(ctx context.Context, _ *struct{}) (*CategoriesOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := h.Service.Categories(ctx, userID)
	if err != nil {
		return nil, serviceError(err, "ListCategories", "An error occurred while listing categories")
	}

	return &CategoriesOutput{Body: categories}, nil
}
