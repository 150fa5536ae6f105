package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/middleware"
)

// ValidateOutput is the Huma output for token validation.
type ValidateOutput struct {
	Body struct {
		Message string `json:"message"`
		IsValid bool   `json:"isValid"`
	}
}

// ValidateHandler handles GET /auth/validate. The auth middleware rejects
// invalid tokens with 401 before the handler runs, so reaching it means the
// token passed.
type ValidateHandler struct {
	Auth *middleware.Authenticator
}

// NewValidateHandler creates a new ValidateHandler.
func NewValidateHandler(authn *middleware.Authenticator) *ValidateHandler {
	return &ValidateHandler{Auth: authn}
}

// Register registers the endpoint with the Huma API.
func (h *ValidateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "auth-validate",
		Method:      http.MethodGet,
		Path:        "/auth/validate",
		Summary:     "Validate token",
		Description: "Reports whether the presented bearer token is valid.",
		Tags:        []string{"Auth"},
		Middlewares: huma.Middlewares{h.Auth.Require(api)},
	}, h.handle)
}

func (h *ValidateHandler) handle(ctx context.Context, _ *struct{}) (*ValidateOutput, error) {
	out := &ValidateOutput{}
	out.Body.Message = "Token is valid"
	out.Body.IsValid = true
	return out, nil
}
