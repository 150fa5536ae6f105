package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email" doc:"Email address"`
	Password string `json:"password" doc:"Plaintext password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body AuthResponse
}

// authenticator is the interface for the login service.
type authenticator interface {
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
}

// LoginHandler handles POST /auth/login.
type LoginHandler struct {
	AuthService authenticator
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc authenticator) *LoginHandler {
	return &LoginHandler{AuthService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Log in",
		Description: "Verifies credentials and returns a bearer token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func validateLoginInput(input *LoginInput) service.ValidationErrors {
	var errs service.ValidationErrors

	if input.Body.Email == "" {
		errs = append(errs, service.ValidationError{Field: "email", Message: "is required"})
	}
	if input.Body.Password == "" {
		errs = append(errs, service.ValidationError{Field: "password", Message: "is required"})
	}

	return errs
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if errs := validateLoginInput(input); len(errs) > 0 {
		return nil, validationError(errs)
	}

	result, err := h.AuthService.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		// Unknown email and wrong password share one message so accounts
		// cannot be enumerated.
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, huma.Error400BadRequest("Invalid email or password")
		}
		return nil, unexpectedError(err, "Login", "An error occurred during login")
	}

	return &LoginOutput{Body: authResponseFrom(result)}, nil
}
