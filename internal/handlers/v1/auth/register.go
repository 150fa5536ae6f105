package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// RegisterBody is the request body for registering a new user.
type RegisterBody struct {
	Name            string `json:"name" doc:"Display name, at most 100 characters"`
	Email           string `json:"email" doc:"Email address, unique across users"`
	Password        string `json:"password" doc:"Plaintext password, at least 6 characters"`
	ConfirmPassword string `json:"confirmPassword" doc:"Must match password"`
}

// RegisterInput is the Huma input for registering.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterOutput is the Huma output for registering.
type RegisterOutput struct {
	Body AuthResponse
}

// registrar is the interface for the registration service.
type registrar interface {
	Register(ctx context.Context, name, email, password string) (*service.AuthResult, error)
}

// RegisterHandler handles POST /auth/register.
type RegisterHandler struct {
	AuthService registrar
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc registrar) *RegisterHandler {
	return &RegisterHandler{AuthService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "auth-register",
		Method:      http.MethodPost,
		Path:        "/auth/register",
		Summary:     "Register",
		Description: "Creates a user account and returns a bearer token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

// validateRegisterInput checks every field before any store mutation.
func validateRegisterInput(input *RegisterInput) service.ValidationErrors {
	var errs service.ValidationErrors

	if input.Body.Name == "" {
		errs = append(errs, service.ValidationError{Field: "name", Message: "is required"})
	} else if len(input.Body.Name) > 100 {
		errs = append(errs, service.ValidationError{Field: "name", Message: "must be at most 100 characters"})
	}
	if input.Body.Email == "" {
		errs = append(errs, service.ValidationError{Field: "email", Message: "is required"})
	} else if len(input.Body.Email) > 100 {
		errs = append(errs, service.ValidationError{Field: "email", Message: "must be at most 100 characters"})
	} else if !validEmail(input.Body.Email) {
		errs = append(errs, service.ValidationError{Field: "email", Message: "is not a valid email address"})
	}
	if len(input.Body.Password) < 6 {
		errs = append(errs, service.ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}
	if input.Body.ConfirmPassword != input.Body.Password {
		errs = append(errs, service.ValidationError{Field: "confirmPassword", Message: "does not match password"})
	}

	return errs
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if errs := validateRegisterInput(input); len(errs) > 0 {
		return nil, validationError(errs)
	}

	result, err := h.AuthService.Register(ctx, input.Body.Name, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			return nil, huma.Error400BadRequest("User with this email already exists")
		}
		return nil, unexpectedError(err, "Register", "An error occurred during registration")
	}

	return &RegisterOutput{Body: authResponseFrom(result)}, nil
}
