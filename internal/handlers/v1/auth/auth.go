package auth

import (
	"net/http"
	"net/mail"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// AuthResponse is the API response model for register and login.
type AuthResponse struct {
	Token     string `json:"token" doc:"Signed bearer token"`
	Name      string `json:"name" doc:"Display name"`
	Email     string `json:"email" doc:"Email address"`
	ExpiresAt string `json:"expiresAt" doc:"RFC3339 token expiry"`
}

func authResponseFrom(result *service.AuthResult) AuthResponse {
	return AuthResponse{
		Token:     result.Token,
		Name:      result.Name,
		Email:     result.Email,
		ExpiresAt: result.ExpiresAt.Format(time.RFC3339),
	}
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// validationError converts a typed field-error list into a 400 response
// with one detail per field.
func validationError(errs service.ValidationErrors) error {
	details := make([]error, len(errs))
	for i, ve := range errs {
		details[i] = &huma.ErrorDetail{
			Message:  ve.Message,
			Location: "body." + ve.Field,
		}
	}
	return huma.Error400BadRequest("validation failed", details...)
}

// unexpectedError logs the real error server-side and returns an opaque 500.
func unexpectedError(err error, loggingName, publicMessage string) error {
	logrus.WithError(err).Errorf("Handler.%v.Unexpected", loggingName)
	return huma.NewError(http.StatusInternalServerError, publicMessage)
}
