package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/middleware"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          int64  `json:"id" doc:"Transaction id"`
	Amount      string `json:"amount" doc:"Decimal amount with two fraction digits"`
	Description string `json:"description" doc:"Free-text description"`
	Date        string `json:"date" doc:"RFC3339 date of the financial event"`
	Category    string `json:"category" doc:"Category label"`
	Type        int    `json:"type" doc:"1 = income, 2 = expense"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 record creation time"`
}

func transactionFromService(tx *service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		Amount:      tx.Amount.StringFixed(2),
		Description: tx.Description,
		Date:        tx.Date.Format(time.RFC3339),
		Category:    tx.Category,
		Type:        int(tx.Type),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}

// TransactionBody is the request body for creating or updating a transaction.
type TransactionBody struct {
	Amount      string `json:"amount" doc:"Decimal amount, greater than 0"`
	Description string `json:"description" doc:"Free-text description"`
	Date        string `json:"date" doc:"RFC3339 date of the financial event"`
	Category    string `json:"category" doc:"Category label"`
	Type        int    `json:"type" doc:"1 = income, 2 = expense"`
}

// parseTransactionBody converts the wire types; deeper field validation
// happens in the service before any store mutation.
func parseTransactionBody(body TransactionBody) (service.TransactionInput, error) {
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return service.TransactionInput{}, huma.Error400BadRequest("invalid amount", err)
	}

	var date time.Time
	if body.Date != "" {
		date, err = time.Parse(time.RFC3339, body.Date)
		if err != nil {
			return service.TransactionInput{}, huma.Error400BadRequest("invalid date", err)
		}
	}

	return service.TransactionInput{
		Amount:      amount,
		Description: body.Description,
		Date:        date,
		Category:    body.Category,
		Type:        service.TransactionType(body.Type),
	}, nil
}

// principal pulls the authenticated user id injected by the auth middleware.
func principal(ctx context.Context) (int64, error) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return 0, huma.NewError(http.StatusUnauthorized, "missing authorization")
	}
	return userID, nil
}

// serviceError maps service failures to API errors. Validation failures
// become field-level 400s, not-found becomes 404, and anything else is
// logged server-side and surfaced as an opaque 500.
func serviceError(err error, loggingName, publicMessage string) error {
	if verrs, ok := service.AsValidationErrors(err); ok {
		details := make([]error, len(verrs))
		for i, ve := range verrs {
			details[i] = &huma.ErrorDetail{
				Message:  ve.Message,
				Location: "body." + ve.Field,
			}
		}
		return huma.Error400BadRequest("validation failed", details...)
	}
	if errors.Is(err, service.ErrNotFound) {
		return huma.Error404NotFound("Transaction not found")
	}
	logrus.WithError(err).Errorf("Handler.%v.Unexpected", loggingName)
	return huma.NewError(http.StatusInternalServerError, publicMessage)
}
