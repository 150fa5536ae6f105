package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/middleware"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// SummaryInput is the Huma input for the monthly summary. Month and year
// default to the current calendar month when omitted.
type SummaryInput struct {
	Month int `query:"month" doc:"Calendar month 1-12, defaults to the current month"`
	Year  int `query:"year" doc:"Calendar year, defaults to the current year"`
}

// CategoryAmountResponse is one slice of the expense breakdown.
type CategoryAmountResponse struct {
	Category string `json:"category" doc:"Category label"`
	Amount   string `json:"amount" doc:"Summed expense amount"`
}

// SummaryResponse is the API response model for the monthly summary.
type SummaryResponse struct {
	TotalIncome       string                   `json:"totalIncome" doc:"Sum of income amounts"`
	TotalExpenses     string                   `json:"totalExpenses" doc:"Sum of expense amounts"`
	Balance           string                   `json:"balance" doc:"Income minus expenses"`
	TransactionCount  int                      `json:"transactionCount" doc:"Number of transactions in the month"`
	CategoryBreakdown []CategoryAmountResponse `json:"categoryBreakdown" doc:"Expenses per category, largest first"`
	Month             int                      `json:"month" doc:"Summarized month"`
	Year              int                      `json:"year" doc:"Summarized year"`
}

// SummaryOutput is the Huma output for the monthly summary.
type SummaryOutput struct {
	Body SummaryResponse
}

// transactionSummarizer is the interface for the summary service.
type transactionSummarizer interface {
	Summarize(ctx context.Context, userID int64, month, year int) (*service.Summary, error)
}

// SummaryHandler handles GET /transactions/summary.
type SummaryHandler struct {
	Auth    *middleware.Authenticator
	Service transactionSummarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(authn *middleware.Authenticator, svc transactionSummarizer) *SummaryHandler {
	return &SummaryHandler{Auth: authn, Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transactions-summary",
		Method:      http.MethodGet,
		Path:        "/transactions/summary",
		Summary:     "Monthly summary",
		Description: "Aggregates the caller's transactions for one calendar month.",
		Tags:        []string{"Transactions"},
		Middlewares: huma.Middlewares{h.Auth.Require(api)},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	month := input.Month
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, huma.Error400BadRequest("month must be between 1 and 12")
	}
	year := input.Year
	if year == 0 {
		year = now.Year()
	}

	summary, err := h.Service.Summarize(ctx, userID, month, year)
	if err != nil {
		return nil, serviceError(err, "TransactionSummary", "An error occurred while computing the summary")
	}

	response := SummaryResponse{
		TotalIncome:       summary.TotalIncome.StringFixed(2),
		TotalExpenses:     summary.TotalExpenses.StringFixed(2),
		Balance:           summary.Balance.StringFixed(2),
		TransactionCount:  summary.TransactionCount,
		CategoryBreakdown: make([]CategoryAmountResponse, len(summary.CategoryBreakdown)),
		Month:             summary.Month,
		Year:              summary.Year,
	}
	for i, slice := range summary.CategoryBreakdown {
		response.CategoryBreakdown[i] = CategoryAmountResponse{
			Category: slice.Category,
			Amount:   slice.Amount.StringFixed(2),
		}
	}

	return &SummaryOutput{Body: response}, nil
}
