package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	coreauth "github.com/carson-networks/finance-tracker/internal/auth"
	authhandlers "github.com/carson-networks/finance-tracker/internal/handlers/v1/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/middleware"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Tokens  *coreauth.TokenManager
}

// requestLogger attaches a request-scoped LogData with a fresh request id
// and logs one line at the start and end of every API request.
func requestLogger(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := logging.NewLogData(log)

		requestID := uuid.Must(uuid.NewV4()).String()
		logData.AddData("requestId", requestID)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		log.WithField("requestId", requestID).Infof("Api.%v %v.Start", ctx.Method(), ctx.URL().Path)

		endTimer := logData.AddTiming("durationMs")
		ctx = huma.WithValue(ctx, logging.ContextKey, logData)
		next(ctx)
		endTimer()

		logData.AddData("status", ctx.Status())
		logData.Log().Infof("Api.%v %v.Complete", ctx.Method(), ctx.URL().Path)
	}
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("Finance Tracker API", "1.0.0"))
	humaAPI.UseMiddleware(requestLogger(r.Logger))

	authn := middleware.NewAuthenticator(r.Tokens)

	authhandlers.NewRegisterHandler(r.Service.Auth).Register(humaAPI)
	authhandlers.NewLoginHandler(r.Service.Auth).Register(humaAPI)
	authhandlers.NewValidateHandler(authn).Register(humaAPI)

	transaction.NewListHandler(authn, r.Service.Transaction).Register(humaAPI)
	transaction.NewGetHandler(authn, r.Service.Transaction).Register(humaAPI)
	transaction.NewCreateHandler(authn, r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateHandler(authn, r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteHandler(authn, r.Service.Transaction).Register(humaAPI)
	transaction.NewSummaryHandler(authn, r.Service.Transaction).Register(humaAPI)
	transaction.NewCategoriesHandler(authn, r.Service.Transaction).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
