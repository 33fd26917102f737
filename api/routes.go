package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/auth"
	authhandlers "github.com/carson-networks/ledger-server/internal/handlers/v1/auth"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/dashboard"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaConfig := huma.DefaultConfig("ledger-server", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		auth.SchemeName: {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}

	humaAPI := humago.New(mux, humaConfig)
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))
	humaAPI.UseMiddleware(auth.NewMiddleware(humaAPI, r.Service.Auth))

	authhandlers.NewLoginHandler(r.Service.Auth).Register(humaAPI)
	authhandlers.NewVerifyTokenHandler().Register(humaAPI)
	authhandlers.NewRefreshTokenHandler(r.Service.Auth).Register(humaAPI)
	authhandlers.NewProfileHandler(r.Service.Auth).Register(humaAPI)
	authhandlers.NewUpdatePasswordHandler(r.Service.Auth).Register(humaAPI)
	dashboard.NewGetDashboardHandler(r.Service.Ledger).Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewFromTemplateHandler(r.Operator).Register(humaAPI)

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
