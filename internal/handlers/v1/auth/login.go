package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/service"
)

// LoginBody is the request body for logging in. accessPassword is checked in
// the handler rather than the schema so a missing value yields 400, matching
// the dashboard client's expectations.
type LoginBody struct {
	AccessPassword string `json:"accessPassword,omitempty" doc:"Access password for the ledger"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginData carries the issued token and owner identity.
type LoginData struct {
	Name      string `json:"name" doc:"Display name of the owner"`
	LastLogin string `json:"lastLogin,omitempty" doc:"RFC3339 time of this login"`
	Token     string `json:"token" doc:"Bearer token for subsequent requests"`
}

// LoginResponseBody is the response body for logging in.
type LoginResponseBody struct {
	Success bool      `json:"success" doc:"Always true on success"`
	Data    LoginData `json:"data" doc:"Issued session"`
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body LoginResponseBody
}

// loginService is the interface for password login.
type loginService interface {
	Login(ctx context.Context, accessPassword string) (*service.Config, string, error)
}

// LoginHandler handles POST /auth/login.
type LoginHandler struct {
	AuthService loginService
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc loginService) *LoginHandler {
	return &LoginHandler{AuthService: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Log in",
		Description: "Verifies the access password and issues a bearer token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input.Body.AccessPassword == "" {
		return nil, huma.NewError(http.StatusBadRequest, "accessPassword is required")
	}

	config, issued, err := h.AuthService.Login(ctx, input.Body.AccessPassword)
	if errors.Is(err, service.ErrNotConfigured) {
		return nil, huma.NewError(http.StatusNotFound, "No configuration found")
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		return nil, huma.NewError(http.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		logrus.WithError(err).Error("Login.Failed")
		return nil, huma.NewError(http.StatusInternalServerError, "failed to log in")
	}

	data := LoginData{
		Name:  config.Name,
		Token: issued,
	}
	if config.LastLogin != nil {
		data.LastLogin = config.LastLogin.Format(time.RFC3339)
	}

	return &LoginOutput{Body: LoginResponseBody{Success: true, Data: data}}, nil
}
