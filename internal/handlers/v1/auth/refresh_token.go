package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/service"
)

// RefreshTokenResponseBody is the response body for refreshing a token.
type RefreshTokenResponseBody struct {
	Success bool      `json:"success" doc:"Always true on success"`
	Token   string    `json:"token" doc:"Fresh bearer token with a new expiry"`
	User    TokenUser `json:"user" doc:"Identity embedded in the token"`
}

// RefreshTokenOutput is the Huma output for refreshing a token.
type RefreshTokenOutput struct {
	Body RefreshTokenResponseBody
}

// tokenRefresher is the interface for issuing a replacement token.
type tokenRefresher interface {
	Refresh(ctx context.Context, configID string) (string, error)
}

// RefreshTokenHandler handles POST /auth/refresh-token.
type RefreshTokenHandler struct {
	AuthService tokenRefresher
}

// NewRefreshTokenHandler creates a new RefreshTokenHandler.
func NewRefreshTokenHandler(svc tokenRefresher) *RefreshTokenHandler {
	return &RefreshTokenHandler{AuthService: svc}
}

// Register registers the refresh token endpoint with the Huma API.
func (h *RefreshTokenHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "refresh-token",
		Method:      http.MethodPost,
		Path:        "/auth/refresh-token",
		Summary:     "Refresh token",
		Description: "Issues a new bearer token with a fresh expiry.",
		Tags:        []string{"Auth"},
		Security:    auth.BearerSecurity(),
	}, h.handle)
}

func (h *RefreshTokenHandler) handle(ctx context.Context, _ *struct{}) (*RefreshTokenOutput, error) {
	claims := auth.ClaimsFromContext(ctx)
	if claims == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Invalid token")
	}

	issued, err := h.AuthService.Refresh(ctx, claims.ConfigID)
	if errors.Is(err, service.ErrNotConfigured) {
		return nil, huma.NewError(http.StatusNotFound, "No configuration found")
	}
	if err != nil {
		logrus.WithError(err).Error("RefreshToken.Failed")
		return nil, huma.NewError(http.StatusInternalServerError, "failed to refresh token")
	}

	return &RefreshTokenOutput{Body: RefreshTokenResponseBody{
		Success: true,
		Token:   issued,
		User: TokenUser{
			Name:     claims.Name,
			ConfigID: claims.ConfigID,
		},
	}}, nil
}
