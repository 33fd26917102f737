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

// ProfileResponseBody is the response body for fetching the profile.
type ProfileResponseBody struct {
	Success bool    `json:"success" doc:"Always true on success"`
	Data    Profile `json:"data" doc:"Access configuration minus the secret"`
}

// ProfileOutput is the Huma output for fetching the profile.
type ProfileOutput struct {
	Body ProfileResponseBody
}

// profileReader is the interface for loading the access configuration.
type profileReader interface {
	Profile(ctx context.Context, configID string) (*service.Config, error)
}

// ProfileHandler handles GET /auth/profile.
type ProfileHandler struct {
	AuthService profileReader
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc profileReader) *ProfileHandler {
	return &ProfileHandler{AuthService: svc}
}

// Register registers the profile endpoint with the Huma API.
func (h *ProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/auth/profile",
		Summary:     "Get profile",
		Description: "Returns the access configuration without the stored secret.",
		Tags:        []string{"Auth"},
		Security:    auth.BearerSecurity(),
	}, h.handle)
}

func (h *ProfileHandler) handle(ctx context.Context, _ *struct{}) (*ProfileOutput, error) {
	claims := auth.ClaimsFromContext(ctx)
	if claims == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Invalid token")
	}

	config, err := h.AuthService.Profile(ctx, claims.ConfigID)
	if errors.Is(err, service.ErrNotConfigured) {
		return nil, huma.NewError(http.StatusNotFound, "No configuration found")
	}
	if err != nil {
		logrus.WithError(err).Error("GetProfile.Failed")
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get profile")
	}

	return &ProfileOutput{Body: ProfileResponseBody{
		Success: true,
		Data:    profileFromService(config),
	}}, nil
}
