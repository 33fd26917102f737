package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/service"
)

// UpdatePasswordBody is the request body for changing the access password.
// Both fields are checked in the handler so validation failures yield 400.
type UpdatePasswordBody struct {
	CurrentPassword string `json:"currentPassword,omitempty" doc:"Password currently in effect"`
	NewPassword     string `json:"newPassword,omitempty" doc:"Replacement password, minimum 6 characters"`
}

// UpdatePasswordInput is the Huma input for changing the access password.
type UpdatePasswordInput struct {
	Body UpdatePasswordBody
}

// UpdatePasswordResponseBody is the response body for changing the access
// password.
type UpdatePasswordResponseBody struct {
	Success bool   `json:"success" doc:"Always true on success"`
	Message string `json:"message" doc:"Human-readable confirmation"`
}

// UpdatePasswordOutput is the Huma output for changing the access password.
type UpdatePasswordOutput struct {
	Body UpdatePasswordResponseBody
}

// passwordUpdater is the interface for changing the access password.
type passwordUpdater interface {
	UpdatePassword(ctx context.Context, configID, currentPassword, newPassword string) error
}

// UpdatePasswordHandler handles PUT /auth/update-password.
type UpdatePasswordHandler struct {
	AuthService passwordUpdater
}

// NewUpdatePasswordHandler creates a new UpdatePasswordHandler.
func NewUpdatePasswordHandler(svc passwordUpdater) *UpdatePasswordHandler {
	return &UpdatePasswordHandler{AuthService: svc}
}

// Register registers the update password endpoint with the Huma API.
func (h *UpdatePasswordHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-password",
		Method:      http.MethodPut,
		Path:        "/auth/update-password",
		Summary:     "Update password",
		Description: "Re-verifies the current password and stores a new one.",
		Tags:        []string{"Auth"},
		Security:    auth.BearerSecurity(),
	}, h.handle)
}

func (h *UpdatePasswordHandler) handle(ctx context.Context, input *UpdatePasswordInput) (*UpdatePasswordOutput, error) {
	claims := auth.ClaimsFromContext(ctx)
	if claims == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Invalid token")
	}

	if input.Body.CurrentPassword == "" || input.Body.NewPassword == "" {
		return nil, huma.NewError(http.StatusBadRequest, "currentPassword and newPassword are required")
	}
	if len(input.Body.NewPassword) < service.MinPasswordLength {
		return nil, huma.NewError(http.StatusBadRequest,
			fmt.Sprintf("newPassword must be at least %v characters", service.MinPasswordLength))
	}

	err := h.AuthService.UpdatePassword(ctx, claims.ConfigID, input.Body.CurrentPassword, input.Body.NewPassword)
	if errors.Is(err, service.ErrNotConfigured) {
		return nil, huma.NewError(http.StatusNotFound, "No configuration found")
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		return nil, huma.NewError(http.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		logrus.WithError(err).Error("UpdatePassword.Failed")
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update password")
	}

	return &UpdatePasswordOutput{Body: UpdatePasswordResponseBody{
		Success: true,
		Message: "Password updated successfully",
	}}, nil
}
