package auth

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
)

func TestHTTP_Profile_Success(t *testing.T) {
	claims := testClaims()
	lastLogin := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	config := &service.Config{
		ID:        uuid.FromStringOrNil(claims.ConfigID),
		Name:      "Owner",
		LastLogin: &lastLogin,
		CreatedAt: lastLogin.Add(-24 * time.Hour),
		UpdatedAt: lastLogin,
	}

	mockSvc := new(mockAuthService)
	mockSvc.On("Profile", mock.Anything, claims.ConfigID).Return(config, nil)

	api := newGatedTestAPI(t, claims, func(api huma.API) {
		NewProfileHandler(mockSvc).Register(api)
	})

	resp := api.Get("/auth/profile", "Authorization: Bearer valid-token")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ProfileResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, claims.ConfigID, body.Data.ConfigID)
	assert.Equal(t, "Owner", body.Data.Name)
	assert.Equal(t, lastLogin.Format(time.RFC3339), body.Data.LastLogin)
	// The stored secret never leaves the service layer.
	assert.NotContains(t, resp.Body.String(), "password")
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Profile_MissingToken(t *testing.T) {
	mockSvc := new(mockAuthService)
	api := newGatedTestAPI(t, testClaims(), func(api huma.API) {
		NewProfileHandler(mockSvc).Register(api)
	})

	resp := api.Get("/auth/profile")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "Profile")
}
