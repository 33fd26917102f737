package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHTTP_RefreshToken_Success(t *testing.T) {
	claims := testClaims()

	mockSvc := new(mockAuthService)
	mockSvc.On("Refresh", mock.Anything, claims.ConfigID).Return("fresh-token", nil)

	api := newGatedTestAPI(t, claims, func(api huma.API) {
		NewRefreshTokenHandler(mockSvc).Register(api)
	})

	resp := api.Post("/auth/refresh-token", "Authorization: Bearer valid-token")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body RefreshTokenResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "fresh-token", body.Token)
	assert.Equal(t, claims.ConfigID, body.User.ConfigID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_RefreshToken_MissingToken(t *testing.T) {
	mockSvc := new(mockAuthService)
	api := newGatedTestAPI(t, testClaims(), func(api huma.API) {
		NewRefreshTokenHandler(mockSvc).Register(api)
	})

	resp := api.Post("/auth/refresh-token")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "Refresh")
}

func TestHTTP_RefreshToken_ServiceError(t *testing.T) {
	claims := testClaims()

	mockSvc := new(mockAuthService)
	mockSvc.On("Refresh", mock.Anything, claims.ConfigID).
		Return("", errors.New("database unavailable"))

	api := newGatedTestAPI(t, claims, func(api huma.API) {
		NewRefreshTokenHandler(mockSvc).Register(api)
	})

	resp := api.Post("/auth/refresh-token", "Authorization: Bearer valid-token")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
