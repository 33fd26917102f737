package auth

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
)

func TestHTTP_UpdatePassword_Success(t *testing.T) {
	claims := testClaims()

	mockSvc := new(mockAuthService)
	mockSvc.On("UpdatePassword", mock.Anything, claims.ConfigID, "old-password", "new-password").
		Return(nil)

	api := newGatedTestAPI(t, claims, func(api huma.API) {
		NewUpdatePasswordHandler(mockSvc).Register(api)
	})

	resp := api.Put("/auth/update-password", "Authorization: Bearer valid-token", UpdatePasswordBody{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Password updated successfully")
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdatePassword_MissingFields(t *testing.T) {
	mockSvc := new(mockAuthService)
	api := newGatedTestAPI(t, testClaims(), func(api huma.API) {
		NewUpdatePasswordHandler(mockSvc).Register(api)
	})

	resp := api.Put("/auth/update-password", "Authorization: Bearer valid-token", UpdatePasswordBody{
		CurrentPassword: "old-password",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdatePassword")
}

func TestHTTP_UpdatePassword_TooShort(t *testing.T) {
	mockSvc := new(mockAuthService)
	api := newGatedTestAPI(t, testClaims(), func(api huma.API) {
		NewUpdatePasswordHandler(mockSvc).Register(api)
	})

	resp := api.Put("/auth/update-password", "Authorization: Bearer valid-token", UpdatePasswordBody{
		CurrentPassword: "old-password",
		NewPassword:     "tiny",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdatePassword")
}

func TestHTTP_UpdatePassword_WrongCurrentPassword(t *testing.T) {
	claims := testClaims()

	mockSvc := new(mockAuthService)
	mockSvc.On("UpdatePassword", mock.Anything, claims.ConfigID, "wrong", "new-password").
		Return(service.ErrInvalidCredentials)

	api := newGatedTestAPI(t, claims, func(api huma.API) {
		NewUpdatePasswordHandler(mockSvc).Register(api)
	})

	resp := api.Put("/auth/update-password", "Authorization: Bearer valid-token", UpdatePasswordBody{
		CurrentPassword: "wrong",
		NewPassword:     "new-password",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdatePassword_MissingToken(t *testing.T) {
	mockSvc := new(mockAuthService)
	api := newGatedTestAPI(t, testClaims(), func(api huma.API) {
		NewUpdatePasswordHandler(mockSvc).Register(api)
	})

	resp := api.Put("/auth/update-password", UpdatePasswordBody{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdatePassword")
}
