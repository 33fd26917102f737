package auth

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/mock"

	coreauth "github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/token"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, accessPassword string) (*service.Config, string, error) {
	args := m.Called(ctx, accessPassword)
	config, _ := args.Get(0).(*service.Config)
	issued, _ := args.Get(1).(string)
	return config, issued, args.Error(2)
}

func (m *mockAuthService) Refresh(ctx context.Context, configID string) (string, error) {
	args := m.Called(ctx, configID)
	issued, _ := args.Get(0).(string)
	return issued, args.Error(1)
}

func (m *mockAuthService) Profile(ctx context.Context, configID string) (*service.Config, error) {
	args := m.Called(ctx, configID)
	config, _ := args.Get(0).(*service.Config)
	return config, args.Error(1)
}

func (m *mockAuthService) UpdatePassword(ctx context.Context, configID, currentPassword, newPassword string) error {
	args := m.Called(ctx, configID, currentPassword, newPassword)
	return args.Error(0)
}

// stubAuthenticator accepts exactly one token and returns fixed claims,
// standing in for the full token-plus-storage check behind the middleware.
type stubAuthenticator struct {
	claims *token.Claims
}

func (s *stubAuthenticator) Authenticate(ctx context.Context, rawToken string) (*token.Claims, error) {
	if rawToken == "valid-token" {
		return s.claims, nil
	}
	return nil, service.ErrInvalidToken
}

// newGatedTestAPI builds a humatest API with the bearer middleware installed
// so gated handlers see real claims.
func newGatedTestAPI(t *testing.T, claims *token.Claims, register func(api huma.API)) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(coreauth.NewMiddleware(api, &stubAuthenticator{claims: claims}))
	register(api)
	return api
}

func testClaims() *token.Claims {
	return &token.Claims{ConfigID: "5f6b2c3f-8f14-4a2e-9d22-93f6f02b55aa", Name: "Owner"}
}
