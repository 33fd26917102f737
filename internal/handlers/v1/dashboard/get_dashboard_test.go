package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/token"
)

type mockLedgerService struct {
	mock.Mock
}

func (m *mockLedgerService) DashboardPage(ctx context.Context, page, limit int, sort string) (*service.DashboardData, error) {
	args := m.Called(ctx, page, limit, sort)
	data, _ := args.Get(0).(*service.DashboardData)
	return data, args.Error(1)
}

type stubAuthenticator struct{}

func (s *stubAuthenticator) Authenticate(ctx context.Context, rawToken string) (*token.Claims, error) {
	if rawToken == "valid-token" {
		return &token.Claims{ConfigID: uuid.Must(uuid.NewV4()).String(), Name: "Owner"}, nil
	}
	return nil, service.ErrInvalidToken
}

func newDashboardTestAPI(t *testing.T, svc dashboardReader) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(auth.NewMiddleware(api, &stubAuthenticator{}))
	NewGetDashboardHandler(svc).Register(api)
	return api
}

func newDashboardData(page, limit int, total int64) *service.DashboardData {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	typeID := uuid.Must(uuid.NewV4())
	return &service.DashboardData{
		Config: &service.Config{
			ID:        uuid.Must(uuid.NewV4()),
			Name:      "Owner",
			LastLogin: &now,
		},
		Transactions: []service.Transaction{
			{
				ID:        uuid.Must(uuid.NewV4()),
				Name:      "Groceries",
				Amount:    decimal.RequireFromString("45.00"),
				NetAmount: decimal.RequireFromString("-45.00"),
				Type:      &service.LookupRef{ID: typeID, Name: "DEBIT", Color: "#ef4444", IsActive: true},
				Date:      now,
				Tags: []service.LookupRef{
					{ID: uuid.Must(uuid.NewV4()), Name: "groceries", IsActive: true},
				},
				WealthComponent: &service.LookupRef{ID: uuid.Must(uuid.NewV4()), Name: "savings", IsActive: true},
				CreatedAt:       now,
			},
		},
		Pagination: service.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			HasMore:    int64(page*limit) < total,
			TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		},
	}
}

func TestHTTP_GetDashboard_Defaults(t *testing.T) {
	mockSvc := new(mockLedgerService)
	mockSvc.On("DashboardPage", mock.Anything, 1, 100, "").
		Return(newDashboardData(1, 100, 1), nil)

	resp := newDashboardTestAPI(t, mockSvc).Get("/dashboard", "Authorization: Bearer valid-token")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GetDashboardResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Owner", body.Config.Name)
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, "Groceries", body.Transactions[0].Name)
	assert.Equal(t, "DEBIT", body.Transactions[0].Type.Name)
	assert.Len(t, body.Transactions[0].Tags, 1)
	assert.Nil(t, body.Transactions[0].FundingSource)
	assert.Equal(t, 1, body.Pagination.Page)
	assert.Equal(t, 100, body.Pagination.Limit)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetDashboard_ExplicitPaging(t *testing.T) {
	mockSvc := new(mockLedgerService)
	mockSvc.On("DashboardPage", mock.Anything, 2, 10, "date").
		Return(newDashboardData(2, 10, 25), nil)

	resp := newDashboardTestAPI(t, mockSvc).
		Get("/dashboard?page=2&limit=10&sort=date", "Authorization: Bearer valid-token")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GetDashboardResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Pagination.Page)
	assert.True(t, body.Pagination.HasMore)
	assert.Equal(t, 3, body.Pagination.TotalPages)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetDashboard_NonNumericPageFallsBack(t *testing.T) {
	// page=abc is tolerated, not rejected.
	mockSvc := new(mockLedgerService)
	mockSvc.On("DashboardPage", mock.Anything, 1, 100, "").
		Return(newDashboardData(1, 100, 0), nil)

	resp := newDashboardTestAPI(t, mockSvc).
		Get("/dashboard?page=abc&limit=oops", "Authorization: Bearer valid-token")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetDashboard_MissingToken(t *testing.T) {
	mockSvc := new(mockLedgerService)

	resp := newDashboardTestAPI(t, mockSvc).Get("/dashboard")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "DashboardPage")
}

func TestHTTP_GetDashboard_NoConfig(t *testing.T) {
	mockSvc := new(mockLedgerService)
	mockSvc.On("DashboardPage", mock.Anything, 1, 100, "").
		Return(nil, service.ErrNotConfigured)

	resp := newDashboardTestAPI(t, mockSvc).Get("/dashboard", "Authorization: Bearer valid-token")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetDashboard_ServiceError(t *testing.T) {
	mockSvc := new(mockLedgerService)
	mockSvc.On("DashboardPage", mock.Anything, 1, 100, "").
		Return(nil, errors.New("database unavailable"))

	resp := newDashboardTestAPI(t, mockSvc).Get("/dashboard", "Authorization: Bearer valid-token")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "database unavailable")
	mockSvc.AssertExpectations(t)
}
