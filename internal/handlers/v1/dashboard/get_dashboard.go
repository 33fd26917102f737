package dashboard

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// GetDashboardInput is the Huma input for the dashboard. The paging
// parameters arrive as raw strings so non-numeric values fall back to their
// defaults instead of rejecting the request.
type GetDashboardInput struct {
	Page  string `query:"page" doc:"1-based page number, defaults to 1"`
	Limit string `query:"limit" doc:"Page size, defaults to 100"`
	Sort  string `query:"sort" doc:"Sort order: date or -date, defaults to -date"`
}

// GetDashboardResponseBody is the response body for the dashboard.
type GetDashboardResponseBody struct {
	Config       Config        `json:"config" doc:"Access configuration minus the secret"`
	Transactions []Transaction `json:"transactions" doc:"Page of resolved transactions"`
	Pagination   Pagination    `json:"pagination" doc:"Window metadata"`
}

// GetDashboardOutput is the Huma output for the dashboard.
type GetDashboardOutput struct {
	Body GetDashboardResponseBody
}

// dashboardReader is the interface for fetching a dashboard page.
type dashboardReader interface {
	DashboardPage(ctx context.Context, page, limit int, sort string) (*service.DashboardData, error)
}

// GetDashboardHandler handles GET /dashboard.
type GetDashboardHandler struct {
	LedgerService dashboardReader
}

// NewGetDashboardHandler creates a new GetDashboardHandler.
func NewGetDashboardHandler(svc dashboardReader) *GetDashboardHandler {
	return &GetDashboardHandler{LedgerService: svc}
}

// Register registers the dashboard endpoint with the Huma API.
func (h *GetDashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/dashboard",
		Summary:     "Get dashboard",
		Description: "Returns a paginated, sorted page of the ledger with references resolved.",
		Tags:        []string{"Dashboard"},
		Security:    auth.BearerSecurity(),
	}, h.handle)
}

// parsePageParam is deliberately lenient: absent and non-numeric values use
// the fallback rather than failing the request.
func parsePageParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func (h *GetDashboardHandler) handle(ctx context.Context, input *GetDashboardInput) (*GetDashboardOutput, error) {
	logData := logging.GetLogData(ctx)

	page := parsePageParam(input.Page, 1)
	limit := parsePageParam(input.Limit, 100)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("dashboardPageMs")
	}
	data, err := h.LedgerService.DashboardPage(ctx, page, limit, input.Sort)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, service.ErrNotConfigured) {
		return nil, huma.NewError(http.StatusNotFound, "No configuration found")
	}
	if err != nil {
		logrus.WithError(err).Error("GetDashboard.Failed")
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load dashboard")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(data.Transactions))
	}

	resp := GetDashboardResponseBody{
		Config:       configFromService(data.Config),
		Transactions: make([]Transaction, len(data.Transactions)),
		Pagination: Pagination{
			Page:       data.Pagination.Page,
			Limit:      data.Pagination.Limit,
			Total:      data.Pagination.Total,
			HasMore:    data.Pagination.HasMore,
			TotalPages: data.Pagination.TotalPages,
		},
	}
	for i, tx := range data.Transactions {
		resp.Transactions[i] = transactionFromService(tx)
	}

	return &GetDashboardOutput{Body: resp}, nil
}
