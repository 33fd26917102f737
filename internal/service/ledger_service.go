package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

const defaultPageSize = 100

// SortSpec names the single supported sort field with an optional leading
// "-" for descending, mirroring the dashboard client.
type SortSpec struct {
	Descending bool
}

// ParseSortSpec interprets the sort query parameter. The default and any
// unrecognized value sort newest-first.
func ParseSortSpec(sort string) SortSpec {
	switch strings.TrimSpace(sort) {
	case "date":
		return SortSpec{Descending: false}
	case "-date":
		return SortSpec{Descending: true}
	default:
		return SortSpec{Descending: true}
	}
}

// LedgerService serves the paginated dashboard read path.
type LedgerService struct {
	storage *storage.Storage
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store *storage.Storage) *LedgerService {
	return &LedgerService{storage: store}
}

// DashboardPage returns one window of the ledger with references resolved,
// the config record (secret stripped), and pagination metadata.
//
// page values below 1 are clamped to 1 so the skip never goes negative.
func (s *LedgerService) DashboardPage(ctx context.Context, page, limit int, sort string) (*DashboardData, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	skip := (page - 1) * limit

	configRow, err := s.storage.Config.FindSingleton(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotConfigured
	}
	if err != nil {
		return nil, err
	}

	spec := ParseSortSpec(sort)
	ledgerPage, err := s.storage.Ledger.ListPage(ctx, &sqlconfig.TransactionFilter{
		Limit:         limit,
		Offset:        skip,
		DateAscending: !spec.Descending,
	})
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(ledgerPage.Transactions))
	for i, item := range ledgerPage.Transactions {
		transactions[i] = transactionFromStorage(item)
	}

	return &DashboardData{
		Config:       configFromStorage(configRow),
		Transactions: transactions,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      ledgerPage.Total,
			HasMore:    int64(skip+len(transactions)) < ledgerPage.Total,
			TotalPages: totalPages(ledgerPage.Total, limit),
		},
	}, nil
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}
