package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

func newResolvedTransaction(name string) *storage.ResolvedTransaction {
	return &storage.ResolvedTransaction{
		Transaction: &sqlconfig.Transaction{
			ID:        uuid.Must(uuid.NewV4()),
			Name:      name,
			Amount:    decimal.RequireFromString("10.00"),
			NetAmount: decimal.RequireFromString("-10.00"),
			Date:      time.Now(),
			CreatedAt: time.Now(),
		},
		Type: &sqlconfig.Lookup{ID: uuid.Must(uuid.NewV4()), Name: "DEBIT"},
	}
}

func newLedgerStorage(configTable *mockConfigTable, ledger *mockLedgerReader) *storage.Storage {
	return &storage.Storage{Config: configTable, Ledger: ledger}
}

func TestParseSortSpec(t *testing.T) {
	assert.False(t, ParseSortSpec("date").Descending)
	assert.True(t, ParseSortSpec("-date").Descending)
	assert.True(t, ParseSortSpec("").Descending)
	assert.True(t, ParseSortSpec("amount").Descending)
}

func TestDashboardPage_DefaultsAndMetadata(t *testing.T) {
	row := &sqlconfig.Config{ID: uuid.Must(uuid.NewV4()), Name: "Owner"}

	configTable := new(mockConfigTable)
	configTable.On("FindSingleton", mock.Anything).Return(row, nil)

	ledger := new(mockLedgerReader)
	ledger.On("ListPage", mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == 100 && f.Offset == 0 && !f.DateAscending
	})).Return(&storage.LedgerPage{
		Transactions: []*storage.ResolvedTransaction{newResolvedTransaction("Coffee")},
		Total:        1,
	}, nil)

	svc := NewLedgerService(newLedgerStorage(configTable, ledger))

	data, err := svc.DashboardPage(context.Background(), 0, 0, "")
	assert.NoError(t, err)
	assert.Equal(t, "Owner", data.Config.Name)
	assert.Len(t, data.Transactions, 1)
	assert.Equal(t, 1, data.Pagination.Page)
	assert.Equal(t, 100, data.Pagination.Limit)
	assert.Equal(t, int64(1), data.Pagination.Total)
	assert.False(t, data.Pagination.HasMore)
	assert.Equal(t, 1, data.Pagination.TotalPages)
	ledger.AssertExpectations(t)
}

func TestDashboardPage_HasMore(t *testing.T) {
	// total 5, limit 2, page 1: two returned, three left.
	row := &sqlconfig.Config{ID: uuid.Must(uuid.NewV4()), Name: "Owner"}

	configTable := new(mockConfigTable)
	configTable.On("FindSingleton", mock.Anything).Return(row, nil)

	ledger := new(mockLedgerReader)
	ledger.On("ListPage", mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == 2 && f.Offset == 0
	})).Return(&storage.LedgerPage{
		Transactions: []*storage.ResolvedTransaction{
			newResolvedTransaction("One"),
			newResolvedTransaction("Two"),
		},
		Total: 5,
	}, nil)

	svc := NewLedgerService(newLedgerStorage(configTable, ledger))

	data, err := svc.DashboardPage(context.Background(), 1, 2, "-date")
	assert.NoError(t, err)
	assert.True(t, data.Pagination.HasMore)
	assert.Equal(t, 3, data.Pagination.TotalPages)
}

func TestDashboardPage_PastTheEnd(t *testing.T) {
	row := &sqlconfig.Config{ID: uuid.Must(uuid.NewV4()), Name: "Owner"}

	configTable := new(mockConfigTable)
	configTable.On("FindSingleton", mock.Anything).Return(row, nil)

	ledger := new(mockLedgerReader)
	ledger.On("ListPage", mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == 2 && f.Offset == 8
	})).Return(&storage.LedgerPage{Transactions: nil, Total: 5}, nil)

	svc := NewLedgerService(newLedgerStorage(configTable, ledger))

	data, err := svc.DashboardPage(context.Background(), 5, 2, "-date")
	assert.NoError(t, err)
	assert.Empty(t, data.Transactions)
	assert.False(t, data.Pagination.HasMore)
	assert.Equal(t, 5, data.Pagination.Page)
}

func TestDashboardPage_AscendingSort(t *testing.T) {
	row := &sqlconfig.Config{ID: uuid.Must(uuid.NewV4()), Name: "Owner"}

	configTable := new(mockConfigTable)
	configTable.On("FindSingleton", mock.Anything).Return(row, nil)

	ledger := new(mockLedgerReader)
	ledger.On("ListPage", mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.DateAscending
	})).Return(&storage.LedgerPage{Transactions: nil, Total: 0}, nil)

	svc := NewLedgerService(newLedgerStorage(configTable, ledger))

	data, err := svc.DashboardPage(context.Background(), 1, 10, "date")
	assert.NoError(t, err)
	assert.Equal(t, 0, data.Pagination.TotalPages)
	ledger.AssertExpectations(t)
}

func TestDashboardPage_NegativePageClamped(t *testing.T) {
	row := &sqlconfig.Config{ID: uuid.Must(uuid.NewV4()), Name: "Owner"}

	configTable := new(mockConfigTable)
	configTable.On("FindSingleton", mock.Anything).Return(row, nil)

	ledger := new(mockLedgerReader)
	ledger.On("ListPage", mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Offset == 0
	})).Return(&storage.LedgerPage{Transactions: nil, Total: 0}, nil)

	svc := NewLedgerService(newLedgerStorage(configTable, ledger))

	data, err := svc.DashboardPage(context.Background(), -3, 10, "")
	assert.NoError(t, err)
	assert.Equal(t, 1, data.Pagination.Page)
	ledger.AssertExpectations(t)
}

func TestDashboardPage_NoConfig(t *testing.T) {
	configTable := new(mockConfigTable)
	configTable.On("FindSingleton", mock.Anything).Return(nil, sql.ErrNoRows)

	svc := NewLedgerService(newLedgerStorage(configTable, new(mockLedgerReader)))

	_, err := svc.DashboardPage(context.Background(), 1, 10, "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
