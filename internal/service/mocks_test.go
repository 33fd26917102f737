package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type mockConfigTable struct {
	mock.Mock
}

func (m *mockConfigTable) FindSingleton(ctx context.Context) (*sqlconfig.Config, error) {
	args := m.Called(ctx)
	row, _ := args.Get(0).(*sqlconfig.Config)
	return row, args.Error(1)
}

func (m *mockConfigTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.Config, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*sqlconfig.Config)
	return row, args.Error(1)
}

func (m *mockConfigTable) Insert(ctx context.Context, create *sqlconfig.ConfigCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *mockConfigTable) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	args := m.Called(ctx, id, hashedPassword)
	return args.Error(0)
}

func (m *mockConfigTable) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type mockLedgerReader struct {
	mock.Mock
}

func (m *mockLedgerReader) ListPage(ctx context.Context, filter *sqlconfig.TransactionFilter) (*storage.LedgerPage, error) {
	args := m.Called(ctx, filter)
	page, _ := args.Get(0).(*storage.LedgerPage)
	return page, args.Error(1)
}
