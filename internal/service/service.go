package service

import (
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/token"
)

// Service holds all business logic services.
type Service struct {
	Auth   *AuthService
	Ledger *LedgerService
}

// NewService creates a new Service with the given storage and token service.
func NewService(store *storage.Storage, tokens *token.Service) *Service {
	return &Service{
		Auth:   NewAuthService(store, tokens),
		Ledger: NewLedgerService(store),
	}
}
