package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
	"github.com/carson-networks/ledger-server/internal/token"
)

// MinPasswordLength is the minimum accepted length for a new access password.
const MinPasswordLength = 6

// AuthService implements the credential-store side of the auth gate: password
// verification against the singleton config record and the token lifecycle
// built on top of it.
type AuthService struct {
	storage *storage.Storage
	tokens  *token.Service
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *storage.Storage, tokens *token.Service) *AuthService {
	return &AuthService{storage: store, tokens: tokens}
}

// Login verifies the submitted access password and issues a session token.
// A successful login updates last_login; the returned config carries the new
// value.
func (s *AuthService) Login(ctx context.Context, accessPassword string) (*Config, string, error) {
	row, err := s.storage.Config.FindSingleton(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrNotConfigured
	}
	if err != nil {
		return nil, "", err
	}

	if !auth.ComparePassword(row.AccessPassword, accessPassword) {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.storage.Config.TouchLastLogin(ctx, row.ID, now); err != nil {
		return nil, "", err
	}

	issued, err := s.tokens.Issue(row.ID, row.Name)
	if err != nil {
		return nil, "", err
	}

	converted := configFromStorage(row)
	converted.LastLogin = &now
	return converted, issued, nil
}

// Authenticate verifies a bearer token and re-loads the config record it
// references, rejecting tokens issued before a configuration reset. Every
// failure collapses to ErrInvalidToken.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (*token.Claims, error) {
	claims, err := s.tokens.Verify(rawToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	configID, err := uuid.FromString(claims.ConfigID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if _, err := s.storage.Config.FindByID(ctx, configID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return claims, nil
}

// Refresh issues a new token with the same claim shape and a fresh expiry.
func (s *AuthService) Refresh(ctx context.Context, configID string) (string, error) {
	row, err := s.findByClaimID(ctx, configID)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(row.ID, row.Name)
}

// Profile returns the config record minus the stored secret.
func (s *AuthService) Profile(ctx context.Context, configID string) (*Config, error) {
	row, err := s.findByClaimID(ctx, configID)
	if err != nil {
		return nil, err
	}
	return configFromStorage(row), nil
}

// UpdatePassword re-verifies the current password before storing the new
// hash. It does not touch last_login; only logins do.
func (s *AuthService) UpdatePassword(ctx context.Context, configID, currentPassword, newPassword string) error {
	row, err := s.findByClaimID(ctx, configID)
	if err != nil {
		return err
	}

	if !auth.ComparePassword(row.AccessPassword, currentPassword) {
		return ErrInvalidCredentials
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.storage.Config.UpdatePassword(ctx, row.ID, hashed)
}

func (s *AuthService) findByClaimID(ctx context.Context, configID string) (*sqlconfig.Config, error) {
	id, err := uuid.FromString(configID)
	if err != nil {
		return nil, ErrNotConfigured
	}

	row, err := s.storage.Config.FindByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotConfigured
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}
