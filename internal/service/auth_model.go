package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// Config represents the access configuration in the service layer, with the
// stored secret already stripped.
type Config struct {
	ID        uuid.UUID
	Name      string
	LastLogin *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func configFromStorage(row *sqlconfig.Config) *Config {
	converted := &Config{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.LastLogin.Valid {
		lastLogin := row.LastLogin.Time
		converted.LastLogin = &lastLogin
	}
	return converted
}
