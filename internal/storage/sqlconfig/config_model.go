package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Config is the singleton record gating access to the ledger. At most one row
// exists per deployment; it is created by the seeder and never deleted.
type Config struct {
	ID             uuid.UUID    `db:"id"`
	Name           string       `db:"name"`
	AccessPassword string       `db:"access_password"`
	LastLogin      sql.NullTime `db:"last_login"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
}

// ConfigCreate is the input for creating the config record. AccessPassword
// must already be hashed.
type ConfigCreate struct {
	Name           string
	AccessPassword string
}

// IConfigTable defines the interface for config storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IConfigTable interface {
	FindSingleton(ctx context.Context) (*Config, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Config, error)
	Insert(ctx context.Context, create *ConfigCreate) (uuid.UUID, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
