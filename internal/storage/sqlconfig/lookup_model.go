package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Lookup is a small reference entity (transaction type, tag, wealth
// component, funding source). All four live in identically shaped tables and
// share one gateway implementation.
type Lookup struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Color     string    `db:"color"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

// LookupCreate is the input for creating a lookup record.
type LookupCreate struct {
	Name  string
	Color string
}

// ILookupTable defines the interface for lookup storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ILookupTable interface {
	List(ctx context.Context) ([]*Lookup, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Lookup, error)
	// FindByName returns (nil, nil) when no record matches; the seeder
	// relies on this for its existence checks.
	FindByName(ctx context.Context, name string) (*Lookup, error)
	Insert(ctx context.Context, create *LookupCreate) (uuid.UUID, error)
	Count(ctx context.Context) (int64, error)
}
