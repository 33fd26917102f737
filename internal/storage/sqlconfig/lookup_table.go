package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ILookupTable = (*LookupTable)(nil)

var lookupColumns = []any{"id", "name", "color", "is_active", "created_at"}

// LookupTable is a gateway over one of the lookup tables. The table name is
// fixed at construction; see storage.NewStorage for the bound instances.
type LookupTable struct {
	exec  bob.Executor
	table string
}

func NewLookupTable(exec bob.Executor, table string) *LookupTable {
	return &LookupTable{exec: exec, table: table}
}

// List returns every lookup record ordered by name.
func (t *LookupTable) List(ctx context.Context) ([]*Lookup, error) {
	query := psql.Select(
		sm.Columns(lookupColumns...),
		sm.From(t.table),
		sm.OrderBy(psql.Quote("name")).Asc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[*Lookup]())
}

// ListByIDs batch-fetches lookup records for reference resolution.
func (t *LookupTable) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Lookup, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := psql.Select(
		sm.Columns(lookupColumns...),
		sm.From(t.table),
		sm.Where(psql.Quote("id").In(psql.Arg(args...))),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[*Lookup]())
}

// FindByName retrieves a lookup record by its unique name, or (nil, nil)
// when absent.
func (t *LookupTable) FindByName(ctx context.Context, name string) (*Lookup, error) {
	query := psql.Select(
		sm.Columns(lookupColumns...),
		sm.From(t.table),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Lookup]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert creates a lookup record and returns its generated ID.
func (t *LookupTable) Insert(ctx context.Context, create *LookupCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into(t.table, "name", "color"),
		im.Values(psql.Arg(create.Name, create.Color)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Count returns the number of records in the lookup table.
func (t *LookupTable) Count(ctx context.Context) (int64, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From(t.table),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
}
