package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IConfigTable = (*ConfigTable)(nil)

var configColumns = []any{"id", "name", "access_password", "last_login", "created_at", "updated_at"}

type ConfigTable struct {
	exec bob.Executor
}

func NewConfigTable(exec bob.Executor) *ConfigTable {
	return &ConfigTable{exec: exec}
}

// FindSingleton retrieves the single config record. Returns sql.ErrNoRows
// (wrapped) when the deployment has not been bootstrapped.
func (t *ConfigTable) FindSingleton(ctx context.Context) (*Config, error) {
	query := psql.Select(
		sm.Columns(configColumns...),
		sm.From("config"),
		sm.Limit(1),
	)
	return bob.One(ctx, t.exec, query, scan.StructMapper[*Config]())
}

// FindByID retrieves the config record by primary key.
func (t *ConfigTable) FindByID(ctx context.Context, id uuid.UUID) (*Config, error) {
	query := psql.Select(
		sm.Columns(configColumns...),
		sm.From("config"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return bob.One(ctx, t.exec, query, scan.StructMapper[*Config]())
}

// Insert creates the config record and returns its generated ID.
func (t *ConfigTable) Insert(ctx context.Context, create *ConfigCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("config", "name", "access_password"),
		im.Values(psql.Arg(create.Name, create.AccessPassword)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdatePassword replaces the stored hash. It deliberately does not touch
// last_login.
func (t *ConfigTable) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	query := psql.Update(
		um.Table("config"),
		um.SetCol("access_password").ToArg(hashedPassword),
		um.SetCol("updated_at").ToArg(time.Now()),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}

// TouchLastLogin records a successful login. Last write wins; concurrent
// logins are not serialized.
func (t *ConfigTable) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := psql.Update(
		um.Table("config"),
		um.SetCol("last_login").ToArg(at),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}
