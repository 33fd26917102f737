package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionTable)(nil)

var transactionColumns = []any{
	"id", "name", "amount", "net_amount", "type_id", "date",
	"funding_source_id", "wealth_component_id", "description", "created_at",
}

type TransactionTable struct {
	exec bob.Executor
}

func NewTransactionTable(exec bob.Executor) *TransactionTable {
	return &TransactionTable{exec: exec}
}

// FindByNameAndDate retrieves a transaction by its name and occurrence date.
// Used by the seeder for idempotence checks.
func (t *TransactionTable) FindByNameAndDate(ctx context.Context, name string, date time.Time) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		psql.WhereAnd(
			sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
			sm.Where(psql.Quote("date").EQ(psql.Arg(date))),
		),
	)
	return bob.One(ctx, t.exec, query, scan.StructMapper[*Transaction]())
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	date := create.Date
	if date.IsZero() {
		date = time.Now()
	}

	query := psql.Insert(
		im.Into("transactions",
			"name", "amount", "net_amount", "type_id", "date",
			"funding_source_id", "wealth_component_id", "description",
		),
		im.Values(psql.Arg(
			create.Name, create.Amount, create.NetAmount, create.TypeID, date,
			create.FundingSourceID, create.WealthComponentID, create.Description,
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// InsertTagLinks attaches tags to a transaction. No-op for an empty tag set.
func (t *TransactionTable) InsertTagLinks(ctx context.Context, transactionID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}

	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("transaction_tags", "transaction_id", "tag_id"),
	}
	for _, tagID := range tagIDs {
		queryMods = append(queryMods, im.Values(psql.Arg(transactionID, tagID)))
	}

	_, err := bob.Exec(ctx, t.exec, psql.Insert(queryMods...))
	return err
}

// List returns the requested window of transactions ordered by occurrence
// date. Ties break on id so pages are stable.
func (t *TransactionTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
	}
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	if filter != nil && filter.DateAscending {
		queryMods = append(queryMods,
			sm.OrderBy(psql.Quote("date")).Asc(),
			sm.OrderBy(psql.Quote("id")).Asc(),
		)
	} else {
		queryMods = append(queryMods,
			sm.OrderBy(psql.Quote("date")).Desc(),
			sm.OrderBy(psql.Quote("id")).Desc(),
		)
	}

	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}

// ListTagLinks returns the tag join rows for the given transactions.
func (t *TransactionTable) ListTagLinks(ctx context.Context, transactionIDs []uuid.UUID) ([]TagLink, error) {
	if len(transactionIDs) == 0 {
		return nil, nil
	}

	args := make([]any, len(transactionIDs))
	for i, id := range transactionIDs {
		args[i] = id
	}

	query := psql.Select(
		sm.Columns("transaction_id", "tag_id"),
		sm.From("transaction_tags"),
		sm.Where(psql.Quote("transaction_id").In(psql.Arg(args...))),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[TagLink]())
}

// Count returns the total number of transactions in the ledger.
func (t *TransactionTable) Count(ctx context.Context) (int64, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From("transactions"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
}
