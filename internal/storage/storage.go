package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB *sql.DB

	Config       sqlconfig.IConfigTable
	Transactions sqlconfig.ITransactionTable
	Templates    sqlconfig.ITemplateTable

	Types            sqlconfig.ILookupTable
	Tags             sqlconfig.ILookupTable
	WealthComponents sqlconfig.ILookupTable
	FundingSources   sqlconfig.ILookupTable

	Ledger ILedgerReader

	bdb bob.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	exec := bob.NewDB(db)

	transactions := sqlconfig.NewTransactionTable(exec)
	types := sqlconfig.NewLookupTable(exec, "types")
	tags := sqlconfig.NewLookupTable(exec, "tags")
	wealthComponents := sqlconfig.NewLookupTable(exec, "wealth_components")
	fundingSources := sqlconfig.NewLookupTable(exec, "funding_sources")

	return &Storage{
		DB:               db,
		Config:           sqlconfig.NewConfigTable(exec),
		Transactions:     transactions,
		Templates:        sqlconfig.NewTemplateTable(exec),
		Types:            types,
		Tags:             tags,
		WealthComponents: wealthComponents,
		FundingSources:   fundingSources,
		Ledger:           NewLedgerReader(transactions, types, tags, wealthComponents, fundingSources),
		bdb:              exec,
	}, nil
}

// Write opens a transactional writer. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
