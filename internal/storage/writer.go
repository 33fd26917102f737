package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// Writer binds the table gateways used by the write path to one database
// transaction.
type Writer struct {
	tx bob.Tx

	Transactions sqlconfig.ITransactionTable
	Templates    sqlconfig.ITemplateTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: sqlconfig.NewTransactionTable(tx),
		Templates:    sqlconfig.NewTemplateTable(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
