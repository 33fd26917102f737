package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record. Reference fields hold bare
// ids; resolution to full lookup records happens in the ledger reader.
type Transaction struct {
	ID                uuid.UUID       `db:"id"`
	Name              string          `db:"name"`
	Amount            decimal.Decimal `db:"amount"`
	NetAmount         decimal.Decimal `db:"net_amount"`
	TypeID            uuid.UUID       `db:"type_id"`
	Date              time.Time       `db:"date"`
	FundingSourceID   uuid.NullUUID   `db:"funding_source_id"`
	WealthComponentID uuid.UUID       `db:"wealth_component_id"`
	Description       string          `db:"description"`
	CreatedAt         time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Name              string
	Amount            decimal.Decimal
	NetAmount         decimal.Decimal
	TypeID            uuid.UUID
	Date              time.Time // defaults to now if zero
	FundingSourceID   uuid.NullUUID
	WealthComponentID uuid.UUID
	Description       string
}

// TransactionFilter specifies the window and ordering for listing
// transactions. There is no field filtering: every call scans the full
// collection, which is a known scalability ceiling of the dashboard contract.
type TransactionFilter struct {
	Limit         int
	Offset        int
	DateAscending bool
}

// TagLink is one row of the transaction_tags join table.
type TagLink struct {
	TransactionID uuid.UUID `db:"transaction_id"`
	TagID         uuid.UUID `db:"tag_id"`
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ITransactionTable interface {
	FindByNameAndDate(ctx context.Context, name string, date time.Time) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	InsertTagLinks(ctx context.Context, transactionID uuid.UUID, tagIDs []uuid.UUID) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	ListTagLinks(ctx context.Context, transactionIDs []uuid.UUID) ([]TagLink, error)
	Count(ctx context.Context) (int64, error)
}
