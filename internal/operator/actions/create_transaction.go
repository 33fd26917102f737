package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// CreateTransaction inserts a ledger transaction and its tag links.
type CreateTransaction struct {
	TransactionName   string
	Amount            decimal.Decimal
	NetAmount         decimal.Decimal
	TypeID            uuid.UUID
	Date              time.Time
	TagIDs            []uuid.UUID
	FundingSourceID   uuid.NullUUID
	WealthComponentID uuid.UUID
	Description       string
}

func (c *CreateTransaction) Name() string {
	return "CreateTransaction"
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	transactionID, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Name:              c.TransactionName,
		Amount:            c.Amount,
		NetAmount:         c.NetAmount,
		TypeID:            c.TypeID,
		Date:              c.Date,
		FundingSourceID:   c.FundingSourceID,
		WealthComponentID: c.WealthComponentID,
		Description:       c.Description,
	})
	if err != nil {
		return err
	}

	return writer.Transactions.InsertTagLinks(ctx, transactionID, c.TagIDs)
}
