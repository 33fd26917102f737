package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// LookupRef is a resolved reference record (type, tag, wealth component,
// funding source) embedded in a dashboard transaction.
type LookupRef struct {
	ID       uuid.UUID
	Name     string
	Color    string
	IsActive bool
}

// Transaction represents a fully resolved transaction in the service layer.
type Transaction struct {
	ID              uuid.UUID
	Name            string
	Amount          decimal.Decimal
	NetAmount       decimal.Decimal
	Type            *LookupRef
	Date            time.Time
	Tags            []LookupRef
	FundingSource   *LookupRef
	WealthComponent *LookupRef
	Description     string
	CreatedAt       time.Time
}

// Pagination describes the returned window of the ledger.
type Pagination struct {
	Page       int
	Limit      int
	Total      int64
	HasMore    bool
	TotalPages int
}

// DashboardData is everything the dashboard endpoint returns.
type DashboardData struct {
	Config       *Config
	Transactions []Transaction
	Pagination   Pagination
}

func lookupRefFromStorage(row *sqlconfig.Lookup) *LookupRef {
	if row == nil {
		return nil
	}
	return &LookupRef{
		ID:       row.ID,
		Name:     row.Name,
		Color:    row.Color,
		IsActive: row.IsActive,
	}
}

func transactionFromStorage(item *storage.ResolvedTransaction) Transaction {
	row := item.Transaction
	converted := Transaction{
		ID:              row.ID,
		Name:            row.Name,
		Amount:          row.Amount,
		NetAmount:       row.NetAmount,
		Type:            lookupRefFromStorage(item.Type),
		Date:            row.Date,
		FundingSource:   lookupRefFromStorage(item.FundingSource),
		WealthComponent: lookupRefFromStorage(item.WealthComponent),
		Description:     row.Description,
		CreatedAt:       row.CreatedAt,
	}
	for _, tag := range item.Tags {
		if ref := lookupRefFromStorage(tag); ref != nil {
			converted.Tags = append(converted.Tags, *ref)
		}
	}
	return converted
}
