package dashboard

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Config is the API response model for the access configuration shown on the
// dashboard.
type Config struct {
	ConfigID  string `json:"configId" doc:"Configuration UUID"`
	Name      string `json:"name" doc:"Display name of the owner"`
	LastLogin string `json:"lastLogin,omitempty" doc:"RFC3339 time of the last successful login"`
}

// LookupRef is a resolved reference record embedded in a transaction.
type LookupRef struct {
	ID       string `json:"id" doc:"Reference UUID"`
	Name     string `json:"name" doc:"Reference name"`
	Color    string `json:"color" doc:"Display color"`
	IsActive bool   `json:"isActive" doc:"Whether the reference is active"`
}

// Transaction is the API response model for a fully resolved transaction.
type Transaction struct {
	ID              string      `json:"id" doc:"Transaction UUID"`
	Name            string      `json:"name" doc:"Name of the transaction"`
	Amount          string      `json:"amount" doc:"Decimal amount, non-negative"`
	NetAmount       string      `json:"netAmount" doc:"Signed decimal net amount"`
	Type            *LookupRef  `json:"type" doc:"Resolved transaction type"`
	Date            string      `json:"date" doc:"RFC3339 transaction date"`
	Tags            []LookupRef `json:"tags" doc:"Resolved tags"`
	FundingSource   *LookupRef  `json:"fundingSource,omitempty" doc:"Resolved funding source"`
	WealthComponent *LookupRef  `json:"wealthComponent" doc:"Resolved wealth component"`
	Description     string      `json:"description,omitempty" doc:"Free-form description"`
	CreatedAt       string      `json:"createdAt" doc:"RFC3339 creation time"`
}

// Pagination describes the returned window of the ledger.
type Pagination struct {
	Page       int   `json:"page" doc:"1-based page number"`
	Limit      int   `json:"limit" doc:"Page size"`
	Total      int64 `json:"total" doc:"Total transaction count"`
	HasMore    bool  `json:"hasMore" doc:"Whether further pages exist"`
	TotalPages int   `json:"totalPages" doc:"Total page count at this limit"`
}

func configFromService(config *service.Config) Config {
	converted := Config{
		ConfigID: config.ID.String(),
		Name:     config.Name,
	}
	if config.LastLogin != nil {
		converted.LastLogin = config.LastLogin.Format(time.RFC3339)
	}
	return converted
}

func lookupRefFromService(ref *service.LookupRef) *LookupRef {
	if ref == nil {
		return nil
	}
	return &LookupRef{
		ID:       ref.ID.String(),
		Name:     ref.Name,
		Color:    ref.Color,
		IsActive: ref.IsActive,
	}
}

func transactionFromService(tx service.Transaction) Transaction {
	converted := Transaction{
		ID:              tx.ID.String(),
		Name:            tx.Name,
		Amount:          tx.Amount.String(),
		NetAmount:       tx.NetAmount.String(),
		Type:            lookupRefFromService(tx.Type),
		Date:            tx.Date.Format(time.RFC3339),
		Tags:            make([]LookupRef, 0, len(tx.Tags)),
		FundingSource:   lookupRefFromService(tx.FundingSource),
		WealthComponent: lookupRefFromService(tx.WealthComponent),
		Description:     tx.Description,
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339),
	}
	for i := range tx.Tags {
		converted.Tags = append(converted.Tags, *lookupRefFromService(&tx.Tags[i]))
	}
	return converted
}
