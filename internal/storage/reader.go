package storage

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// ResolvedTransaction is a transaction with every reference field resolved to
// its full lookup record. Resolution happens at read time; nothing is
// denormalized into the transactions table.
type ResolvedTransaction struct {
	Transaction     *sqlconfig.Transaction
	Type            *sqlconfig.Lookup
	Tags            []*sqlconfig.Lookup
	WealthComponent *sqlconfig.Lookup
	FundingSource   *sqlconfig.Lookup
}

// LedgerPage is one window of the ledger plus the total matching count.
type LedgerPage struct {
	Transactions []*ResolvedTransaction
	Total        int64
}

// ILedgerReader defines the interface for paginated ledger reads.
// This abstraction allows swapping the implementation without changing callers.
type ILedgerReader interface {
	ListPage(ctx context.Context, filter *sqlconfig.TransactionFilter) (*LedgerPage, error)
}

var _ ILedgerReader = (*LedgerReader)(nil)

// LedgerReader serves the dashboard read path: fetch one page of
// transactions, batch-fetch the lookup records they reference, and stitch
// them together. The query service above it never sees storage-level join
// mechanics.
type LedgerReader struct {
	transactions     sqlconfig.ITransactionTable
	types            sqlconfig.ILookupTable
	tags             sqlconfig.ILookupTable
	wealthComponents sqlconfig.ILookupTable
	fundingSources   sqlconfig.ILookupTable
}

func NewLedgerReader(
	transactions sqlconfig.ITransactionTable,
	types sqlconfig.ILookupTable,
	tags sqlconfig.ILookupTable,
	wealthComponents sqlconfig.ILookupTable,
	fundingSources sqlconfig.ILookupTable,
) *LedgerReader {
	return &LedgerReader{
		transactions:     transactions,
		types:            types,
		tags:             tags,
		wealthComponents: wealthComponents,
		fundingSources:   fundingSources,
	}
}

// ListPage returns the requested window with references resolved and the
// total transaction count for pagination metadata.
func (r *LedgerReader) ListPage(ctx context.Context, filter *sqlconfig.TransactionFilter) (*LedgerPage, error) {
	rows, err := r.transactions.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := r.transactions.Count(ctx)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return &LedgerPage{Transactions: nil, Total: total}, nil
	}

	transactionIDs := make([]uuid.UUID, len(rows))
	typeIDs := newIDSet()
	wealthIDs := newIDSet()
	fundingIDs := newIDSet()
	for i, row := range rows {
		transactionIDs[i] = row.ID
		typeIDs.add(row.TypeID)
		wealthIDs.add(row.WealthComponentID)
		if row.FundingSourceID.Valid {
			fundingIDs.add(row.FundingSourceID.UUID)
		}
	}

	tagLinks, err := r.transactions.ListTagLinks(ctx, transactionIDs)
	if err != nil {
		return nil, err
	}
	tagIDs := newIDSet()
	tagsByTransaction := make(map[uuid.UUID][]uuid.UUID)
	for _, link := range tagLinks {
		tagIDs.add(link.TagID)
		tagsByTransaction[link.TransactionID] = append(tagsByTransaction[link.TransactionID], link.TagID)
	}

	typesByID, err := fetchLookups(ctx, r.types, typeIDs.values())
	if err != nil {
		return nil, err
	}
	wealthByID, err := fetchLookups(ctx, r.wealthComponents, wealthIDs.values())
	if err != nil {
		return nil, err
	}
	fundingByID, err := fetchLookups(ctx, r.fundingSources, fundingIDs.values())
	if err != nil {
		return nil, err
	}
	tagsByID, err := fetchLookups(ctx, r.tags, tagIDs.values())
	if err != nil {
		return nil, err
	}

	resolved := make([]*ResolvedTransaction, len(rows))
	for i, row := range rows {
		item := &ResolvedTransaction{
			Transaction:     row,
			Type:            typesByID[row.TypeID],
			WealthComponent: wealthByID[row.WealthComponentID],
		}
		if row.FundingSourceID.Valid {
			item.FundingSource = fundingByID[row.FundingSourceID.UUID]
		}
		for _, tagID := range tagsByTransaction[row.ID] {
			if tag := tagsByID[tagID]; tag != nil {
				item.Tags = append(item.Tags, tag)
			}
		}
		resolved[i] = item
	}

	return &LedgerPage{Transactions: resolved, Total: total}, nil
}

func fetchLookups(ctx context.Context, table sqlconfig.ILookupTable, ids []uuid.UUID) (map[uuid.UUID]*sqlconfig.Lookup, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := table.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*sqlconfig.Lookup, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	return byID, nil
}

// idSet collects distinct ids preserving first-seen order.
type idSet struct {
	seen map[uuid.UUID]struct{}
	ids  []uuid.UUID
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[uuid.UUID]struct{})}
}

func (s *idSet) add(id uuid.UUID) {
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *idSet) values() []uuid.UUID {
	return s.ids
}
