package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Template is a reusable transaction blueprint. Materializing applies
// DateOffset (in days) to the current date.
type Template struct {
	ID                uuid.UUID       `db:"id"`
	Name              string          `db:"name"`
	Amount            decimal.Decimal `db:"amount"`
	NetAmount         decimal.Decimal `db:"net_amount"`
	TypeID            uuid.UUID       `db:"type_id"`
	DateOffset        int             `db:"date_offset"`
	FundingSourceID   uuid.NullUUID   `db:"funding_source_id"`
	WealthComponentID uuid.UUID       `db:"wealth_component_id"`
	IsActive          bool            `db:"is_active"`
	Description       string          `db:"description"`
	CreatedAt         time.Time       `db:"created_at"`
}

// ToTransactionCreate materializes the template relative to now.
func (t *Template) ToTransactionCreate(now time.Time) *TransactionCreate {
	return &TransactionCreate{
		Name:              t.Name,
		Amount:            t.Amount,
		NetAmount:         t.NetAmount,
		TypeID:            t.TypeID,
		Date:              now.AddDate(0, 0, t.DateOffset),
		FundingSourceID:   t.FundingSourceID,
		WealthComponentID: t.WealthComponentID,
		Description:       t.Description,
	}
}

// TemplateCreate is the input for creating a new template.
type TemplateCreate struct {
	Name              string
	Amount            decimal.Decimal
	NetAmount         decimal.Decimal
	TypeID            uuid.UUID
	DateOffset        int
	FundingSourceID   uuid.NullUUID
	WealthComponentID uuid.UUID
	Description       string
}

// TemplateTagLink is one row of the template_tags join table.
type TemplateTagLink struct {
	TemplateID uuid.UUID `db:"template_id"`
	TagID      uuid.UUID `db:"tag_id"`
}

// ITemplateTable defines the interface for template storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ITemplateTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Template, error)
	// FindByName returns (nil, nil) when no record matches.
	FindByName(ctx context.Context, name string) (*Template, error)
	Insert(ctx context.Context, create *TemplateCreate) (uuid.UUID, error)
	InsertTagLinks(ctx context.Context, templateID uuid.UUID, tagIDs []uuid.UUID) error
	ListTagLinks(ctx context.Context, templateIDs []uuid.UUID) ([]TemplateTagLink, error)
	Count(ctx context.Context) (int64, error)
}
