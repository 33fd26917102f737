package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITemplateTable = (*TemplateTable)(nil)

var templateColumns = []any{
	"id", "name", "amount", "net_amount", "type_id", "date_offset",
	"funding_source_id", "wealth_component_id", "is_active", "description", "created_at",
}

type TemplateTable struct {
	exec bob.Executor
}

func NewTemplateTable(exec bob.Executor) *TemplateTable {
	return &TemplateTable{exec: exec}
}

// FindByID retrieves a template by primary key.
func (t *TemplateTable) FindByID(ctx context.Context, id uuid.UUID) (*Template, error) {
	query := psql.Select(
		sm.Columns(templateColumns...),
		sm.From("templates"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return bob.One(ctx, t.exec, query, scan.StructMapper[*Template]())
}

// FindByName retrieves a template by name, or (nil, nil) when absent.
func (t *TemplateTable) FindByName(ctx context.Context, name string) (*Template, error) {
	query := psql.Select(
		sm.Columns(templateColumns...),
		sm.From("templates"),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Template]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert creates a new template and returns its generated ID.
func (t *TemplateTable) Insert(ctx context.Context, create *TemplateCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("templates",
			"name", "amount", "net_amount", "type_id", "date_offset",
			"funding_source_id", "wealth_component_id", "description",
		),
		im.Values(psql.Arg(
			create.Name, create.Amount, create.NetAmount, create.TypeID, create.DateOffset,
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

// InsertTagLinks attaches tags to a template. No-op for an empty tag set.
func (t *TemplateTable) InsertTagLinks(ctx context.Context, templateID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}

	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("template_tags", "template_id", "tag_id"),
	}
	for _, tagID := range tagIDs {
		queryMods = append(queryMods, im.Values(psql.Arg(templateID, tagID)))
	}

	_, err := bob.Exec(ctx, t.exec, psql.Insert(queryMods...))
	return err
}

// ListTagLinks returns the tag join rows for the given templates.
func (t *TemplateTable) ListTagLinks(ctx context.Context, templateIDs []uuid.UUID) ([]TemplateTagLink, error) {
	if len(templateIDs) == 0 {
		return nil, nil
	}

	args := make([]any, len(templateIDs))
	for i, id := range templateIDs {
		args[i] = id
	}

	query := psql.Select(
		sm.Columns("template_id", "tag_id"),
		sm.From("template_tags"),
		sm.Where(psql.Quote("template_id").In(psql.Arg(args...))),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[TemplateTagLink]())
}

// Count returns the number of templates.
func (t *TemplateTable) Count(ctx context.Context) (int64, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From("templates"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
}
