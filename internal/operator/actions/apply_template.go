package actions

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// ApplyTemplate materializes a template into a transaction by applying its
// day offset to today, copying the template's tag links.
type ApplyTemplate struct {
	TemplateID uuid.UUID
}

func (a *ApplyTemplate) Name() string {
	return "ApplyTemplate"
}

func (a *ApplyTemplate) Perform(ctx context.Context, writer *storage.Writer) error {
	template, err := writer.Templates.FindByID(ctx, a.TemplateID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTemplateNotFound
	}
	if err != nil {
		return err
	}
	if !template.IsActive {
		return ErrTemplateNotFound
	}

	transactionID, err := writer.Transactions.Insert(ctx, template.ToTransactionCreate(time.Now()))
	if err != nil {
		return err
	}

	links, err := writer.Templates.ListTagLinks(ctx, []uuid.UUID{template.ID})
	if err != nil {
		return err
	}
	if len(links) == 0 {
		return nil
	}

	tagIDs := make([]uuid.UUID, len(links))
	for i, link := range links {
		tagIDs[i] = link.TagID
	}
	return writer.Transactions.InsertTagLinks(ctx, transactionID, tagIDs)
}
