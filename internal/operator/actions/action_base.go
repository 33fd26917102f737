package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// ErrTemplateNotFound means the referenced template does not exist or is
// inactive.
var ErrTemplateNotFound = errors.New("template not found")

// IAction is one unit of write work processed by the operator inside a
// single storage transaction.
type IAction interface {
	// Name identifies the action in logs.
	Name() string
	Perform(ctx context.Context, writer *storage.Writer) error
}
