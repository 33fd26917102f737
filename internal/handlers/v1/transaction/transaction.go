package transaction

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// actionProcessor routes a write action through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
