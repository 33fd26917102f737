package operator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/ledger-server/internal/storage"
)

func TestProcess_ContextCancelled(t *testing.T) {
	// No workers started: the item stays queued and Process unblocks via ctx.
	delegator := NewOperatorDelegator(&storage.Storage{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := delegator.Process(ctx, &noopAction{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStop_Idempotent(t *testing.T) {
	delegator := NewOperatorDelegator(&storage.Storage{}, 1)

	delegator.Stop()
	delegator.Stop()
}

func TestNewOperatorDelegator_ClampsWorkerCount(t *testing.T) {
	delegator := NewOperatorDelegator(&storage.Storage{}, 0)
	assert.Equal(t, 1, delegator.numWorkers)
}

type noopAction struct{}

func (a *noopAction) Name() string { return "Noop" }

func (a *noopAction) Perform(ctx context.Context, writer *storage.Writer) error { return nil }
