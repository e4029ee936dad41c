package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/worker"
)

type blockingWorker struct {
	*worker.Base
	started chan struct{}
}

func newBlockingWorker(name string) *blockingWorker {
	return &blockingWorker{
		Base:    worker.NewBase(name, "group", "consumer", zap.NewNop()),
		started: make(chan struct{}),
	}
}

func (w *blockingWorker) Start(ctx context.Context) error {
	close(w.started)
	select {
	case <-w.Stopped():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type stuckWorker struct {
	*worker.Base
}

func (w *stuckWorker) Start(context.Context) error {
	time.Sleep(time.Second)
	return nil
}

func TestManager_StartWithoutWorkers(t *testing.T) {
	m := worker.NewManager(time.Second, zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
}

func TestManager_StartStop(t *testing.T) {
	m := worker.NewManager(time.Second, zap.NewNop())
	a, b := newBlockingWorker("a"), newBlockingWorker("b")
	m.Register(a)
	m.Register(b)

	require.NoError(t, m.Start(context.Background()))
	<-a.started
	<-b.started

	assert.NoError(t, m.Stop())
}

func TestManager_StopTimeout(t *testing.T) {
	m := worker.NewManager(10*time.Millisecond, zap.NewNop())
	m.Register(&stuckWorker{Base: worker.NewBase("stuck", "group", "consumer", zap.NewNop())})

	require.NoError(t, m.Start(context.Background()))
	assert.ErrorContains(t, m.Stop(), "timed out")
}
