package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/freight-estimator/internal/worker"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// loopWorker крутится до остановки
type loopWorker struct {
	*worker.BaseWorker
	started atomic.Int32
}

func newLoopWorker(name string) *loopWorker {
	return &loopWorker{BaseWorker: worker.NewBaseWorker(name, "group", zap.NewNop())}
}

func (w *loopWorker) Start(ctx context.Context) error {
	w.started.Add(1)
	for w.Wait(ctx, 5*time.Millisecond) {
	}
	return ctx.Err()
}

// stuckWorker игнорирует Stop
type stuckWorker struct {
	release chan struct{}
}

func (w *stuckWorker) Start(context.Context) error {
	<-w.release
	return nil
}

func (w *stuckWorker) Stop() error  { return nil }
func (w *stuckWorker) Name() string { return "stuck" }

func TestWorkerManager_StartStop(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	a, b := newLoopWorker("a"), newLoopWorker("b")
	m.Register(a)
	m.Register(b)

	require.NoError(t, m.Start(context.Background()))

	assert.Eventually(t, func() bool {
		return a.started.Load() == 1 && b.started.Load() == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())
}

// flakyWorker падает failures раз, затем работает до остановки
type flakyWorker struct {
	*worker.BaseWorker
	failures int32
	started  atomic.Int32
}

func (w *flakyWorker) Start(ctx context.Context) error {
	if w.started.Add(1) <= w.failures {
		return errors.New("redis unavailable")
	}
	for w.Wait(ctx, 5*time.Millisecond) {
	}
	return nil
}

func TestWorkerManager_RestartsFailedWorker(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	m.SetRestartDelay(5 * time.Millisecond)

	w := &flakyWorker{BaseWorker: worker.NewBaseWorker("flaky", "group", zap.NewNop()), failures: 2}
	m.Register(w)
	require.NoError(t, m.Start(context.Background()))

	assert.Eventually(t, func() bool {
		return w.started.Load() == 3
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.Equal(t, int32(3), w.started.Load())
}

func TestWorkerManager_StopInterruptsRestartDelay(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	m.SetRestartDelay(time.Hour)
	m.SetShutdownTimeout(time.Second)

	w := &flakyWorker{BaseWorker: worker.NewBaseWorker("flaky", "group", zap.NewNop()), failures: 100}
	m.Register(w)
	require.NoError(t, m.Start(context.Background()))

	assert.Eventually(t, func() bool {
		return w.started.Load() == 1
	}, time.Second, 5*time.Millisecond)

	assert.NoError(t, m.Stop())
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
}

func TestWorkerManager_ContextCancel(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	m.Register(newLoopWorker("a"))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, m.Start(ctx))
	cancel()

	assert.NoError(t, m.Stop())
}

func TestWorkerManager_ShutdownTimeout(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	m.SetShutdownTimeout(20 * time.Millisecond)

	w := &stuckWorker{release: make(chan struct{})}
	m.Register(w)
	require.NoError(t, m.Start(context.Background()))

	err := m.Stop()
	assert.Error(t, err)

	// Отпускаем горутины, чтобы не было утечки
	close(w.release)
	time.Sleep(20 * time.Millisecond)
}

func TestBaseWorker_Wait(t *testing.T) {
	w := worker.NewBaseWorker("wait", "group", zap.NewNop())

	assert.True(t, w.Wait(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, w.Wait(ctx, time.Hour))

	require.NoError(t, w.Stop())
	assert.False(t, w.Wait(context.Background(), time.Hour))
	assert.False(t, w.Wait(context.Background(), 0))
	assert.Equal(t, "group", w.ConsumerGroup())
}
