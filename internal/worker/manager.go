package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultShutdownTimeout - максимальное время ожидания завершения воркеров
	DefaultShutdownTimeout = 30 * time.Second
	// DefaultRestartDelay - пауза перед перезапуском упавшего воркера
	DefaultRestartDelay = 5 * time.Second
)

// WorkerManager запускает воркеры, перезапускает упавшие и останавливает их с таймаутом
type WorkerManager struct {
	workers         []Worker
	logger          *zap.Logger
	wg              sync.WaitGroup
	mu              sync.Mutex
	shutdownTimeout time.Duration
	restartDelay    time.Duration
	stopping        chan struct{}
	stopOnce        sync.Once
}

func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{
		workers:         make([]Worker, 0),
		logger:          logger,
		shutdownTimeout: DefaultShutdownTimeout,
		restartDelay:    DefaultRestartDelay,
		stopping:        make(chan struct{}),
	}
}

// SetShutdownTimeout меняет время ожидания в Stop
func (m *WorkerManager) SetShutdownTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shutdownTimeout = d
}

// SetRestartDelay меняет паузу перед перезапуском
func (m *WorkerManager) SetRestartDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.restartDelay = d
}

func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Start запускает все зарегистрированные воркеры и сразу возвращается
func (m *WorkerManager) Start(ctx context.Context) error {
	m.mu.Lock()
	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	delay := m.restartDelay
	m.mu.Unlock()

	if len(workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		m.wg.Add(1)
		go m.supervise(ctx, w, delay)
	}

	return nil
}

// supervise держит воркер запущенным, пока он не завершится без ошибки
// или пока не отменён ctx / не вызван Stop
func (m *WorkerManager) supervise(ctx context.Context, w Worker, delay time.Duration) {
	defer m.wg.Done()

	log := m.logger.With(zap.String("name", w.Name()))
	for attempt := 1; ; attempt++ {
		log.Info("Starting worker", zap.Int("attempt", attempt))

		err := w.Start(ctx)
		if err == nil || errors.Is(err, context.Canceled) {
			return
		}

		log.Error("Worker failed", zap.Error(err), zap.Int("attempt", attempt))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-m.stopping:
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// Stop сигнализирует воркерам и ждёт их завершения не дольше shutdownTimeout
func (m *WorkerManager) Stop() error {
	m.mu.Lock()
	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	timeout := m.shutdownTimeout
	m.mu.Unlock()

	m.stopOnce.Do(func() { close(m.stopping) })

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker",
				zap.String("name", w.Name()),
				zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped gracefully")
	case <-time.After(timeout):
		m.logger.Warn("Workers shutdown timed out, current batch may be redelivered",
			zap.Duration("timeout", timeout))
		return fmt.Errorf("workers shutdown timed out after %v", timeout)
	}

	return nil
}
