package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/freight-estimator/internal/domain"
	"github.com/freight-estimator/internal/domain/repository"
	"github.com/freight-estimator/internal/pkg/metrics"
	"github.com/freight-estimator/internal/usecase"
	"github.com/freight-estimator/internal/worker"
	"go.uber.org/zap"
)

const (
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста и чтение не блокирующее
	errorBackoff    = time.Second            // пауза после ошибки
)

// BatchProcessor сохраняет batch сообщений стрима в журнал
type BatchProcessor interface {
	ProcessBatch(ctx context.Context, messages []domain.StreamMessage) (*usecase.JournalBatchResult, error)
}

// Config - параметры воркера журнала
type Config struct {
	ConsumerGroup string
	BatchSize     int
	ReadTimeout   time.Duration
	// MaxRetries - сколько раз подряд batch может не записаться, прежде чем
	// его сообщения будут подтверждены и отброшены; 0 - повторять бесконечно
	MaxRetries   int
	ErrorBackoff time.Duration
}

// Worker читает события QuoteIssued и пишет их в журнал
type Worker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	processor  BatchProcessor
	metrics    *metrics.Collector
	cfg        Config
	failures   int
}

// NewWorker создает воркер журнала котировок
func NewWorker(
	streamRepo repository.StreamRepository,
	processor BatchProcessor,
	collector *metrics.Collector,
	cfg Config,
	logger *zap.Logger,
) *Worker {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.ErrorBackoff <= 0 {
		cfg.ErrorBackoff = errorBackoff
	}

	return &Worker{
		BaseWorker: worker.NewBaseWorker("quote-journal", cfg.ConsumerGroup, logger),
		streamRepo: streamRepo,
		processor:  processor,
		metrics:    collector,
		cfg:        cfg,
	}
}

// Start запускает воркер и блокируется до остановки
func (w *Worker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting quote journal worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.cfg.BatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamQuoteIssued, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.Wait(ctx, w.cfg.ErrorBackoff)
				continue
			}

			if processed == 0 && w.cfg.ReadTimeout <= 0 {
				w.Wait(ctx, emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает один batch.
// Возвращает количество прочитанных сообщений.
func (w *Worker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamQuoteIssued,
		w.ConsumerGroup(),
		w.ConsumerName(),
		int64(w.cfg.BatchSize),
		w.cfg.ReadTimeout,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	res, procErr := w.processor.ProcessBatch(ctx, messages)

	// Невалидные сообщения подтверждаем даже при ошибке записи
	if res != nil && len(res.Processed) > 0 {
		if err := w.ack(ctx, res.Processed); err != nil {
			logger.Warn("Failed to ack messages", zap.Error(err))
		}
		w.metrics.ObserveJournal("invalid", res.Invalid)
	}

	if procErr != nil {
		w.failures++
		if w.cfg.MaxRetries > 0 && w.failures >= w.cfg.MaxRetries {
			logger.Error("Dropping batch after repeated failures",
				zap.Int("messages", len(messages)),
				zap.Int("attempts", w.failures),
				zap.Error(procErr))
			w.failures = 0
			if err := w.ack(ctx, messageIDs(messages)); err != nil {
				logger.Warn("Failed to ack dropped messages", zap.Error(err))
			}
			w.metrics.ObserveJournal("dropped", len(messages)-invalidCount(res))
			return len(messages), nil
		}
		// Без ack сообщения вернутся при следующем чтении
		return 0, fmt.Errorf("journal write failed (attempt %d): %w", w.failures, procErr)
	}

	w.failures = 0
	valid := len(messages) - res.Invalid
	w.metrics.ObserveJournal("stored", res.Inserted)
	w.metrics.ObserveJournal("duplicate", valid-res.Inserted)

	logger.Debug("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("inserted", res.Inserted),
		zap.Int("invalid", res.Invalid))

	return len(messages), nil
}

func (w *Worker) ack(ctx context.Context, ids []string) error {
	return w.streamRepo.AckMessages(ctx, domain.StreamQuoteIssued, w.ConsumerGroup(), ids...)
}

func messageIDs(messages []domain.StreamMessage) []string {
	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	return ids
}

func invalidCount(res *usecase.JournalBatchResult) int {
	if res == nil {
		return 0
	}
	return res.Invalid
}
