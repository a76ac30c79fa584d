package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/freight-estimator/internal/domain"
	"github.com/freight-estimator/internal/domain/repository"
	"go.uber.org/zap"
)

// JournalBatchResult - итог обработки batch событий
type JournalBatchResult struct {
	// Processed - ID сообщений, которые можно подтвердить
	Processed []string
	// Inserted - количество новых строк в журнале
	Inserted int
	// Invalid - количество отброшенных сообщений
	Invalid int
}

// JournalUseCase сохраняет события о выданных котировках
type JournalUseCase struct {
	journalRepo repository.QuoteJournalRepository
	logger      *zap.Logger
}

// NewJournalUseCase создает новый экземпляр JournalUseCase
func NewJournalUseCase(journalRepo repository.QuoteJournalRepository, logger *zap.Logger) *JournalUseCase {
	return &JournalUseCase{
		journalRepo: journalRepo,
		logger:      logger,
	}
}

// ProcessBatch разбирает сообщения стрима и пишет валидные события одним batch.
// Невалидные сообщения считаются обработанными: повторная доставка их не исправит.
// При ошибке записи возвращается ошибка и Processed содержит только невалидные.
func (uc *JournalUseCase) ProcessBatch(ctx context.Context, messages []domain.StreamMessage) (*JournalBatchResult, error) {
	result := &JournalBatchResult{
		Processed: make([]string, 0, len(messages)),
	}

	events := make([]domain.QuoteIssuedEvent, 0, len(messages))
	validIDs := make([]string, 0, len(messages))

	for _, msg := range messages {
		var event domain.QuoteIssuedEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			uc.logger.Warn("Failed to unmarshal quote event",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			result.Processed = append(result.Processed, msg.ID)
			result.Invalid++
			continue
		}

		if !event.Validate() {
			uc.logger.Warn("Invalid quote event",
				zap.String("message_id", msg.ID),
				zap.String("quote_id", event.QuoteID.String()))
			result.Processed = append(result.Processed, msg.ID)
			result.Invalid++
			continue
		}

		events = append(events, event)
		validIDs = append(validIDs, msg.ID)
	}

	if len(events) == 0 {
		return result, nil
	}

	inserted, err := uc.journalRepo.InsertBatch(ctx, events)
	if err != nil {
		return result, fmt.Errorf("insert journal batch: %w", err)
	}

	result.Inserted = inserted
	result.Processed = append(result.Processed, validIDs...)

	uc.logger.Debug("Journal batch stored",
		zap.Int("events", len(events)),
		zap.Int("inserted", inserted),
		zap.Int("invalid", result.Invalid))

	return result, nil
}
