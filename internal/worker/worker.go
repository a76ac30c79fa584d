package worker

import (
	"context"
)

// Worker - фоновый потребитель, которым управляет WorkerManager
type Worker interface {
	// Start блокируется до остановки: через Stop или отмену ctx
	Start(ctx context.Context) error

	// Stop просит воркер завершить текущий batch и выйти
	Stop() error

	// Name - имя для логов и метрик
	Name() string
}
