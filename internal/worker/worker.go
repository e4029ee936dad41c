package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Worker - фоновый потребитель, которым управляет Manager
type Worker interface {
	// Start блокирует до Stop или отмены ctx
	Start(ctx context.Context) error

	// Stop сигнализирует о завершении, повторный вызов безопасен
	Stop() error

	Name() string
}

// Base - общая часть воркеров стрима: имя, consumer group и сигнал остановки
type Base struct {
	name          string
	consumerGroup string
	consumerName  string
	logger        *zap.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewBase создает Base; логгер получает поле worker с именем воркера
func NewBase(name, consumerGroup, consumerName string, logger *zap.Logger) *Base {
	return &Base{
		name:          name,
		consumerGroup: consumerGroup,
		consumerName:  consumerName,
		logger:        logger.With(zap.String("worker", name)),
		stopCh:        make(chan struct{}),
	}
}

func (b *Base) Name() string {
	return b.name
}

func (b *Base) Stop() error {
	b.stopOnce.Do(func() {
		b.logger.Info("Stopping worker")
		close(b.stopCh)
	})
	return nil
}

// Stopped закрывается после первого Stop
func (b *Base) Stopped() <-chan struct{} {
	return b.stopCh
}

func (b *Base) ConsumerGroup() string {
	return b.consumerGroup
}

func (b *Base) ConsumerName() string {
	return b.consumerName
}

func (b *Base) Logger() *zap.Logger {
	return b.logger
}
