package usecase

import (
	"context"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"go.uber.org/zap"
)

// EventPublisher публикует FleetEvent в Redis Stream.
// Ошибка публикации только логируется: мутация уже зафиксирована в БД.
type EventPublisher struct {
	streamRepo repository.StreamRepository
	stream     string
	logger     *zap.Logger
}

// NewEventPublisher создает публикатор; пустое имя стрима отключает публикацию
func NewEventPublisher(streamRepo repository.StreamRepository, stream string, logger *zap.Logger) *EventPublisher {
	return &EventPublisher{
		streamRepo: streamRepo,
		stream:     stream,
		logger:     logger,
	}
}

// Publish отправляет событие. Безопасен для nil-получателя
func (p *EventPublisher) Publish(ctx context.Context, event *domain.FleetEvent) {
	if p == nil || p.streamRepo == nil || p.stream == "" {
		return
	}
	if err := p.streamRepo.PublishToStream(ctx, p.stream, event); err != nil {
		p.logger.Warn("Failed to publish fleet event",
			zap.String("entity", event.Entity),
			zap.String("action", string(event.Action)),
			zap.Strings("ids", event.EntityIDs),
			zap.Error(err))
	}
}
