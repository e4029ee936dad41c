package repository

import (
	"context"
	"time"

	"github.com/fleet-logistics-service/internal/domain"
)

// StreamRepository - интерфейс для работы с Redis Streams
type StreamRepository interface {
	// CreateConsumerGroup создаёт consumer group (существующая группа не ошибка)
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch читает до count новых сообщений, ожидая не дольше block
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int64, block time.Duration) ([]domain.StreamMessage, error)

	// ConsumePending читает до count сообщений, выданных consumer и ещё не подтверждённых
	ConsumePending(ctx context.Context, stream, group, consumer string, count int64) ([]domain.StreamMessage, error)

	// AckMessages подтверждает обработку сообщений
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error

	// PublishToStream публикует сообщение в стрим (JSON в поле data)
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
