// Package stats содержит воркер, который держит кеш статистики станций
// в актуальном состоянии по событиям из stream:fleet:events.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/domain/repository"
	"github.com/fleet-logistics-service/internal/worker"
)

const (
	maxBatchSize = 50
	errorBackoff = time.Second
)

// StatisticsRefresher пересчитывает статистику станций и кладёт её в кеш
type StatisticsRefresher interface {
	RefreshStatistics(ctx context.Context) (*domain.StationStatistics, error)
}

// StationStatsWorker читает события флота пачками. Если в пачке есть изменение
// станций, статистика пересчитывается один раз на всю пачку.
type StationStatsWorker struct {
	*worker.Base
	streamRepo  repository.StreamRepository
	refresher   StatisticsRefresher
	stream      string
	readTimeout time.Duration

	// recheckPending - в PEL этого consumer могли остаться неподтверждённые сообщения.
	// Меняется только из горутины Start
	recheckPending bool
}

func NewStationStatsWorker(
	streamRepo repository.StreamRepository,
	refresher StatisticsRefresher,
	consumerGroup, consumerName string,
	readTimeout time.Duration,
	logger *zap.Logger,
) *StationStatsWorker {
	return &StationStatsWorker{
		Base:           worker.NewBase("station-stats", consumerGroup, consumerName, logger),
		streamRepo:     streamRepo,
		refresher:      refresher,
		stream:         domain.StreamFleetEvents,
		readTimeout:    readTimeout,
		recheckPending: true,
	}
}

// Start создает consumer group, дочитывает pending после прошлого запуска
// и обрабатывает новые пачки до остановки
func (w *StationStatsWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting worker",
		zap.String("stream", w.stream),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.stream, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.Stopped():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var err error
		if w.recheckPending {
			err = w.DrainPending(ctx)
		} else {
			_, err = w.ProcessBatch(ctx)
		}
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			select {
			case <-time.After(errorBackoff):
			case <-w.Stopped():
			case <-ctx.Done():
			}
		}
	}
}

// DrainPending повторно обрабатывает сообщения, которые группа уже выдала
// этому consumer, но которые не были подтверждены (сбой пересчёта или падение процесса).
// Возвращается, когда pending пуст
func (w *StationStatsWorker) DrainPending(ctx context.Context) error {
	logger := w.Logger()

	drained := 0
	for {
		messages, err := w.streamRepo.ConsumePending(ctx, w.stream, w.ConsumerGroup(), w.ConsumerName(), maxBatchSize)
		if err != nil {
			return fmt.Errorf("failed to read pending messages: %w", err)
		}
		if len(messages) == 0 {
			break
		}

		acked, err := w.handle(ctx, messages)
		if err != nil {
			return err
		}
		if !acked {
			return fmt.Errorf("pending batch of %d messages left unacked", len(messages))
		}
		drained += len(messages)
	}

	w.recheckPending = false
	if drained > 0 {
		logger.Info("Pending fleet events reprocessed", zap.Int("messages", drained))
	}
	return nil
}

// ProcessBatch читает одну пачку новых сообщений и возвращает их число.
// Битые сообщения подтверждаются сразу, чтобы не застревать в pending.
// При ошибке пересчёта пачка не подтверждается и будет перечитана DrainPending
func (w *StationStatsWorker) ProcessBatch(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ConsumeBatch(ctx, w.stream, w.ConsumerGroup(), w.ConsumerName(), maxBatchSize, w.readTimeout)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	acked, err := w.handle(ctx, messages)
	if err != nil || !acked {
		w.recheckPending = true
	}
	return len(messages), err
}

// handle пересчитывает статистику, если пачка задевает станции, и подтверждает её
func (w *StationStatsWorker) handle(ctx context.Context, messages []domain.StreamMessage) (bool, error) {
	logger := w.Logger()

	ids := make([]string, 0, len(messages))
	refresh := false
	for _, msg := range messages {
		ids = append(ids, msg.ID)

		event, err := parseEvent(msg)
		if err != nil {
			logger.Warn("Skipping malformed fleet event",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}
		if event.TouchesStations() {
			refresh = true
		}
	}

	if refresh {
		stats, err := w.refresher.RefreshStatistics(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to refresh station statistics: %w", err)
		}
		logger.Debug("Station statistics refreshed", zap.Int("total", stats.Total))
	}

	if err := w.streamRepo.AckMessages(ctx, w.stream, w.ConsumerGroup(), ids); err != nil {
		// сообщения останутся в pending, повторный пересчёт безвреден
		logger.Warn("Failed to ack messages", zap.Error(err))
		return false, nil
	}

	logger.Debug("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Bool("refreshed", refresh))
	return true, nil
}

func parseEvent(msg domain.StreamMessage) (*domain.FleetEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing data field")
	}
	var event domain.FleetEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return &event, nil
}
