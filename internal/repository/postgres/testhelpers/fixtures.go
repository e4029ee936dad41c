package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// InsertCost добавляет строку стоимости напрямую: у репозитория нет записи
func InsertCost(ctx context.Context, db *sqlx.DB, tugboatID, orderID string, cost float64) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO costs (tugboat_id, order_id, time, distance, consumption_rate, cost, total_load)
		VALUES ($1, $2, 1.5, 42, 0.8, $3, 1000)
	`, tugboatID, orderID, cost)
	if err != nil {
		return fmt.Errorf("insert cost %s-%s: %w", tugboatID, orderID, err)
	}
	return nil
}

// ScheduleFixture - минимальный набор полей расписания для тестов
type ScheduleFixture struct {
	ID            string
	TugboatID     string
	OrderID       string
	TypePoint     string
	EnterDatetime time.Time
	BargeIDs      string
}

// InsertSchedule добавляет строку расписания
func InsertSchedule(ctx context.Context, db *sqlx.DB, s ScheduleFixture) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO schedules (id, type, name, enter_datetime, exit_datetime, distance, time, speed,
			type_point, order_trip, total_load, barge_ids, tugboat_id, order_id, water_type)
		VALUES ($1, 'tugboat', 'fixture', $2, $3, 12.50, 1.2500, 10.00,
			$4, '1', 500.00, $5, $6, $7, 'SEA')
	`, s.ID, s.EnterDatetime, s.EnterDatetime.Add(time.Hour), s.TypePoint, s.BargeIDs, s.TugboatID, s.OrderID)
	if err != nil {
		return fmt.Errorf("insert schedule %s: %w", s.ID, err)
	}
	return nil
}
