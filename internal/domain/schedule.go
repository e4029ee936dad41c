package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TypePointMain - основной отрезок рейса, по нему строится таймлайн
const TypePointMain = "main_point"

// Schedule - событие движения буксира по заказу. Только чтение
type Schedule struct {
	FakeID           int64               `json:"fake_id" db:"fake_id"`
	ID               string              `json:"ID" db:"id"`
	Type             *string             `json:"type" db:"type"`
	Name             *string             `json:"name" db:"name"`
	EnterDatetime    *time.Time          `json:"enter_datetime" db:"enter_datetime"`
	ExitDatetime     *time.Time          `json:"exit_datetime" db:"exit_datetime"`
	Distance         decimal.NullDecimal `json:"distance" db:"distance"`
	Time             decimal.NullDecimal `json:"time" db:"time"`
	Speed            decimal.NullDecimal `json:"speed" db:"speed"`
	TypePoint        *string             `json:"type_point" db:"type_point"`
	OrderTrip        *string             `json:"order_trip" db:"order_trip"`
	TotalLoad        decimal.NullDecimal `json:"total_load" db:"total_load"`
	BargeIDs         *string             `json:"barge_ids" db:"barge_ids"`
	OrderDistance    decimal.NullDecimal `json:"order_distance" db:"order_distance"`
	OrderTime        decimal.NullDecimal `json:"order_time" db:"order_time"`
	BargeSpeed       decimal.NullDecimal `json:"barge_speed" db:"barge_speed"`
	OrderArrivalTime *time.Time          `json:"order_arrival_time" db:"order_arrival_time"`
	TugboatID        *string             `json:"tugboat_id" db:"tugboat_id"`
	OrderID          *string             `json:"order_id" db:"order_id"`
	WaterType        *string             `json:"water_type" db:"water_type"`

	BargeIDList []string `json:"barge_id_list" db:"-"`
}

// ParseBargeIDs разбирает сериализованный список барж.
// Поддерживаются JSON-массив и перечисление через запятую.
func ParseBargeIDs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	if strings.HasPrefix(raw, "[") {
		var ids []string
		if err := json.Unmarshal([]byte(raw), &ids); err == nil {
			return ids
		}
		raw = strings.Trim(raw, "[]")
	}

	ids := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.Trim(strings.TrimSpace(part), `"'`)
		if part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

// ScheduleFilter - точные фильтры выборки расписаний
type ScheduleFilter struct {
	TugboatID     string
	OrderID       string
	TypePoint     string
	EnterDatetime *time.Time
	ExitDatetime  *time.Time
}

// ViewScheduleTypePoint - строка представления view_schedule_type_point
type ViewScheduleTypePoint struct {
	TypePoint string `json:"type_point" db:"type_point"`
}
