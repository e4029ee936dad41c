package domain

import (
	"strings"
	"time"
)

// OrderType - направление перевозки
type OrderType string

const (
	OrderImport OrderType = "import"
	OrderExport OrderType = "export"
)

// ParseOrderType приводит строку к import/export без учёта регистра
func ParseOrderType(s string) (OrderType, bool) {
	switch OrderType(strings.ToLower(strings.TrimSpace(s))) {
	case OrderImport:
		return OrderImport, true
	case OrderExport:
		return OrderExport, true
	}
	return "", false
}

// CraneCount - количество пар crN / timeReadyCRN у заказа
const CraneCount = 7

// Order - заказ на перевозку груза
type Order struct {
	ID             string    `json:"id" db:"id"`
	Type           OrderType `json:"type" db:"type"`
	FromPoint      string    `json:"fromPoint" db:"from_point"`
	DestPoint      string    `json:"destPoint" db:"dest_point"`
	StartStationID *string   `json:"startStationId,omitempty" db:"start_station_id"`
	DestStationID  *string   `json:"destStationId,omitempty" db:"dest_station_id"`
	ProductName    string    `json:"productName" db:"product_name"`
	Demand         float64   `json:"demand" db:"demand"`
	StartDateTime  time.Time `json:"startDateTime" db:"start_datetime"`
	DueDateTime    time.Time `json:"dueDateTime" db:"due_datetime"`
	LoadingRate    float64   `json:"loadingRate" db:"loading_rate"`

	CR1 float64 `json:"cr1" db:"cr1"`
	CR2 float64 `json:"cr2" db:"cr2"`
	CR3 float64 `json:"cr3" db:"cr3"`
	CR4 float64 `json:"cr4" db:"cr4"`
	CR5 float64 `json:"cr5" db:"cr5"`
	CR6 float64 `json:"cr6" db:"cr6"`
	CR7 float64 `json:"cr7" db:"cr7"`

	TimeReadyCR1 float64 `json:"timeReadyCR1" db:"time_ready_cr1"`
	TimeReadyCR2 float64 `json:"timeReadyCR2" db:"time_ready_cr2"`
	TimeReadyCR3 float64 `json:"timeReadyCR3" db:"time_ready_cr3"`
	TimeReadyCR4 float64 `json:"timeReadyCR4" db:"time_ready_cr4"`
	TimeReadyCR5 float64 `json:"timeReadyCR5" db:"time_ready_cr5"`
	TimeReadyCR6 float64 `json:"timeReadyCR6" db:"time_ready_cr6"`
	TimeReadyCR7 float64 `json:"timeReadyCR7" db:"time_ready_cr7"`
}

// Cranes возвращает указатели на поля crN и timeReadyCRN по порядку (индекс 0 = CR1)
func (o *Order) Cranes() (cr [CraneCount]*float64, ready [CraneCount]*float64) {
	cr = [CraneCount]*float64{&o.CR1, &o.CR2, &o.CR3, &o.CR4, &o.CR5, &o.CR6, &o.CR7}
	ready = [CraneCount]*float64{
		&o.TimeReadyCR1, &o.TimeReadyCR2, &o.TimeReadyCR3, &o.TimeReadyCR4,
		&o.TimeReadyCR5, &o.TimeReadyCR6, &o.TimeReadyCR7,
	}
	return cr, ready
}

// OrderPatch - частичное обновление заказа. Cranes/TimeReady индексируются с нуля
type OrderPatch struct {
	Type           *OrderType
	FromPoint      *string
	DestPoint      *string
	StartStationID *string
	DestStationID  *string
	ProductName    *string
	Demand         *float64
	StartDateTime  *time.Time
	DueDateTime    *time.Time
	LoadingRate    *float64
	Cranes         [CraneCount]*float64
	TimeReady      [CraneCount]*float64
}

func (p OrderPatch) IsEmpty() bool {
	if p.Type != nil || p.FromPoint != nil || p.DestPoint != nil || p.StartStationID != nil ||
		p.DestStationID != nil || p.ProductName != nil || p.Demand != nil ||
		p.StartDateTime != nil || p.DueDateTime != nil || p.LoadingRate != nil {
		return false
	}
	for i := 0; i < CraneCount; i++ {
		if p.Cranes[i] != nil || p.TimeReady[i] != nil {
			return false
		}
	}
	return true
}
