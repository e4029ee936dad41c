package domain

import "strings"

// Имена сущностей, используются в сообщениях об ошибках и событиях
const (
	EntityStation         = "Station"
	EntityBarge           = "Barge"
	EntityTugboat         = "Tugboat"
	EntityCustomer        = "Customer"
	EntityCustomerStation = "CustomerStation"
	EntityCarrier         = "Carrier"
	EntityOrder           = "Order"
	EntityCost            = "Cost"
	EntitySchedule        = "Schedule"
)

// WaterType - тип акватории (станция, баржа, буксир)
type WaterType string

const (
	WaterSea   WaterType = "SEA"
	WaterRiver WaterType = "RIVER"
)

// ParseWaterType нормализует строку без учёта регистра
func ParseWaterType(s string) (WaterType, bool) {
	switch WaterType(strings.ToUpper(strings.TrimSpace(s))) {
	case WaterSea:
		return WaterSea, true
	case WaterRiver:
		return WaterRiver, true
	}
	return "", false
}

// ListFilter - общий фильтр списков
type ListFilter struct {
	StationID   string
	Type        string
	Search      string
	MaxDistance *float64
}

// StringPtr возвращает nil для пустой строки
func StringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// StationAssignable - актив, который может быть приписан к станции
type StationAssignable interface {
	StationRef() *string
}

func (b *Barge) StationRef() *string { return b.StationID }

func (t *Tugboat) StationRef() *string { return t.StationID }

func (c *Customer) StationRef() *string { return c.StationID }
