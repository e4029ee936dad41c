package dto

import "time"

// CreateOrderRequest - ручное создание заказа. ID генерируется, если не передан
type CreateOrderRequest struct {
	ID             string    `json:"id"`
	Type           string    `json:"type" validate:"required,oneof=import export"`
	FromPoint      string    `json:"fromPoint"`
	DestPoint      string    `json:"destPoint"`
	StartStationID *string   `json:"startStationId"`
	DestStationID  *string   `json:"destStationId"`
	ProductName    string    `json:"productName"`
	Demand         float64   `json:"demand" validate:"gte=0"`
	StartDateTime  time.Time `json:"startDateTime" validate:"required"`
	DueDateTime    time.Time `json:"dueDateTime" validate:"required"`
	LoadingRate    float64   `json:"loadingRate" validate:"gte=0"`

	CR1 float64 `json:"cr1"`
	CR2 float64 `json:"cr2"`
	CR3 float64 `json:"cr3"`
	CR4 float64 `json:"cr4"`
	CR5 float64 `json:"cr5"`
	CR6 float64 `json:"cr6"`
	CR7 float64 `json:"cr7"`

	TimeReadyCR1 float64 `json:"timeReadyCR1"`
	TimeReadyCR2 float64 `json:"timeReadyCR2"`
	TimeReadyCR3 float64 `json:"timeReadyCR3"`
	TimeReadyCR4 float64 `json:"timeReadyCR4"`
	TimeReadyCR5 float64 `json:"timeReadyCR5"`
	TimeReadyCR6 float64 `json:"timeReadyCR6"`
	TimeReadyCR7 float64 `json:"timeReadyCR7"`
}

func (r *CreateOrderRequest) Normalize() {
	trim(&r.ID)
	lower(&r.Type)
	trim(&r.FromPoint)
	trim(&r.DestPoint)
	trim(&r.ProductName)
	trim(r.StartStationID)
	trim(r.DestStationID)
}

// UpdateOrderRequest - частичное обновление заказа
type UpdateOrderRequest struct {
	Type           *string    `json:"type" validate:"omitempty,oneof=import export"`
	FromPoint      *string    `json:"fromPoint"`
	DestPoint      *string    `json:"destPoint"`
	StartStationID *string    `json:"startStationId"`
	DestStationID  *string    `json:"destStationId"`
	ProductName    *string    `json:"productName"`
	Demand         *float64   `json:"demand" validate:"omitempty,gte=0"`
	StartDateTime  *time.Time `json:"startDateTime"`
	DueDateTime    *time.Time `json:"dueDateTime"`
	LoadingRate    *float64   `json:"loadingRate" validate:"omitempty,gte=0"`

	CR1 *float64 `json:"cr1"`
	CR2 *float64 `json:"cr2"`
	CR3 *float64 `json:"cr3"`
	CR4 *float64 `json:"cr4"`
	CR5 *float64 `json:"cr5"`
	CR6 *float64 `json:"cr6"`
	CR7 *float64 `json:"cr7"`

	TimeReadyCR1 *float64 `json:"timeReadyCR1"`
	TimeReadyCR2 *float64 `json:"timeReadyCR2"`
	TimeReadyCR3 *float64 `json:"timeReadyCR3"`
	TimeReadyCR4 *float64 `json:"timeReadyCR4"`
	TimeReadyCR5 *float64 `json:"timeReadyCR5"`
	TimeReadyCR6 *float64 `json:"timeReadyCR6"`
	TimeReadyCR7 *float64 `json:"timeReadyCR7"`
}

func (r *UpdateOrderRequest) Normalize() {
	lower(r.Type)
	trim(r.FromPoint)
	trim(r.DestPoint)
	trim(r.ProductName)
	trim(r.StartStationID)
	trim(r.DestStationID)
}
