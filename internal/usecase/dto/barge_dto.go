package dto

import "time"

// CreateBargeRequest - создание баржи
type CreateBargeRequest struct {
	ID            string     `json:"id" validate:"required"`
	Name          string     `json:"name" validate:"required"`
	Weight        float64    `json:"weight" validate:"gt=0"`
	Capacity      float64    `json:"capacity" validate:"gt=0"`
	Latitude      *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	WaterStatus   string     `json:"waterStatus" validate:"omitempty,oneof=SEA RIVER"`
	StationID     *string    `json:"stationId"`
	DistanceKm    *float64   `json:"distanceKm" validate:"omitempty,gte=0"`
	SetupTime     float64    `json:"setupTime" validate:"gte=0"`
	ReadyDatetime *time.Time `json:"readyDatetime"`
}

func (r *CreateBargeRequest) Normalize() {
	trim(&r.ID)
	trim(&r.Name)
	upper(&r.WaterStatus)
	trim(r.StationID)
}

// UpdateBargeRequest - частичное обновление баржи. Пустой stationId снимает привязку к станции
type UpdateBargeRequest struct {
	Name          *string    `json:"name" validate:"omitempty,min=1"`
	Weight        *float64   `json:"weight" validate:"omitempty,gt=0"`
	Capacity      *float64   `json:"capacity" validate:"omitempty,gt=0"`
	Latitude      *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	WaterStatus   *string    `json:"waterStatus" validate:"omitempty,oneof=SEA RIVER"`
	DistanceKm    *float64   `json:"distanceKm" validate:"omitempty,gte=0"`
	SetupTime     *float64   `json:"setupTime" validate:"omitempty,gte=0"`
	ReadyDatetime *time.Time `json:"readyDatetime"`
	StationID     *string    `json:"stationId"`
}

func (r *UpdateBargeRequest) Normalize() {
	trim(r.Name)
	upper(r.WaterStatus)
	trim(r.StationID)
}
