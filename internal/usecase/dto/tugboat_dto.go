package dto

import "time"

// CreateTugboatRequest - создание буксира. Все мощностные и скоростные поля > 0
type CreateTugboatRequest struct {
	ID            string     `json:"id" validate:"required"`
	Name          string     `json:"name" validate:"required"`
	MaxCapacity   int        `json:"maxCapacity" validate:"gt=0"`
	MaxBarge      int        `json:"maxBarge" validate:"gt=0"`
	MaxFuelCon    float64    `json:"maxFuelCon" validate:"gt=0"`
	Type          string     `json:"type" validate:"omitempty,oneof=SEA RIVER"`
	MinSpeed      float64    `json:"minSpeed" validate:"gt=0"`
	MaxSpeed      float64    `json:"maxSpeed" validate:"gt=0"`
	EngineRpm     float64    `json:"engineRpm" validate:"gt=0"`
	HorsePower    float64    `json:"horsePower" validate:"gt=0"`
	Latitude      *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	WaterStatus   string     `json:"waterStatus" validate:"omitempty,oneof=SEA RIVER"`
	DistanceKm    *float64   `json:"distanceKm" validate:"omitempty,gte=0"`
	ReadyDatetime *time.Time `json:"readyDatetime"`
	StationID     *string    `json:"stationId"`
}

func (r *CreateTugboatRequest) Normalize() {
	trim(&r.ID)
	trim(&r.Name)
	upper(&r.Type)
	upper(&r.WaterStatus)
	trim(r.StationID)
}

// UpdateTugboatRequest - частичное обновление буксира. Пустой stationId снимает привязку к станции
type UpdateTugboatRequest struct {
	Name          *string    `json:"name" validate:"omitempty,min=1"`
	MaxCapacity   *int       `json:"maxCapacity" validate:"omitempty,gt=0"`
	MaxBarge      *int       `json:"maxBarge" validate:"omitempty,gt=0"`
	MaxFuelCon    *float64   `json:"maxFuelCon" validate:"omitempty,gt=0"`
	Type          *string    `json:"type" validate:"omitempty,oneof=SEA RIVER"`
	MinSpeed      *float64   `json:"minSpeed" validate:"omitempty,gt=0"`
	MaxSpeed      *float64   `json:"maxSpeed" validate:"omitempty,gt=0"`
	EngineRpm     *float64   `json:"engineRpm" validate:"omitempty,gt=0"`
	HorsePower    *float64   `json:"horsePower" validate:"omitempty,gt=0"`
	WaterStatus   *string    `json:"waterStatus" validate:"omitempty,oneof=SEA RIVER"`
	ReadyDatetime *time.Time `json:"readyDatetime"`
	StationID     *string    `json:"stationId"`
}

func (r *UpdateTugboatRequest) Normalize() {
	trim(r.Name)
	upper(r.Type)
	upper(r.WaterStatus)
	trim(r.StationID)
}
