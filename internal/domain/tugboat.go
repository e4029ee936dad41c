package domain

import "time"

type Tugboat struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	MaxCapacity   int       `json:"maxCapacity" db:"max_capacity"`
	MaxBarge      int       `json:"maxBarge" db:"max_barge"`
	MaxFuelCon    float64   `json:"maxFuelCon" db:"max_fuel_con"`
	Type          WaterType `json:"type" db:"type"`
	MinSpeed      float64   `json:"minSpeed" db:"min_speed"`
	MaxSpeed      float64   `json:"maxSpeed" db:"max_speed"`
	EngineRpm     float64   `json:"engineRpm" db:"engine_rpm"`
	HorsePower    float64   `json:"horsePower" db:"horse_power"`
	Latitude      *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64  `json:"longitude,omitempty" db:"longitude"`
	WaterStatus   WaterType `json:"waterStatus" db:"water_status"`
	DistanceKm    *float64  `json:"distanceKm,omitempty" db:"distance_km"`
	ReadyDatetime time.Time `json:"readyDatetime" db:"ready_datetime"`
	StationID     *string   `json:"stationId" db:"station_id"`

	Station *Station `json:"station,omitempty" db:"-"`
}

type TugboatPatch struct {
	Name          *string
	MaxCapacity   *int
	MaxBarge      *int
	MaxFuelCon    *float64
	Type          *WaterType
	MinSpeed      *float64
	MaxSpeed      *float64
	EngineRpm     *float64
	HorsePower    *float64
	WaterStatus   *WaterType
	ReadyDatetime *time.Time
}

func (p TugboatPatch) IsEmpty() bool {
	return p.Name == nil && p.MaxCapacity == nil && p.MaxBarge == nil && p.MaxFuelCon == nil &&
		p.Type == nil && p.MinSpeed == nil && p.MaxSpeed == nil && p.EngineRpm == nil &&
		p.HorsePower == nil && p.WaterStatus == nil && p.ReadyDatetime == nil
}
