package domain

import "time"

type Barge struct {
	ID            string     `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	Weight        float64    `json:"weight" db:"weight"`
	Capacity      float64    `json:"capacity" db:"capacity"`
	Latitude      *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64   `json:"longitude,omitempty" db:"longitude"`
	WaterStatus   WaterType  `json:"waterStatus" db:"water_status"`
	StationID     *string    `json:"stationId" db:"station_id"`
	DistanceKm    *float64   `json:"distanceKm,omitempty" db:"distance_km"`
	SetupTime     float64    `json:"setupTime" db:"setup_time"`
	ReadyDatetime *time.Time `json:"readyDatetime,omitempty" db:"ready_datetime"`

	Station *Station `json:"station,omitempty" db:"-"`
}

type BargePatch struct {
	Name          *string
	Weight        *float64
	Capacity      *float64
	Latitude      *float64
	Longitude     *float64
	WaterStatus   *WaterType
	DistanceKm    *float64
	SetupTime     *float64
	ReadyDatetime *time.Time
}

func (p BargePatch) IsEmpty() bool {
	return p.Name == nil && p.Weight == nil && p.Capacity == nil && p.Latitude == nil &&
		p.Longitude == nil && p.WaterStatus == nil && p.DistanceKm == nil &&
		p.SetupTime == nil && p.ReadyDatetime == nil
}
