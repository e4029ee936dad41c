package domain

// Station - порт/причал, к которому приписываются баржи, буксиры и клиенты
type Station struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Type       WaterType `json:"type" db:"type"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	DistanceKm float64   `json:"distanceKm" db:"distance_km"`
}

// StationPatch - частичное обновление станции, nil означает "не менять"
type StationPatch struct {
	Name       *string
	Type       *WaterType
	Latitude   *float64
	Longitude  *float64
	DistanceKm *float64
}

func (p StationPatch) IsEmpty() bool {
	return p.Name == nil && p.Type == nil && p.Latitude == nil &&
		p.Longitude == nil && p.DistanceKm == nil
}

// StationStatistics - сводка по станциям
type StationStatistics struct {
	Total           int     `json:"total" db:"total"`
	SeaStations     int     `json:"seaStations" db:"sea_stations"`
	RiverStations   int     `json:"riverStations" db:"river_stations"`
	AverageDistance float64 `json:"averageDistance" db:"average_distance"`
	MaxDistance     float64 `json:"maxDistance" db:"max_distance"`
	MinDistance     float64 `json:"minDistance" db:"min_distance"`
}

// StationUsage - количество ссылок на станцию из других таблиц
type StationUsage struct {
	Barges            int `db:"barges"`
	Tugboats          int `db:"tugboats"`
	Customers         int `db:"customers"`
	CustomerLinks     int `db:"customer_links"`
	StartOrders       int `db:"start_orders"`
	DestinationOrders int `db:"dest_orders"`
}

// InUse сообщает, есть ли хотя бы одна ссылка
func (u StationUsage) InUse() bool {
	return u.Barges+u.Tugboats+u.Customers+u.CustomerLinks+u.StartOrders+u.DestinationOrders > 0
}
