package domain

type Customer struct {
	ID        string  `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Email     string  `json:"email" db:"email"`
	Address   string  `json:"address" db:"address"`
	StationID *string `json:"stationId" db:"station_id"`

	Station *Station `json:"station,omitempty" db:"-"`
	// Stations заполняется только при включённых связях многие-ко-многим
	Stations []Station `json:"stations,omitempty" db:"-"`
}

type CustomerPatch struct {
	Name    *string
	Email   *string
	Address *string
}

func (p CustomerPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Address == nil
}

// CustomerStation - строка таблицы связей клиент-станция
type CustomerStation struct {
	CustomerID string `json:"customerId" db:"customer_id"`
	StationID  string `json:"stationId" db:"station_id"`
}
