package domain

type Carrier struct {
	ID            string   `json:"id" db:"id"`
	Name          string   `json:"name" db:"name"`
	MaxCapacity   *float64 `json:"maxCapacity,omitempty" db:"max_capacity"`
	Holder        *int     `json:"holder,omitempty" db:"holder"`
	NumberOfBulks *int     `json:"numberOfBulks,omitempty" db:"number_of_bulks"`
	MaxCrane      *int     `json:"maxCrane,omitempty" db:"max_crane"`
	Latitude      float64  `json:"latitude" db:"latitude"`
	Longitude     float64  `json:"longitude" db:"longitude"`
}

type CarrierPatch struct {
	Name          *string
	MaxCapacity   *float64
	Holder        *int
	NumberOfBulks *int
	MaxCrane      *int
	Latitude      *float64
	Longitude     *float64
}

func (p CarrierPatch) IsEmpty() bool {
	return p.Name == nil && p.MaxCapacity == nil && p.Holder == nil && p.NumberOfBulks == nil &&
		p.MaxCrane == nil && p.Latitude == nil && p.Longitude == nil
}
