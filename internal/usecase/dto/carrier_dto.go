package dto

// CreateCarrierRequest - создание перевозчика
type CreateCarrierRequest struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	MaxCapacity   *float64 `json:"maxCapacity" validate:"omitempty,gt=0"`
	Holder        *int     `json:"holder" validate:"omitempty,gte=0"`
	NumberOfBulks *int     `json:"numberOfBulks" validate:"omitempty,gt=0"`
	MaxCrane      *int     `json:"maxCrane" validate:"omitempty,gt=0"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

func (r *CreateCarrierRequest) Normalize() {
	trim(&r.ID)
	trim(&r.Name)
}

// UpdateCarrierRequest - частичное обновление перевозчика
type UpdateCarrierRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=1"`
	MaxCapacity   *float64 `json:"maxCapacity" validate:"omitempty,gt=0"`
	Holder        *int     `json:"holder" validate:"omitempty,gte=0"`
	NumberOfBulks *int     `json:"numberOfBulks" validate:"omitempty,gt=0"`
	MaxCrane      *int     `json:"maxCrane" validate:"omitempty,gt=0"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

func (r *UpdateCarrierRequest) Normalize() {
	trim(r.Name)
}
