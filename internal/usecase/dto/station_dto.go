package dto

// CreateStationRequest - создание станции
type CreateStationRequest struct {
	ID         string  `json:"id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Type       string  `json:"type" validate:"omitempty,oneof=SEA RIVER"`
	Latitude   float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude  float64 `json:"longitude" validate:"gte=-180,lte=180"`
	DistanceKm float64 `json:"distanceKm" validate:"gte=0"`
}

func (r *CreateStationRequest) Normalize() {
	trim(&r.ID)
	trim(&r.Name)
	upper(&r.Type)
}

// UpdateStationRequest - частичное обновление, отсутствующие поля не меняются
type UpdateStationRequest struct {
	Name       *string  `json:"name" validate:"omitempty,min=1"`
	Type       *string  `json:"type" validate:"omitempty,oneof=SEA RIVER"`
	Latitude   *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude  *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	DistanceKm *float64 `json:"distanceKm" validate:"omitempty,gte=0"`
}

func (r *UpdateStationRequest) Normalize() {
	trim(r.Name)
	upper(r.Type)
}
