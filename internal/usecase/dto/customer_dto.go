package dto

// CreateCustomerRequest - создание клиента
type CreateCustomerRequest struct {
	ID        string  `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email_shape"`
	Address   string  `json:"address" validate:"required"`
	StationID *string `json:"stationId"`
}

func (r *CreateCustomerRequest) Normalize() {
	trim(&r.ID)
	trim(&r.Name)
	trim(&r.Email)
	trim(&r.Address)
	trim(r.StationID)
}

// UpdateCustomerRequest - частичное обновление клиента
type UpdateCustomerRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Email   *string `json:"email" validate:"omitempty,email_shape"`
	Address *string `json:"address" validate:"omitempty,min=1"`
}

func (r *UpdateCustomerRequest) Normalize() {
	trim(r.Name)
	trim(r.Email)
	trim(r.Address)
}
