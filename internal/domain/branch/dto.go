package branch

import (
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type CreateBranchRequest struct {
	Name         string  `json:"name" validate:"required,max=150"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	RadiusMeters float64 `json:"radius_meters" validate:"required,gt=0"`
}

func (r CreateBranchRequest) Validate() error {
	return validator.Struct(r)
}

type UpdateBranchRequest struct {
	ID           string   `json:"-"`
	Name         *string  `json:"name" validate:"omitempty,max=150"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,longitude"`
	RadiusMeters *float64 `json:"radius_meters" validate:"omitempty,gt=0"`
}

func (r UpdateBranchRequest) Validate() error {
	return validator.Struct(r)
}

type BranchResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
