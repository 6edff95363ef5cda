package employee

import (
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName string  `json:"full_name" validate:"required,max=150"`
	Email    string  `json:"email" validate:"required,email"`
	BranchID *string `json:"branch_id" validate:"omitempty,uuid"`
}

func (r CreateEmployeeRequest) Validate() error {
	return validator.Struct(r)
}

type UpdateEmployeeRequest struct {
	ID       string  `json:"-"`
	FullName *string `json:"full_name" validate:"omitempty,max=150"`
	Email    *string `json:"email" validate:"omitempty,email"`
	BranchID *string `json:"branch_id" validate:"omitempty,uuid"`
}

func (r UpdateEmployeeRequest) Validate() error {
	return validator.Struct(r)
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	BranchID  *string `json:"branch_id,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
