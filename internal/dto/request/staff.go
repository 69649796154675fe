package request

type CreateStaffRequest struct {
	BusinessID string `json:"businessId" validate:"required,uuid4"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Role       string `json:"role" validate:"required,oneof=manager staff cashier"`
	Password   string `json:"password" validate:"omitempty,min=6"`
}

type UpdateStaffRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Role   *string `json:"role,omitempty" validate:"omitempty,oneof=manager staff cashier"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}
