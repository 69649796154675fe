package entity

import (
	"time"

	"github.com/google/uuid"
)

type StaffRole string

const (
	StaffRoleManager StaffRole = "manager"
	StaffRoleStaff   StaffRole = "staff"
	StaffRoleCashier StaffRole = "cashier"
)

func ValidStaffRole(r StaffRole) bool {
	switch r {
	case StaffRoleManager, StaffRoleStaff, StaffRoleCashier:
		return true
	}
	return false
}

type StaffMember struct {
	Base
	BusinessID uuid.UUID `db:"business_id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Role       StaffRole `db:"role"`
	Status     string    `db:"status"`
	LastActive time.Time `db:"last_active"`
}
