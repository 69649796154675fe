package entity

import "github.com/google/uuid"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleBusiness UserRole = "business"
	RoleStaff    UserRole = "staff"
)

type User struct {
	Base
	Email        string     `db:"email"`
	PasswordHash string     `db:"password"`
	Role         UserRole   `db:"role"`
	BusinessID   *uuid.UUID `db:"business_id"`
	IsActive     bool       `db:"is_active"`
}

// IsAdmin reports whether the user holds the platform administrative role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
