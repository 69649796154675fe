package entity

import "errors"

var (
	ErrBusinessNotFound  = errors.New("business not found")
	ErrEntryNotFound     = errors.New("customer not found in queue")
	ErrQueueFull         = errors.New("queue is currently full")
	ErrPrioritySlotsFull = errors.New("priority slots are full")
	ErrAccessDenied      = errors.New("access denied")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUserNotFound      = errors.New("user not found")
	ErrStaffNotFound     = errors.New("staff member not found")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidLogin      = errors.New("invalid email or password")
)
