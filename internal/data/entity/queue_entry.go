package entity

import (
	"time"

	"github.com/google/uuid"
)

type QueueStatus string

const (
	StatusWaiting   QueueStatus = "waiting"
	StatusCalled    QueueStatus = "called"
	StatusCompleted QueueStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentCancelled:
		return true
	}
	return false
}

type OrderItem struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
}

type OrderItems []OrderItem

// Total is the single place order totals are computed; join and item
// updates both go through it.
func (items OrderItems) Total() float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// QueueEntry is one customer's occupancy of a queue slot.
// JoinedAt never changes after creation; IsPriority is fixed at join time.
type QueueEntry struct {
	ID            uuid.UUID     `db:"id"`
	BusinessID    uuid.UUID     `db:"business_id"`
	CustomerName  string        `db:"customer_name"`
	CustomerPhone string        `db:"customer_phone"`
	CustomerEmail string        `db:"customer_email"`
	OrderItems    OrderItems    `db:"order_items"`
	OrderTotal    float64       `db:"order_total"`
	IsPriority    bool          `db:"is_priority"`
	Status        QueueStatus   `db:"status"`
	PaymentStatus PaymentStatus `db:"payment_status"`

	EstimatedWaitTime int `db:"estimated_wait_time"`

	JoinedAt time.Time `db:"joined_at"`

	CalledAt *time.Time `db:"called_at"`
	CalledBy *uuid.UUID `db:"called_by"`

	CompletedAt *time.Time `db:"completed_at"`
	CompletedBy *uuid.UUID `db:"completed_by"`

	ExtendedAt     *time.Time `db:"extended_at"`
	ExtendedBy     *int       `db:"extended_by"` // minutes of the last extension
	ExtendedByUser *uuid.UUID `db:"extended_by_user"`

	PaymentUpdatedAt *time.Time `db:"payment_updated_at"`
	PaymentUpdatedBy *uuid.UUID `db:"payment_updated_by"`
	PaymentNotes     string     `db:"payment_notes"`
}
