package entity

import "github.com/google/uuid"

// QueuePolicy holds the per-business quotas consulted on every admission.
type QueuePolicy struct {
	MaxQueueLength        int  `json:"queueLength"`
	ReservedPrioritySlots int  `json:"prioritySlots"`
	PriorityExtensionTime int  `json:"priorityExtensionTime"`
	AutoWaitTimes         bool `json:"autoWaitTimes"`
}

// DefaultQueuePolicy is applied to newly registered businesses.
func DefaultQueuePolicy() QueuePolicy {
	return QueuePolicy{
		MaxQueueLength:        50,
		ReservedPrioritySlots: 10,
		PriorityExtensionTime: 15,
		AutoWaitTimes:         true,
	}
}

// Admit decides whether one more customer fits under the policy. The
// overall cap is checked before the priority quota: a priority customer
// hitting a full queue is rejected as full, not as out of slots.
func (p QueuePolicy) Admit(waiting, priorityWaiting int, isPriority bool) error {
	if waiting >= p.MaxQueueLength {
		return ErrQueueFull
	}
	if isPriority && priorityWaiting >= p.ReservedPrioritySlots {
		return ErrPrioritySlotsFull
	}
	return nil
}

type Business struct {
	Base
	OwnerID uuid.UUID   `db:"owner_id"`
	Name    string      `db:"name"`
	Slug    string      `db:"slug"`
	Type    string      `db:"type"`
	Email   string      `db:"email"`
	Phone   string      `db:"phone"`
	Address string      `db:"address"`
	QRURL   *string     `db:"qr_code_url"`
	Policy  QueuePolicy `db:"settings"`
}
