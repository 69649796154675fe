package response

import (
	"time"

	"walkin-queue/internal/data/entity"
)

type QueueEntryResponse struct {
	ID            string               `json:"id"`
	BusinessID    string               `json:"businessId"`
	CustomerName  string               `json:"customerName"`
	CustomerPhone string               `json:"customerPhone,omitempty"`
	CustomerEmail string               `json:"customerEmail,omitempty"`
	OrderItems    []entity.OrderItem   `json:"orderItems"`
	OrderTotal    float64              `json:"orderTotal"`
	IsPriority    bool                 `json:"isPriority"`
	Status        entity.QueueStatus   `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`

	EstimatedWaitTime int `json:"estimatedWaitTime"`

	JoinedAt time.Time `json:"joinedAt"`

	CalledAt *time.Time `json:"calledAt,omitempty"`
	CalledBy *string    `json:"calledBy,omitempty"`

	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CompletedBy *string    `json:"completedBy,omitempty"`

	ExtendedAt     *time.Time `json:"extendedAt,omitempty"`
	ExtendedBy     *int       `json:"extendedBy,omitempty"`
	ExtendedByUser *string    `json:"extendedByUser,omitempty"`

	PaymentUpdatedAt *time.Time `json:"paymentUpdatedAt,omitempty"`
	PaymentUpdatedBy *string    `json:"paymentUpdatedBy,omitempty"`
	PaymentNotes     string     `json:"paymentNotes,omitempty"`
}

// CustomerStatusResponse is the public status lookup: the entry plus its
// live position. Position is null once the entry is no longer waiting.
type CustomerStatusResponse struct {
	QueueEntryResponse
	Position    *int `json:"position"`
	QueueLength int  `json:"queueLength"`
}

type QueueStatsResponse struct {
	Total           int     `json:"total"`
	Waiting         int     `json:"waiting"`
	Called          int     `json:"called"`
	Completed       int     `json:"completed"`
	Priority        int     `json:"priority"`
	AverageWaitTime float64 `json:"averageWaitTime"`
	TotalRevenue    float64 `json:"totalRevenue"`
}

func QueueEntryToResponse(e *entity.QueueEntry) QueueEntryResponse {
	resp := QueueEntryResponse{
		ID:                e.ID.String(),
		BusinessID:        e.BusinessID.String(),
		CustomerName:      e.CustomerName,
		CustomerPhone:     e.CustomerPhone,
		CustomerEmail:     e.CustomerEmail,
		OrderItems:        e.OrderItems,
		OrderTotal:        e.OrderTotal,
		IsPriority:        e.IsPriority,
		Status:            e.Status,
		PaymentStatus:     e.PaymentStatus,
		EstimatedWaitTime: e.EstimatedWaitTime,
		JoinedAt:          e.JoinedAt,
		CalledAt:          e.CalledAt,
		CompletedAt:       e.CompletedAt,
		ExtendedAt:        e.ExtendedAt,
		ExtendedBy:        e.ExtendedBy,
		PaymentUpdatedAt:  e.PaymentUpdatedAt,
		PaymentNotes:      e.PaymentNotes,
	}

	if e.OrderItems == nil {
		resp.OrderItems = []entity.OrderItem{}
	}
	if e.CalledBy != nil {
		s := e.CalledBy.String()
		resp.CalledBy = &s
	}
	if e.CompletedBy != nil {
		s := e.CompletedBy.String()
		resp.CompletedBy = &s
	}
	if e.ExtendedByUser != nil {
		s := e.ExtendedByUser.String()
		resp.ExtendedByUser = &s
	}
	if e.PaymentUpdatedBy != nil {
		s := e.PaymentUpdatedBy.String()
		resp.PaymentUpdatedBy = &s
	}

	return resp
}
