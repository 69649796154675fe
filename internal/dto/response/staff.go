package response

import (
	"time"

	"walkin-queue/internal/data/entity"
)

type StaffResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"businessId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	LastActive time.Time `json:"lastActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

type StaffActivityStats struct {
	TotalCustomersHandled int `json:"totalCustomersHandled"`
	CustomersCalled       int `json:"customersCalled"`
	CustomersCompleted    int `json:"customersCompleted"`
	TimeExtensions        int `json:"timeExtensions"`
	PaymentUpdates        int `json:"paymentUpdates"`
}

// StaffActivityResponse is the per-member activity report: every queue
// entry the member touched plus the counts folded from the audit stamps.
type StaffActivityResponse struct {
	StaffMember StaffResponse        `json:"staffMember"`
	Activities  []QueueEntryResponse `json:"activities"`
	Stats       StaffActivityStats   `json:"stats"`
}

func StaffToResponse(s *entity.StaffMember) StaffResponse {
	return StaffResponse{
		ID:         s.ID.String(),
		BusinessID: s.BusinessID.String(),
		Name:       s.Name,
		Email:      s.Email,
		Role:       string(s.Role),
		Status:     s.Status,
		LastActive: s.LastActive,
		CreatedAt:  s.CreatedAt,
	}
}
