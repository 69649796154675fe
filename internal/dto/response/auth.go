package response

import (
	"time"

	"walkin-queue/internal/data/entity"
)

type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	BusinessID *string   `json:"businessId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AuthResponse struct {
	User     UserResponse      `json:"user"`
	Business *BusinessResponse `json:"business,omitempty"`
	Token    string            `json:"token"`
}

// AvailabilityResponse answers the pre-registration email/phone checks.
type AvailabilityResponse struct {
	Available bool `json:"available"`
	Exists    bool `json:"exists"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func UserToResponse(u *entity.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
	if u.BusinessID != nil {
		s := u.BusinessID.String()
		resp.BusinessID = &s
	}
	return resp
}
