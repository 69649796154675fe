package response

import (
	"time"

	"walkin-queue/internal/data/entity"
)

type MenuItemResponse struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"businessId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
}

func MenuItemToResponse(m *entity.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          m.ID.String(),
		BusinessID:  m.BusinessID.String(),
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		Price:       m.Price,
		Available:   m.Available,
		CreatedAt:   m.CreatedAt,
	}
}
