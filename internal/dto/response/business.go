package response

import (
	"time"

	"walkin-queue/internal/data/entity"
)

type BusinessResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Slug      string             `json:"slug"`
	Type      string             `json:"type,omitempty"`
	Email     string             `json:"email,omitempty"`
	Phone     string             `json:"phone,omitempty"`
	Address   string             `json:"address,omitempty"`
	QRURL     *string            `json:"qrCodeUrl,omitempty"`
	Settings  entity.QueuePolicy `json:"settings"`
	CreatedAt time.Time          `json:"createdAt"`
}

// PublicBusinessResponse is the unauthenticated view: contact details
// only, no policy or ownership data.
type PublicBusinessResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Slug    string  `json:"slug"`
	Type    string  `json:"type,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	Address string  `json:"address,omitempty"`
	QRURL   *string `json:"qrCodeUrl,omitempty"`
}

type QRCodeResponse struct {
	URL string `json:"url"`
}

func BusinessToResponse(b *entity.Business) BusinessResponse {
	return BusinessResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		Slug:      b.Slug,
		Type:      b.Type,
		Email:     b.Email,
		Phone:     b.Phone,
		Address:   b.Address,
		QRURL:     b.QRURL,
		Settings:  b.Policy,
		CreatedAt: b.CreatedAt,
	}
}

func BusinessToPublicResponse(b *entity.Business) PublicBusinessResponse {
	return PublicBusinessResponse{
		ID:      b.ID.String(),
		Name:    b.Name,
		Slug:    b.Slug,
		Type:    b.Type,
		Phone:   b.Phone,
		Address: b.Address,
		QRURL:   b.QRURL,
	}
}
