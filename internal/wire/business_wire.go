package wire

import (
	"walkin-queue/internal/adaptor"
	"walkin-queue/pkg/middleware"
	"walkin-queue/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBusiness(
	r chi.Router,
	businessHandler *adaptor.BusinessHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/public/businesses/{slug} - Business profile for the customer page
	r.Get("/api/public/businesses/{slug}", businessHandler.GetPublicBusiness)

	// GET /api/public/businesses/{slug}/qrcode - QR code linking to the customer page
	r.Get("/api/public/businesses/{slug}/qrcode", businessHandler.GetPublicQRCode)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))

		// GET /api/businesses/{id} - Business details
		r.Get("/api/businesses/{id}", businessHandler.GetBusiness)

		// GET /api/businesses/slug/{slug} - Business details by slug
		r.Get("/api/businesses/slug/{slug}", businessHandler.GetBusinessBySlug)

		// GET /api/businesses/{id}/settings - Queue policy
		r.Get("/api/businesses/{id}/settings", businessHandler.GetSettings)

		// PUT /api/businesses/{id}/settings - Update queue policy
		r.Put("/api/businesses/{id}/settings", businessHandler.UpdateSettings)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireRoles(log, "admin"))

		// GET /api/businesses - List all businesses (admin)
		r.Get("/api/businesses", businessHandler.ListBusinesses)
	})
}
