package wire

import (
	"walkin-queue/internal/adaptor"
	"walkin-queue/pkg/middleware"
	"walkin-queue/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMenu(
	r chi.Router,
	menuHandler *adaptor.MenuHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Customers browse the menu before joining the queue.
	r.Get("/api/menu/business/{businessId}", menuHandler.GetMenu)
	r.Get("/api/menu/business/{businessId}/categories", menuHandler.GetCategories)
	r.Get("/api/menu/{id}", menuHandler.GetMenuItem)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireRoles(log, "admin", "business"))

		// POST /api/menu - Add menu item
		r.Post("/api/menu", menuHandler.CreateMenuItem)

		// PUT /api/menu/{id} - Update menu item
		r.Put("/api/menu/{id}", menuHandler.UpdateMenuItem)

		// DELETE /api/menu/{id} - Remove menu item
		r.Delete("/api/menu/{id}", menuHandler.DeleteMenuItem)
	})
}
