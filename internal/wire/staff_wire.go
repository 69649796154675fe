package wire

import (
	"walkin-queue/internal/adaptor"
	"walkin-queue/pkg/middleware"
	"walkin-queue/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStaff(
	r chi.Router,
	staffHandler *adaptor.StaffHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// All staff management requires an owner or admin account.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireRoles(log, "admin", "business"))

		// GET /api/staff/business/{businessId} - Staff roster (filters: status, role)
		r.Get("/api/staff/business/{businessId}", staffHandler.GetStaff)

		// GET /api/staff/{id} - Staff member details
		r.Get("/api/staff/{id}", staffHandler.GetStaffMember)

		// GET /api/staff/{id}/activity - Activity report folded from audit stamps
		r.Get("/api/staff/{id}/activity", staffHandler.GetStaffActivity)

		// POST /api/staff - Add staff member
		r.Post("/api/staff", staffHandler.CreateStaff)

		// PUT /api/staff/{id} - Update staff member
		r.Put("/api/staff/{id}", staffHandler.UpdateStaff)

		// DELETE /api/staff/{id} - Remove staff member
		r.Delete("/api/staff/{id}", staffHandler.DeleteStaff)
	})
}
