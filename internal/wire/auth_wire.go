package wire

import (
	"walkin-queue/internal/adaptor"
	"walkin-queue/pkg/middleware"
	"walkin-queue/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/auth/register - Create business owner account + business
	r.Post("/api/auth/register", authHandler.Register)

	// POST /api/auth/login - Authenticate and issue a token
	r.Post("/api/auth/login", authHandler.Login)

	// GET /api/auth/check-email - Email availability check
	r.Get("/api/auth/check-email", authHandler.CheckEmail)

	// GET /api/auth/check-phone - Phone availability check
	r.Get("/api/auth/check-phone", authHandler.CheckPhone)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))

		// GET /api/auth/profile - Current user profile
		r.Get("/api/auth/profile", authHandler.GetProfile)

		// PUT /api/auth/profile - Update email / password
		r.Put("/api/auth/profile", authHandler.UpdateProfile)

		// POST /api/auth/refresh - Re-issue a token for the current user
		r.Post("/api/auth/refresh", authHandler.Refresh)

		// POST /api/auth/logout - Record the logout event
		r.Post("/api/auth/logout", authHandler.Logout)
	})
}
