package wire

import (
	"walkin-queue/internal/adaptor"
	"walkin-queue/pkg/middleware"
	"walkin-queue/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireQueue(
	r chi.Router,
	queueHandler *adaptor.QueueHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Identity is resolved when a token is present but never required.
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(config.JWT, log))

		// POST /api/queue/join - Customer joins the queue (no account needed)
		r.Post("/api/queue/join", queueHandler.JoinQueue)

		// GET /api/queue/customer/{id} - Customer checks their own position
		r.Get("/api/queue/customer/{id}", queueHandler.GetCustomerStatus)

		// GET /api/queue/business/{businessId} - Current queue for a business
		r.Get("/api/queue/business/{businessId}", queueHandler.GetQueue)
	})

	// ==================== STAFF ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireRoles(log, "admin", "business", "staff"))

		// GET /api/queue/business/{businessId}/stats - Queue statistics
		r.Get("/api/queue/business/{businessId}/stats", queueHandler.GetStats)

		// GET /api/queue/{id} - Entry details
		r.Get("/api/queue/{id}", queueHandler.GetEntry)

		// PUT /api/queue/{id} - Edit customer details / order
		r.Put("/api/queue/{id}", queueHandler.UpdateEntry)

		// POST /api/queue/{id}/call - Call customer to the counter
		r.Post("/api/queue/{id}/call", queueHandler.CallCustomer)

		// POST /api/queue/{id}/complete - Mark service done
		r.Post("/api/queue/{id}/complete", queueHandler.CompleteCustomer)

		// POST /api/queue/{id}/extend - Add minutes to the estimated wait
		r.Post("/api/queue/{id}/extend", queueHandler.ExtendWait)

		// POST /api/queue/{id}/payment - Record payment status
		r.Post("/api/queue/{id}/payment", queueHandler.UpdatePayment)
		r.Put("/api/queue/{id}/payment", queueHandler.UpdatePayment)

		// DELETE /api/queue/{id} - Remove customer from queue
		r.Delete("/api/queue/{id}", queueHandler.RemoveCustomer)
	})
}
