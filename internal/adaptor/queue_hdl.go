package adaptor

import (
	"encoding/json"
	"net/http"

	"walkin-queue/internal/dto/request"
	"walkin-queue/internal/usecase"
	"walkin-queue/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type QueueHandler struct {
	service usecase.QueueService
	log     *zap.Logger
}

func NewQueueHandler(service usecase.QueueService, log *zap.Logger) *QueueHandler {
	return &QueueHandler{
		service: service,
		log:     log.With(zap.String("handler", "queue")),
	}
}

// JoinQueue handles POST /api/queue/join (public)
func (h *QueueHandler) JoinQueue(w http.ResponseWriter, r *http.Request) {
	var req request.JoinQueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	entry, err := h.service.Join(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "join queue")
		return
	}

	utils.ResponseCreated(w, "success", entry)
}

// GetQueue handles GET /api/queue/business/{businessId}
func (h *QueueHandler) GetQueue(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")
	if businessID == "" {
		utils.ResponseBadRequest(w, "Business ID is required", nil)
		return
	}

	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	entries, err := h.service.GetQueue(r.Context(), businessID, status)
	if err != nil {
		handleServiceError(h.log, w, err, "get queue")
		return
	}

	utils.ResponseSuccess(w, "success", entries)
}

// GetCustomerStatus handles GET /api/queue/customer/{id} (public)
func (h *QueueHandler) GetCustomerStatus(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")
	if entryID == "" {
		utils.ResponseBadRequest(w, "Entry ID is required", nil)
		return
	}

	status, err := h.service.GetCustomerStatus(r.Context(), entryID)
	if err != nil {
		handleServiceError(h.log, w, err, "get customer status")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}

// GetEntry handles GET /api/queue/{id} (protected)
func (h *QueueHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	entry, err := h.service.GetEntry(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get queue entry")
		return
	}

	utils.ResponseSuccess(w, "success", entry)
}

// UpdateEntry handles PUT /api/queue/{id} (protected)
func (h *QueueHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	entry, err := h.service.UpdateEntry(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update queue entry")
		return
	}

	utils.ResponseSuccess(w, "success", entry)
}

// CallCustomer handles POST /api/queue/{id}/call (protected)
func (h *QueueHandler) CallCustomer(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	entry, err := h.service.CallCustomer(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "call customer")
		return
	}

	utils.ResponseSuccess(w, "success", entry)
}

// CompleteCustomer handles POST /api/queue/{id}/complete (protected)
func (h *QueueHandler) CompleteCustomer(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	entry, err := h.service.CompleteCustomer(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "complete customer")
		return
	}

	utils.ResponseSuccess(w, "success", entry)
}

// ExtendWait handles POST /api/queue/{id}/extend (protected)
func (h *QueueHandler) ExtendWait(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ExtendWaitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	entry, err := h.service.ExtendWait(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "extend wait time")
		return
	}

	utils.ResponseSuccess(w, "success", entry)
}

// UpdatePayment handles POST /api/queue/{id}/payment (protected)
func (h *QueueHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	entry, err := h.service.UpdatePayment(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update payment status")
		return
	}

	utils.ResponseSuccess(w, "success", entry)
}

// RemoveCustomer handles DELETE /api/queue/{id} (protected)
func (h *QueueHandler) RemoveCustomer(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	entry, err := h.service.RemoveCustomer(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "remove customer")
		return
	}

	utils.ResponseSuccess(w, "success", entry)
}

// GetStats handles GET /api/queue/business/{businessId}/stats (protected)
func (h *QueueHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	stats, err := h.service.GetStats(r.Context(), actor, chi.URLParam(r, "businessId"))
	if err != nil {
		handleServiceError(h.log, w, err, "get queue stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
