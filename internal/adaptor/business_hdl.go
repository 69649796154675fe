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

type BusinessHandler struct {
	service usecase.BusinessService
	log     *zap.Logger
}

func NewBusinessHandler(service usecase.BusinessService, log *zap.Logger) *BusinessHandler {
	return &BusinessHandler{
		service: service,
		log:     log.With(zap.String("handler", "business")),
	}
}

// ListBusinesses handles GET /api/businesses (protected, admin only)
func (h *BusinessHandler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	businesses, err := h.service.ListBusinesses(r.Context(), actor)
	if err != nil {
		handleServiceError(h.log, w, err, "list businesses")
		return
	}

	utils.ResponseSuccess(w, "success", businesses)
}

// GetBusiness handles GET /api/businesses/{id} (protected)
func (h *BusinessHandler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	business, err := h.service.GetBusiness(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get business")
		return
	}

	utils.ResponseSuccess(w, "success", business)
}

// GetBusinessBySlug handles GET /api/businesses/slug/{slug} (protected)
func (h *BusinessHandler) GetBusinessBySlug(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	business, err := h.service.GetBusinessBySlug(r.Context(), actor, chi.URLParam(r, "slug"))
	if err != nil {
		handleServiceError(h.log, w, err, "get business by slug")
		return
	}

	utils.ResponseSuccess(w, "success", business)
}

// GetPublicBusiness handles GET /api/public/businesses/{slug} (public)
func (h *BusinessHandler) GetPublicBusiness(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Business slug is required", nil)
		return
	}

	business, err := h.service.GetPublicBusiness(r.Context(), slug)
	if err != nil {
		handleServiceError(h.log, w, err, "get public business")
		return
	}

	utils.ResponseSuccess(w, "success", business)
}

// GetSettings handles GET /api/businesses/{id}/settings (protected)
func (h *BusinessHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	settings, err := h.service.GetSettings(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get business settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}

// UpdateSettings handles PUT /api/businesses/{id}/settings (protected)
func (h *BusinessHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update business settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}

// GetPublicQRCode handles GET /api/public/businesses/{slug}/qrcode (public)
func (h *BusinessHandler) GetPublicQRCode(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Business slug is required", nil)
		return
	}

	qr, err := h.service.GetPublicQRCode(r.Context(), slug)
	if err != nil {
		handleServiceError(h.log, w, err, "get business QR code")
		return
	}

	utils.ResponseSuccess(w, "success", qr)
}
