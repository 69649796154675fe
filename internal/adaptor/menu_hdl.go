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

type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log.With(zap.String("handler", "menu")),
	}
}

// GetMenu handles GET /api/menu/business/{businessId} (public)
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")
	if businessID == "" {
		utils.ResponseBadRequest(w, "Business ID is required", nil)
		return
	}

	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = &c
	}

	items, err := h.service.GetMenu(r.Context(), businessID, category)
	if err != nil {
		handleServiceError(h.log, w, err, "get menu")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// GetCategories handles GET /api/menu/business/{businessId}/categories (public)
func (h *MenuHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")
	if businessID == "" {
		utils.ResponseBadRequest(w, "Business ID is required", nil)
		return
	}

	categories, err := h.service.GetCategories(r.Context(), businessID)
	if err != nil {
		handleServiceError(h.log, w, err, "get menu categories")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}

// GetMenuItem handles GET /api/menu/{id} (public)
func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetMenuItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get menu item")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// CreateMenuItem handles POST /api/menu (protected)
func (h *MenuHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	item, err := h.service.CreateMenuItem(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create menu item")
		return
	}

	utils.ResponseCreated(w, "success", item)
}

// UpdateMenuItem handles PUT /api/menu/{id} (protected)
func (h *MenuHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	item, err := h.service.UpdateMenuItem(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update menu item")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// DeleteMenuItem handles DELETE /api/menu/{id} (protected)
func (h *MenuHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteMenuItem(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete menu item")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
