package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"walkin-queue/internal/dto/request"
	"walkin-queue/internal/usecase"
	"walkin-queue/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StaffHandler struct {
	service usecase.StaffService
	log     *zap.Logger
}

func NewStaffHandler(service usecase.StaffService, log *zap.Logger) *StaffHandler {
	return &StaffHandler{
		service: service,
		log:     log.With(zap.String("handler", "staff")),
	}
}

// GetStaff handles GET /api/staff/business/{businessId} (protected)
func (h *StaffHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	var status, role *string
	if s := query.Get("status"); s != "" {
		status = &s
	}
	if s := query.Get("role"); s != "" {
		role = &s
	}

	staff, err := h.service.GetStaff(r.Context(), actor, chi.URLParam(r, "businessId"), status, role)
	if err != nil {
		handleServiceError(h.log, w, err, "get staff")
		return
	}

	utils.ResponseSuccess(w, "success", staff)
}

// GetStaffMember handles GET /api/staff/{id} (protected)
func (h *StaffHandler) GetStaffMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	member, err := h.service.GetStaffMember(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get staff member")
		return
	}

	utils.ResponseSuccess(w, "success", member)
}

// CreateStaff handles POST /api/staff (protected)
func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	member, err := h.service.CreateStaff(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create staff member")
		return
	}

	utils.ResponseCreated(w, "success", member)
}

// UpdateStaff handles PUT /api/staff/{id} (protected)
func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	member, err := h.service.UpdateStaff(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update staff member")
		return
	}

	utils.ResponseSuccess(w, "success", member)
}

// GetStaffActivity handles GET /api/staff/{id}/activity (protected)
// Optional query params: startDate, endDate (RFC 3339 or YYYY-MM-DD).
func (h *StaffHandler) GetStaffActivity(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	from, ok := parseDateParam(query.Get("startDate"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid startDate", nil)
		return
	}
	to, ok := parseDateParam(query.Get("endDate"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid endDate", nil)
		return
	}

	activity, err := h.service.GetStaffActivity(r.Context(), actor, chi.URLParam(r, "id"), from, to)
	if err != nil {
		handleServiceError(h.log, w, err, "get staff activity")
		return
	}

	utils.ResponseSuccess(w, "success", activity)
}

func parseDateParam(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, true
		}
	}
	return nil, false
}

// DeleteStaff handles DELETE /api/staff/{id} (protected)
func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteStaff(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete staff member")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
