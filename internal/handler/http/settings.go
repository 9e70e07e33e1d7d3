package http

import (
	"encoding/json"
	"net/http"

	"github.com/workpulse/attendance-dashboard-go/internal/domain/leave"
	"github.com/workpulse/attendance-dashboard-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetQuotas(w http.ResponseWriter, r *http.Request)
	UpdateQuotas(w http.ResponseWriter, r *http.Request)
	YearlyReset(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewSettingsHandler(leaveService leave.LeaveService) SettingsHandler {
	return &settingsHandlerImpl{
		leaveService: leaveService,
	}
}

// GetQuotas implements SettingsHandler.
func (h *settingsHandlerImpl) GetQuotas(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.Quotas(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateQuotas implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateQuotas(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateQuotasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.UpdateQuotas(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Quotas saved", result)
}

// YearlyReset implements SettingsHandler.
func (h *settingsHandlerImpl) YearlyReset(w http.ResponseWriter, r *http.Request) {
	year, err := h.leaveService.YearlyReset(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Yearly reset completed", map[string]int{"year": year})
}
