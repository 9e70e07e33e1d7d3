package http

import (
	"encoding/json"
	"net/http"

	"github.com/workpulse/attendance-dashboard-go/internal/domain/leave"
	"github.com/workpulse/attendance-dashboard-go/internal/handler/http/response"
)

type LeaveHandler interface {
	History(w http.ResponseWriter, r *http.Request)
	Request(w http.ResponseWriter, r *http.Request)
	Balances(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// History implements LeaveHandler.
func (h *leaveHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.History(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Request implements LeaveHandler.
func (h *leaveHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	var req leave.RequestLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.leaveService.Request(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", nil)
}

// Balances implements LeaveHandler.
func (h *leaveHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.Balances(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
