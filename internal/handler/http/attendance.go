package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse/attendance-dashboard-go/internal/domain/attendance"
	"github.com/workpulse/attendance-dashboard-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	SetFilters(w http.ResponseWriter, r *http.Request)
	SetSort(w http.ResponseWriter, r *http.Request)
	SetPage(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var query attendance.ListQuery
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "page must be a number", nil)
			return
		}
		query.Page = page
	}

	result, err := h.attendanceService.List(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetFilters implements AttendanceHandler.
func (h *attendanceHandlerImpl) SetFilters(w http.ResponseWriter, r *http.Request) {
	var criteria attendance.FilterCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.SetFilters(r.Context(), criteria)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Filters applied", result)
}

// SetSort implements AttendanceHandler.
func (h *attendanceHandlerImpl) SetSort(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Column string `json:"column"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ToggleSort(r.Context(), req.Column)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetPage implements AttendanceHandler.
func (h *attendanceHandlerImpl) SetPage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Page int `json:"page"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.SetPage(r.Context(), req.Page)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Save implements AttendanceHandler.
func (h *attendanceHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req attendance.SaveRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.Save(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record saved", nil)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	if err := h.attendanceService.Delete(r.Context(), date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// ExportCSV implements AttendanceHandler.
func (h *attendanceHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.attendanceService.ExportCSV(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}
