package response

import (
	"errors"
	"net/http"

	"github.com/workpulse/attendance-dashboard-go/internal/domain/attendance"
	"github.com/workpulse/attendance-dashboard-go/internal/domain/employee"
	"github.com/workpulse/attendance-dashboard-go/internal/domain/leave"
	"github.com/workpulse/attendance-dashboard-go/internal/pkg/validator"
	"github.com/workpulse/attendance-dashboard-go/internal/sheets"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Collaborator failures: the previous snapshot is kept, the client just
	// sees that the reload failed.
	case errors.Is(err, sheets.ErrUnavailable):
		BadGateway(w, "Spreadsheet service unavailable, showing last loaded data")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoEmployeeChosen):
		BadRequest(w, "No employee selected", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoSnapshot):
		BadRequest(w, "No attendance data loaded", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrQuotaNotFound):
		NotFound(w, "Leave quota not found for year")
	case errors.Is(err, leave.ErrDuplicateRecord):
		Conflict(w, "A record already exists for this date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
