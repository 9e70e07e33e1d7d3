package attendance

import (
	"fmt"

	"github.com/workpulse/attendance-dashboard-go/internal/pkg/timeclock"
	"github.com/workpulse/attendance-dashboard-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type SaveRecordRequest struct {
	Date         string `json:"date"`
	ClockIn      string `json:"clock_in"`
	ClockOut     string `json:"clock_out"`
	BreakMinutes int    `json:"break_minutes"`
	WFH          bool   `json:"wfh"`
	LeaveType    string `json:"leave_type"`
	Notes        string `json:"notes"`
}

func (r *SaveRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.ClockIn != "" && !timeclock.IsValidTime(r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be a 24-hour HH:MM time",
		})
	}

	if r.ClockOut != "" && !timeclock.IsValidTime(r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be a 24-hour HH:MM time",
		})
	}

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if r.LeaveType == "" {
		r.LeaveType = LeaveNone
	}
	if !validator.IsInSlice(r.LeaveType, LeaveTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of None, Annual, Casual, Sick",
		})
	}

	if r.WFH && r.LeaveType != LeaveNone {
		errs = append(errs, validator.ValidationError{
			Field:   "wfh",
			Message: "a leave day cannot also be a work-from-home day",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToRecord builds the domain record for the given employee. Validate must
// have been called first so the leave type default is applied.
func (r *SaveRecordRequest) ToRecord(employeeID string) Record {
	return Record{
		Date:         r.Date,
		EmployeeID:   employeeID,
		ClockIn:      r.ClockIn,
		ClockOut:     r.ClockOut,
		BreakMinutes: r.BreakMinutes,
		WFH:          r.WFH,
		LeaveType:    r.LeaveType,
		Notes:        r.Notes,
	}
}

// ListQuery optionally overrides the page for a single read. Zero means the
// view's current page.
type ListQuery struct {
	Page int `json:"page"`
}

func (q *ListQuery) Validate() error {
	if q.Page < 0 {
		q.Page = 0
	}
	return nil
}

type RecordResponse struct {
	Date         string  `json:"date"`
	ClockIn      string  `json:"clock_in"`
	ClockOut     string  `json:"clock_out"`
	BreakMinutes int     `json:"break_minutes"`
	TotalHours   float64 `json:"total_hours"`
	WFH          bool    `json:"wfh"`
	LeaveType    string  `json:"leave_type"`
	Notes        string  `json:"notes,omitempty"`
}

func ToRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		Date:         r.Date,
		ClockIn:      r.ClockIn,
		ClockOut:     r.ClockOut,
		BreakMinutes: r.BreakMinutes,
		TotalHours:   r.Hours(),
		WFH:          r.WFH,
		LeaveType:    r.LeaveType,
		Notes:        r.Notes,
	}
}

func ToRecordResponses(records []Record) []RecordResponse {
	responses := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, ToRecordResponse(r))
	}
	return responses
}

type ListRecordsResponse struct {
	Records    []RecordResponse `json:"records"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Showing    string           `json:"showing"`
	Filters    FilterCriteria   `json:"filters"`
	Sort       SortSpec         `json:"sort"`
}

// ShowingLabel renders the "x-y of n" range for a page.
func ShowingLabel(page, limit, total int) string {
	if total == 0 {
		return "0-0 of 0"
	}
	start := (page-1)*limit + 1
	end := page * limit
	if end > total {
		end = total
	}
	return fmt.Sprintf("%d-%d of %d", start, end, total)
}

type TodayStatusResponse struct {
	Date       string  `json:"date"`
	ClockIn    string  `json:"clock_in"`
	ClockOut   string  `json:"clock_out"`
	TotalHours float64 `json:"total_hours"`
	WFH        bool    `json:"wfh"`
	LeaveType  string  `json:"leave_type"`
	HasRecord  bool    `json:"has_record"`
}

type DailyHoursPoint struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}
