package leave

import (
	"github.com/workpulse/attendance-dashboard-go/internal/pkg/validator"
)

// ========================================
// LEAVE DTOs
// ========================================

type RequestLeaveRequest struct {
	Date      string `json:"date"`
	LeaveType string `json:"leave_type"`
	Reason    string `json:"reason"`
}

func (r *RequestLeaveRequest) Validate() error {
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

	if !validator.IsInSlice(r.LeaveType, Kinds()) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of Annual, Casual, Sick",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateQuotasRequest struct {
	AnnualAllocated int    `json:"annual_allocated"`
	CasualAllocated int    `json:"casual_allocated"`
	SickAllocated   int    `json:"sick_allocated"`
	YearStartDate   string `json:"year_start_date"`
}

func (r *UpdateQuotasRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AnnualAllocated < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "annual_allocated",
			Message: "annual_allocated must not be negative",
		})
	}

	if r.CasualAllocated < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "casual_allocated",
			Message: "casual_allocated must not be negative",
		})
	}

	if r.SickAllocated < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "sick_allocated",
			Message: "sick_allocated must not be negative",
		})
	}

	if r.YearStartDate != "" {
		if _, ok := validator.IsValidDate(r.YearStartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "year_start_date",
				Message: "year_start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type QuotasResponse struct {
	Year            int    `json:"year"`
	AnnualAllocated int    `json:"annual_allocated"`
	CasualAllocated int    `json:"casual_allocated"`
	SickAllocated   int    `json:"sick_allocated"`
	YearStartDate   string `json:"year_start_date"`
}

func ToQuotasResponse(q Quota) QuotasResponse {
	return QuotasResponse{
		Year:            q.Year,
		AnnualAllocated: q.AnnualAllocated,
		CasualAllocated: q.CasualAllocated,
		SickAllocated:   q.SickAllocated,
		YearStartDate:   q.YearStartDate,
	}
}

type BalanceSummaryResponse struct {
	Year     int       `json:"year"`
	Balances []Balance `json:"balances"`
	WFHCount int       `json:"wfh_count"`
}

type HistoryEntry struct {
	Date      string `json:"date"`
	LeaveType string `json:"leave_type"`
	Notes     string `json:"notes,omitempty"`
}

type UsageBreakdownResponse struct {
	AnnualUsed int `json:"annual_used"`
	CasualUsed int `json:"casual_used"`
	SickUsed   int `json:"sick_used"`
	WFHCount   int `json:"wfh_count"`
}
