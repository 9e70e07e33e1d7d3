package employee

import (
	"github.com/workpulse/attendance-dashboard-go/internal/pkg/validator"
)

type SelectEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *SelectEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Role       string `json:"role"`
	PhotoURL   string `json:"photo_url,omitempty"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Department: e.Department,
		Role:       e.Role,
		PhotoURL:   e.PhotoURL,
	}
}

func ToEmployeeResponses(employees []Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, ToEmployeeResponse(e))
	}
	return responses
}
