package employee

import (
	"context"
)

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	// List returns every employee in the directory
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Select switches the dashboard to the given employee
	Select(ctx context.Context, req SelectEmployeeRequest) (EmployeeResponse, error)

	// Current returns the selected employee
	Current(ctx context.Context) (EmployeeResponse, error)
}
