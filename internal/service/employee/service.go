package employee

import (
	"context"
	"fmt"

	"github.com/workpulse/attendance-dashboard-go/internal/domain/employee"
	"github.com/workpulse/attendance-dashboard-go/internal/session"
)

type EmployeeServiceImpl struct {
	session *session.Controller
}

func NewEmployeeService(ctrl *session.Controller) employee.EmployeeService {
	return &EmployeeServiceImpl{
		session: ctrl,
	}
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.session.Client().ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employee.ToEmployeeResponses(employees), nil
}

func (s *EmployeeServiceImpl) Select(ctx context.Context, req employee.SelectEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.session.SelectEmployee(ctx, req.EmployeeID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(s.session.Snapshot().Employee), nil
}

func (s *EmployeeServiceImpl) Current(ctx context.Context) (employee.EmployeeResponse, error) {
	snap := s.session.Snapshot()
	if snap.EmployeeID == "" {
		return employee.EmployeeResponse{}, employee.ErrNoEmployeeChosen
	}
	return employee.ToEmployeeResponse(snap.Employee), nil
}
