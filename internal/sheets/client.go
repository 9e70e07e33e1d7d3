package sheets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/workpulse/attendance-dashboard-go/internal/domain/attendance"
	"github.com/workpulse/attendance-dashboard-go/internal/domain/employee"
	"github.com/workpulse/attendance-dashboard-go/internal/domain/leave"
)

// Client talks to the spreadsheet-backed collaborator API and converts its
// wire rows into domain entities.
type Client struct {
	transport *Transport
}

// NewClient initializes the API client
func NewClient(baseURL, token string) *Client {
	return &Client{transport: NewTransport(baseURL, token)}
}

func decode[T any](body []byte, path string) (T, error) {
	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: decoding %s response: %v", ErrUnavailable, path, err)
	}
	return env.Data, nil
}

// ListEmployees fetches the employee directory.
func (c *Client) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	body, err := c.transport.Get(ctx, "/employees", nil)
	if err != nil {
		return nil, err
	}

	rows, err := decode[[]employeeRow](body, "/employees")
	if err != nil {
		return nil, err
	}

	employees := make([]employee.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, employee.Employee{
			ID:         row.EmployeeID,
			Name:       row.Name,
			Department: row.Department,
			Role:       row.Role,
			PhotoURL:   row.PhotoURL,
		})
	}
	return employees, nil
}

// GetAttendance fetches attendance records for an employee within an
// inclusive date range.
func (c *Client) GetAttendance(ctx context.Context, employeeID, from, to string) ([]attendance.Record, error) {
	query := map[string]string{"employeeId": employeeID}
	if from != "" {
		query["from"] = from
	}
	if to != "" {
		query["to"] = to
	}

	body, err := c.transport.Get(ctx, "/attendance", query)
	if err != nil {
		return nil, err
	}

	rows, err := decode[[]attendanceRow](body, "/attendance")
	if err != nil {
		return nil, err
	}

	records := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		leaveType := row.LeaveType
		if leaveType == "" {
			leaveType = attendance.LeaveNone
		}
		records = append(records, attendance.Record{
			Date:         row.Date,
			EmployeeID:   row.EmployeeID,
			ClockIn:      row.ClockIn,
			ClockOut:     row.ClockOut,
			BreakMinutes: row.BreakMinutes,
			WFH:          row.WFH,
			LeaveType:    leaveType,
			Notes:        row.Notes,
		})
	}
	return records, nil
}

// SaveAttendance upserts a record keyed by date and employee.
func (c *Client) SaveAttendance(ctx context.Context, record attendance.Record) error {
	_, err := c.transport.Post(ctx, "/attendance", attendanceRow{
		Date:         record.Date,
		EmployeeID:   record.EmployeeID,
		ClockIn:      record.ClockIn,
		ClockOut:     record.ClockOut,
		BreakMinutes: record.BreakMinutes,
		WFH:          record.WFH,
		LeaveType:    record.LeaveType,
		Notes:        record.Notes,
	})
	return err
}

// DeleteAttendance removes the record on the given date for the employee.
func (c *Client) DeleteAttendance(ctx context.Context, date, employeeID string) error {
	_, err := c.transport.Post(ctx, "/attendance/delete", deleteAttendanceBody{
		Date:       date,
		EmployeeID: employeeID,
	})
	return err
}

// GetLeaveQuotas fetches the allocation row for a year. A missing row comes
// back as a zero quota, which downstream resolves to the defaults.
func (c *Client) GetLeaveQuotas(ctx context.Context, year int) (leave.Quota, error) {
	body, err := c.transport.Get(ctx, "/leave/quotas", map[string]string{
		"year": fmt.Sprintf("%d", year),
	})
	if err != nil {
		return leave.Quota{}, err
	}

	row, err := decode[quotaRow](body, "/leave/quotas")
	if err != nil {
		return leave.Quota{}, err
	}
	return leave.Quota{
		Year:            row.Year,
		AnnualAllocated: row.AnnualAllocated,
		CasualAllocated: row.CasualAllocated,
		SickAllocated:   row.SickAllocated,
		YearStartDate:   row.YearStartDate,
	}, nil
}

// SaveLeaveQuotas writes the allocation row for a year.
func (c *Client) SaveLeaveQuotas(ctx context.Context, quota leave.Quota) error {
	_, err := c.transport.Post(ctx, "/leave/quotas", quotaRow{
		Year:            quota.Year,
		AnnualAllocated: quota.AnnualAllocated,
		CasualAllocated: quota.CasualAllocated,
		SickAllocated:   quota.SickAllocated,
		YearStartDate:   quota.YearStartDate,
	})
	return err
}

// GetLeaveUsage fetches the per-year usage aggregate for an employee.
func (c *Client) GetLeaveUsage(ctx context.Context, employeeID string, year int) (leave.Usage, error) {
	body, err := c.transport.Get(ctx, "/leave/usage", map[string]string{
		"employeeId": employeeID,
		"year":       fmt.Sprintf("%d", year),
	})
	if err != nil {
		return leave.Usage{}, err
	}

	row, err := decode[usageRow](body, "/leave/usage")
	if err != nil {
		return leave.Usage{}, err
	}
	return leave.Usage{
		AnnualUsed: row.AnnualUsed,
		CasualUsed: row.CasualUsed,
		SickUsed:   row.SickUsed,
		WFHCount:   row.WFHCount,
	}, nil
}

// PerformYearlyReset asks the collaborator to provision quotas for the given
// year.
func (c *Client) PerformYearlyReset(ctx context.Context, year int) error {
	_, err := c.transport.Post(ctx, "/settings/year-reset", yearResetBody{Year: year})
	return err
}
