package leave

import (
	"context"
	"fmt"

	"github.com/workpulse/attendance-dashboard-go/internal/domain/attendance"
	"github.com/workpulse/attendance-dashboard-go/internal/domain/employee"
	"github.com/workpulse/attendance-dashboard-go/internal/domain/leave"
	"github.com/workpulse/attendance-dashboard-go/internal/session"
)

type LeaveServiceImpl struct {
	session *session.Controller
}

func NewLeaveService(ctrl *session.Controller) leave.LeaveService {
	return &LeaveServiceImpl{
		session: ctrl,
	}
}

// Request stores the leave day as a zero-duration attendance record so the
// collaborator's usage aggregation picks it up.
func (s *LeaveServiceImpl) Request(ctx context.Context, req leave.RequestLeaveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	snap := s.session.Snapshot()
	if snap.EmployeeID == "" {
		return employee.ErrNoEmployeeChosen
	}

	record := attendance.Record{
		Date:       req.Date,
		EmployeeID: snap.EmployeeID,
		ClockIn:    "00:00",
		ClockOut:   "00:00",
		WFH:        false,
		LeaveType:  req.LeaveType,
		Notes:      req.Reason,
	}
	if err := s.session.Client().SaveAttendance(ctx, record); err != nil {
		return fmt.Errorf("failed to submit leave request: %w", err)
	}
	return s.session.Refresh(ctx)
}

func (s *LeaveServiceImpl) History(ctx context.Context) ([]leave.HistoryEntry, error) {
	snap := s.session.Snapshot()
	if snap.EmployeeID == "" {
		return nil, employee.ErrNoEmployeeChosen
	}

	records := attendance.SortRecords(snap.Records, attendance.DefaultSort())
	entries := make([]leave.HistoryEntry, 0)
	for _, r := range records {
		if !r.IsLeaveDay() {
			continue
		}
		entries = append(entries, leave.HistoryEntry{
			Date:      r.Date,
			LeaveType: r.LeaveType,
			Notes:     r.Notes,
		})
	}
	return entries, nil
}

func (s *LeaveServiceImpl) Balances(ctx context.Context) (leave.BalanceSummaryResponse, error) {
	snap := s.session.Snapshot()
	if snap.EmployeeID == "" {
		return leave.BalanceSummaryResponse{}, employee.ErrNoEmployeeChosen
	}

	return leave.BalanceSummaryResponse{
		Year:     snap.Year,
		Balances: leave.Reconcile(snap.Quota, snap.Usage, s.session.Defaults()),
		WFHCount: snap.Usage.WFHCount,
	}, nil
}

func (s *LeaveServiceImpl) Usage(ctx context.Context) (leave.UsageBreakdownResponse, error) {
	snap := s.session.Snapshot()
	if snap.EmployeeID == "" {
		return leave.UsageBreakdownResponse{}, employee.ErrNoEmployeeChosen
	}

	return leave.UsageBreakdownResponse{
		AnnualUsed: snap.Usage.AnnualUsed,
		CasualUsed: snap.Usage.CasualUsed,
		SickUsed:   snap.Usage.SickUsed,
		WFHCount:   snap.Usage.WFHCount,
	}, nil
}

func (s *LeaveServiceImpl) Quotas(ctx context.Context) (leave.QuotasResponse, error) {
	snap := s.session.Snapshot()
	quota := snap.Quota
	if quota.Year == 0 {
		quota.Year = snap.Year
	}
	if quota.YearStartDate == "" {
		quota.YearStartDate = fmt.Sprintf("%d-01-01", snap.Year)
	}
	return leave.ToQuotasResponse(quota), nil
}

func (s *LeaveServiceImpl) UpdateQuotas(ctx context.Context, req leave.UpdateQuotasRequest) (leave.QuotasResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.QuotasResponse{}, err
	}

	snap := s.session.Snapshot()
	quota := leave.Quota{
		Year:            snap.Year,
		AnnualAllocated: req.AnnualAllocated,
		CasualAllocated: req.CasualAllocated,
		SickAllocated:   req.SickAllocated,
		YearStartDate:   req.YearStartDate,
	}
	if quota.YearStartDate == "" {
		quota.YearStartDate = fmt.Sprintf("%d-01-01", snap.Year)
	}

	if err := s.session.Client().SaveLeaveQuotas(ctx, quota); err != nil {
		return leave.QuotasResponse{}, fmt.Errorf("failed to save leave quotas: %w", err)
	}
	if err := s.session.Refresh(ctx); err != nil {
		return leave.QuotasResponse{}, err
	}
	return leave.ToQuotasResponse(quota), nil
}

// YearlyReset provisions quotas for the next year, then advances the session
// year and reloads. The session only advances after the collaborator call
// succeeds.
func (s *LeaveServiceImpl) YearlyReset(ctx context.Context) (int, error) {
	snap := s.session.Snapshot()
	nextYear := snap.Year + 1

	if err := s.session.Client().PerformYearlyReset(ctx, nextYear); err != nil {
		return 0, fmt.Errorf("failed to perform yearly reset: %w", err)
	}

	year := s.session.AdvanceYear()
	if snap.EmployeeID != "" {
		if err := s.session.Refresh(ctx); err != nil {
			return year, err
		}
	}
	return year, nil
}
