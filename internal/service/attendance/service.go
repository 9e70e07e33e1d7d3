package attendance

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/workpulse/attendance-dashboard-go/internal/domain/attendance"
	"github.com/workpulse/attendance-dashboard-go/internal/domain/employee"
	"github.com/workpulse/attendance-dashboard-go/internal/export"
	"github.com/workpulse/attendance-dashboard-go/internal/pkg/validator"
	"github.com/workpulse/attendance-dashboard-go/internal/session"
)

type AttendanceServiceImpl struct {
	session *session.Controller
}

func NewAttendanceService(ctrl *session.Controller) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		session: ctrl,
	}
}

func (s *AttendanceServiceImpl) buildListResponse(snap session.Snapshot) attendance.ListRecordsResponse {
	return s.buildListResponseAt(snap, snap.Page)
}

func (s *AttendanceServiceImpl) buildListResponseAt(snap session.Snapshot, page int) attendance.ListRecordsResponse {
	limit := s.session.PageSize()
	total := len(snap.Filtered)

	totalPages := attendance.TotalPages(total, limit)
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return attendance.ListRecordsResponse{
		Records:    attendance.ToRecordResponses(attendance.Paginate(snap.Filtered, page, limit)),
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Showing:    attendance.ShowingLabel(page, limit, total),
		Filters:    snap.Filters,
		Sort:       snap.Sort,
	}
}

func (s *AttendanceServiceImpl) List(ctx context.Context, query attendance.ListQuery) (attendance.ListRecordsResponse, error) {
	if err := query.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	snap := s.session.Snapshot()
	if snap.EmployeeID == "" {
		return attendance.ListRecordsResponse{}, employee.ErrNoEmployeeChosen
	}

	page := snap.Page
	if query.Page > 0 {
		page = query.Page
	}
	return s.buildListResponseAt(snap, page), nil
}

func (s *AttendanceServiceImpl) SetFilters(ctx context.Context, criteria attendance.FilterCriteria) (attendance.ListRecordsResponse, error) {
	if criteria.LeaveType != nil && !validator.IsInSlice(*criteria.LeaveType, attendance.LeaveTypes()) {
		return attendance.ListRecordsResponse{}, validator.ValidationErrors{{
			Field:   "leave_type",
			Message: "leave_type must be one of None, Annual, Casual, Sick",
		}}
	}
	if criteria.DateFrom != nil {
		if _, ok := validator.IsValidDate(*criteria.DateFrom); !ok {
			return attendance.ListRecordsResponse{}, validator.ValidationErrors{{
				Field:   "date_from",
				Message: "date_from must be in YYYY-MM-DD format",
			}}
		}
	}
	if criteria.DateTo != nil {
		if _, ok := validator.IsValidDate(*criteria.DateTo); !ok {
			return attendance.ListRecordsResponse{}, validator.ValidationErrors{{
				Field:   "date_to",
				Message: "date_to must be in YYYY-MM-DD format",
			}}
		}
	}

	snap := s.session.SetFilters(criteria)
	return s.buildListResponse(snap), nil
}

func (s *AttendanceServiceImpl) ToggleSort(ctx context.Context, column string) (attendance.ListRecordsResponse, error) {
	columns := []string{attendance.SortByDate, attendance.SortByClockIn, attendance.SortByClockOut, attendance.SortByHours}
	if !validator.IsInSlice(column, columns) {
		return attendance.ListRecordsResponse{}, validator.ValidationErrors{{
			Field:   "column",
			Message: "column must be one of date, clockIn, clockOut, hours",
		}}
	}

	snap := s.session.ToggleSort(column)
	return s.buildListResponse(snap), nil
}

func (s *AttendanceServiceImpl) SetPage(ctx context.Context, page int) (attendance.ListRecordsResponse, error) {
	snap := s.session.SetPage(page)
	return s.buildListResponse(snap), nil
}

func (s *AttendanceServiceImpl) Save(ctx context.Context, req attendance.SaveRecordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	snap := s.session.Snapshot()
	if snap.EmployeeID == "" {
		return employee.ErrNoEmployeeChosen
	}

	if err := s.session.Client().SaveAttendance(ctx, req.ToRecord(snap.EmployeeID)); err != nil {
		return fmt.Errorf("failed to save attendance record: %w", err)
	}
	return s.session.Refresh(ctx)
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, date string) error {
	if _, ok := validator.IsValidDate(date); !ok {
		return validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	snap := s.session.Snapshot()
	if snap.EmployeeID == "" {
		return employee.ErrNoEmployeeChosen
	}

	if err := s.session.Client().DeleteAttendance(ctx, date, snap.EmployeeID); err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return s.session.Refresh(ctx)
}

func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context) (attendance.TodayStatusResponse, error) {
	snap := s.session.Snapshot()
	if snap.EmployeeID == "" {
		return attendance.TodayStatusResponse{}, employee.ErrNoEmployeeChosen
	}

	today := s.session.Today()
	for _, r := range snap.Records {
		if r.Date == today {
			return attendance.TodayStatusResponse{
				Date:       today,
				ClockIn:    r.ClockIn,
				ClockOut:   r.ClockOut,
				TotalHours: r.Hours(),
				WFH:        r.WFH,
				LeaveType:  r.LeaveType,
				HasRecord:  true,
			}, nil
		}
	}
	return attendance.TodayStatusResponse{Date: today, LeaveType: attendance.LeaveNone}, nil
}

// DailyHours builds the worked-hours series for the last days calendar days
// ending today. Days without a record and leave days count as zero.
func (s *AttendanceServiceImpl) DailyHours(ctx context.Context, days int) ([]attendance.DailyHoursPoint, error) {
	snap := s.session.Snapshot()
	if snap.EmployeeID == "" {
		return nil, employee.ErrNoEmployeeChosen
	}
	if days < 1 {
		days = 30
	}

	byDate := make(map[string]attendance.Record, len(snap.Records))
	for _, r := range snap.Records {
		byDate[r.Date] = r
	}

	today := time.Now().In(s.session.Location())
	points := make([]attendance.DailyHoursPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		point := attendance.DailyHoursPoint{Date: date}
		if r, ok := byDate[date]; ok && !r.IsLeaveDay() {
			point.Hours = r.Hours()
		}
		points = append(points, point)
	}
	return points, nil
}

func (s *AttendanceServiceImpl) ExportCSV(ctx context.Context) ([]byte, string, error) {
	snap := s.session.Snapshot()
	if snap.EmployeeID == "" {
		return nil, "", employee.ErrNoEmployeeChosen
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, snap.Filtered); err != nil {
		return nil, "", fmt.Errorf("failed to export attendance records: %w", err)
	}
	return buf.Bytes(), export.Filename(snap.EmployeeID, time.Now().UnixMilli()), nil
}
