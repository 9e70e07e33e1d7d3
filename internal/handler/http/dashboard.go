package http

import (
	"net/http"

	"github.com/workpulse/attendance-dashboard-go/internal/domain/attendance"
	"github.com/workpulse/attendance-dashboard-go/internal/domain/employee"
	"github.com/workpulse/attendance-dashboard-go/internal/domain/leave"
	"github.com/workpulse/attendance-dashboard-go/internal/handler/http/response"
)

const hoursChartDays = 30

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	employeeService   employee.EmployeeService
	attendanceService attendance.AttendanceService
	leaveService      leave.LeaveService
}

func NewDashboardHandler(employeeService employee.EmployeeService, attendanceService attendance.AttendanceService, leaveService leave.LeaveService) DashboardHandler {
	return &dashboardHandlerImpl{
		employeeService:   employeeService,
		attendanceService: attendanceService,
		leaveService:      leaveService,
	}
}

type dashboardResponse struct {
	Employee   employee.EmployeeResponse      `json:"employee"`
	Today      attendance.TodayStatusResponse `json:"today"`
	Balances   leave.BalanceSummaryResponse   `json:"balances"`
	HoursChart []attendance.DailyHoursPoint   `json:"hours_chart"`
	LeaveChart leave.UsageBreakdownResponse   `json:"leave_chart"`
}

// Get returns everything the dashboard page renders in one shot. All of it
// comes from the in-memory snapshot, so there is no fan-out to the
// collaborator here.
func (h *dashboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	emp, err := h.employeeService.Current(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	today, err := h.attendanceService.TodayStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	balances, err := h.leaveService.Balances(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	hoursChart, err := h.attendanceService.DailyHours(r.Context(), hoursChartDays)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	leaveChart, err := h.leaveService.Usage(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboardResponse{
		Employee:   emp,
		Today:      today,
		Balances:   balances,
		HoursChart: hoursChart,
		LeaveChart: leaveChart,
	})
}
