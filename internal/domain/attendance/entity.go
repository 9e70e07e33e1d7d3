package attendance

import (
	"github.com/workpulse/attendance-dashboard-go/internal/pkg/timeclock"
)

// Leave types carried on an attendance record. An empty LeaveType means a
// regular working day.
const (
	LeaveNone   = "None"
	LeaveAnnual = "Annual"
	LeaveCasual = "Casual"
	LeaveSick   = "Sick"
)

// Record is a single attendance row as stored by the spreadsheet
// collaborator. Dates are ISO "2006-01-02" strings and clock times are
// 24-hour "HH:MM" strings; empty time strings mean not clocked in/out.
type Record struct {
	Date         string
	EmployeeID   string
	ClockIn      string
	ClockOut     string
	BreakMinutes int
	WFH          bool
	LeaveType    string
	Notes        string
}

// Hours returns the computed worked hours for the record.
func (r Record) Hours() float64 {
	return timeclock.ComputeHours(r.ClockIn, r.ClockOut, r.BreakMinutes)
}

// IsLeaveDay reports whether the record represents a leave day rather than a
// working day.
func (r Record) IsLeaveDay() bool {
	return r.LeaveType != "" && r.LeaveType != LeaveNone
}

// LeaveTypes lists the leave kinds a record may carry.
func LeaveTypes() []string {
	return []string{LeaveNone, LeaveAnnual, LeaveCasual, LeaveSick}
}
