package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/workpulse/attendance-dashboard-go/internal/domain/attendance"
)

// Header of the attendance CSV, matching the dashboard table columns.
var header = []string{"Date", "Clock In", "Clock Out", "Break (min)", "Total Hours", "WFH", "Leave Type", "Notes"}

// WriteCSV writes the attendance records as CSV to w. Hours are rendered
// with two decimals and WFH as Yes/No.
func WriteCSV(w io.Writer, records []attendance.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		wfh := "No"
		if r.WFH {
			wfh = "Yes"
		}
		row := []string{
			r.Date,
			r.ClockIn,
			r.ClockOut,
			fmt.Sprintf("%d", r.BreakMinutes),
			fmt.Sprintf("%.2f", r.Hours()),
			wfh,
			r.LeaveType,
			r.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}

// Filename builds the suggested download name for an export.
func Filename(employeeID string, unixMillis int64) string {
	return fmt.Sprintf("attendance_%s_%d.csv", employeeID, unixMillis)
}
