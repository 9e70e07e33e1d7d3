package attendance

import (
	"context"
)

// AttendanceService defines business logic for the attendance view
type AttendanceService interface {
	// List returns the filtered, sorted page of the current snapshot
	List(ctx context.Context, query ListQuery) (ListRecordsResponse, error)

	// SetFilters replaces the active filters and resets to the first page
	SetFilters(ctx context.Context, criteria FilterCriteria) (ListRecordsResponse, error)

	// ToggleSort cycles the sort spec for a column and resets to the first page
	ToggleSort(ctx context.Context, column string) (ListRecordsResponse, error)

	// SetPage moves the view to a page within bounds
	SetPage(ctx context.Context, page int) (ListRecordsResponse, error)

	// Save upserts a record for the selected employee and refreshes the snapshot
	Save(ctx context.Context, req SaveRecordRequest) error

	// Delete removes the record on the given date and refreshes the snapshot
	Delete(ctx context.Context, date string) error

	// TodayStatus reports clock state and computed hours for today
	TodayStatus(ctx context.Context) (TodayStatusResponse, error)

	// DailyHours returns the worked-hours series for the last n days
	DailyHours(ctx context.Context, days int) ([]DailyHoursPoint, error)

	// ExportCSV renders the current filtered view as CSV along with a
	// suggested download filename
	ExportCSV(ctx context.Context) ([]byte, string, error)
}
