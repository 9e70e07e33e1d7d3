package attendance

import (
	"sort"
)

// Sortable columns for the attendance view.
const (
	SortByDate     = "date"
	SortByClockIn  = "clockIn"
	SortByClockOut = "clockOut"
	SortByHours    = "hours"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// FilterCriteria holds the optional attendance filters. Nil fields are
// no-ops; present fields all have to match (conjunctive).
type FilterCriteria struct {
	DateFrom  *string  `json:"date_from,omitempty"`
	DateTo    *string  `json:"date_to,omitempty"`
	WFH       *bool    `json:"wfh,omitempty"`
	LeaveType *string  `json:"leave_type,omitempty"`
	MinHours  *float64 `json:"min_hours,omitempty"`
	MaxHours  *float64 `json:"max_hours,omitempty"`
}

// SortSpec names the column and direction of the attendance view ordering.
type SortSpec struct {
	Column    string `json:"column"`
	Direction string `json:"direction"`
}

// DefaultSort is the ordering applied before the user picks a column.
func DefaultSort() SortSpec {
	return SortSpec{Column: SortByDate, Direction: SortDesc}
}

// Toggle returns the spec that results from clicking column: the same column
// flips direction, a new column starts descending.
func (s SortSpec) Toggle(column string) SortSpec {
	if s.Column == column {
		if s.Direction == SortAsc {
			return SortSpec{Column: column, Direction: SortDesc}
		}
		return SortSpec{Column: column, Direction: SortAsc}
	}
	return SortSpec{Column: column, Direction: SortDesc}
}

// ApplyFilters returns the records matching every present criterion. Date
// bounds compare ISO date strings lexicographically and are inclusive, as are
// the computed-hours bounds.
func ApplyFilters(records []Record, criteria FilterCriteria) []Record {
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if criteria.DateFrom != nil && r.Date < *criteria.DateFrom {
			continue
		}
		if criteria.DateTo != nil && r.Date > *criteria.DateTo {
			continue
		}
		if criteria.WFH != nil && r.WFH != *criteria.WFH {
			continue
		}
		if criteria.LeaveType != nil && r.LeaveType != *criteria.LeaveType {
			continue
		}
		if criteria.MinHours != nil || criteria.MaxHours != nil {
			hours := r.Hours()
			if criteria.MinHours != nil && hours < *criteria.MinHours {
				continue
			}
			if criteria.MaxHours != nil && hours > *criteria.MaxHours {
				continue
			}
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// SortRecords orders records by the given spec without mutating the input.
// Records that compare equal on the chosen column keep a deterministic order
// by falling back to date ascending.
func SortRecords(records []Record, spec SortSpec) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)

	less := lessFunc(spec.Column)
	desc := spec.Direction == SortDesc

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if desc {
			a, b = b, a
		}
		switch {
		case less(a, b):
			return true
		case less(b, a):
			return false
		default:
			return sorted[i].Date < sorted[j].Date
		}
	})
	return sorted
}

func lessFunc(column string) func(a, b Record) bool {
	switch column {
	case SortByClockIn:
		return func(a, b Record) bool { return a.ClockIn < b.ClockIn }
	case SortByClockOut:
		return func(a, b Record) bool { return a.ClockOut < b.ClockOut }
	case SortByHours:
		return func(a, b Record) bool { return a.Hours() < b.Hours() }
	default:
		return func(a, b Record) bool { return a.Date < b.Date }
	}
}

// Paginate slices out the 1-based page of size limit. Pages past the end are
// empty, never an error.
func Paginate(records []Record, page, limit int) []Record {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return []Record{}
	}
	start := (page - 1) * limit
	if start >= len(records) {
		return []Record{}
	}
	end := start + limit
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// TotalPages returns how many pages count records occupy, never less than 1.
func TotalPages(count, limit int) int {
	if limit < 1 {
		return 1
	}
	pages := (count + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}
