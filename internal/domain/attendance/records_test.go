package attendance

import (
	"fmt"
	"testing"
)

func strPtr(s string) *string   { return &s }
func boolPtr(b bool) *bool      { return &b }
func f64Ptr(f float64) *float64 { return &f }

func makeRecords(n int) []Record {
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, Record{
			Date:       fmt.Sprintf("2025-03-%02d", i%28+1),
			EmployeeID: "EMP-1",
			ClockIn:    "09:00",
			ClockOut:   "17:00",
		})
	}
	return records
}

func TestApplyFilters_DateRange(t *testing.T) {
	records := []Record{
		{Date: "2025-03-01"},
		{Date: "2025-03-10"},
		{Date: "2025-03-20"},
	}
	got := ApplyFilters(records, FilterCriteria{
		DateFrom: strPtr("2025-03-01"),
		DateTo:   strPtr("2025-03-10"),
	})
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Date != "2025-03-01" || got[1].Date != "2025-03-10" {
		t.Errorf("date bounds are not inclusive: %v", got)
	}
}

func TestApplyFilters_WFHTriState(t *testing.T) {
	records := []Record{
		{Date: "2025-03-01", WFH: true},
		{Date: "2025-03-02", WFH: false},
	}

	if got := ApplyFilters(records, FilterCriteria{}); len(got) != 2 {
		t.Errorf("absent wfh filter: got %d records, want 2", len(got))
	}
	if got := ApplyFilters(records, FilterCriteria{WFH: boolPtr(true)}); len(got) != 1 || !got[0].WFH {
		t.Errorf("wfh=true filter: got %v", got)
	}
	if got := ApplyFilters(records, FilterCriteria{WFH: boolPtr(false)}); len(got) != 1 || got[0].WFH {
		t.Errorf("wfh=false filter: got %v", got)
	}
}

func TestApplyFilters_LeaveType(t *testing.T) {
	records := []Record{
		{Date: "2025-03-01", LeaveType: LeaveAnnual},
		{Date: "2025-03-02", LeaveType: LeaveSick},
		{Date: "2025-03-03", LeaveType: LeaveNone},
	}
	got := ApplyFilters(records, FilterCriteria{LeaveType: strPtr(LeaveSick)})
	if len(got) != 1 || got[0].LeaveType != LeaveSick {
		t.Errorf("leave type filter: got %v", got)
	}
}

func TestApplyFilters_HoursBoundsInclusive(t *testing.T) {
	records := []Record{
		{Date: "2025-03-01", ClockIn: "09:00", ClockOut: "17:00"}, // 8h
		{Date: "2025-03-02", ClockIn: "09:00", ClockOut: "16:00"}, // 7h
		{Date: "2025-03-03", ClockIn: "09:00", ClockOut: "18:00"}, // 9h
	}
	got := ApplyFilters(records, FilterCriteria{MinHours: f64Ptr(8), MaxHours: f64Ptr(8)})
	if len(got) != 1 || got[0].Date != "2025-03-01" {
		t.Errorf("min=max=8 should match exactly the 8h record, got %v", got)
	}
}

func TestApplyFilters_Conjunctive(t *testing.T) {
	records := []Record{
		{Date: "2025-03-01", WFH: true, ClockIn: "09:00", ClockOut: "17:00"},
		{Date: "2025-03-02", WFH: true, ClockIn: "09:00", ClockOut: "12:00"},
		{Date: "2025-03-03", WFH: false, ClockIn: "09:00", ClockOut: "17:00"},
	}
	got := ApplyFilters(records, FilterCriteria{WFH: boolPtr(true), MinHours: f64Ptr(5)})
	if len(got) != 1 || got[0].Date != "2025-03-01" {
		t.Errorf("conjunctive filters: got %v", got)
	}
}

func TestSortRecords_Directions(t *testing.T) {
	records := []Record{
		{Date: "2025-03-02"},
		{Date: "2025-03-03"},
		{Date: "2025-03-01"},
	}

	asc := SortRecords(records, SortSpec{Column: SortByDate, Direction: SortAsc})
	for i := 1; i < len(asc); i++ {
		if asc[i-1].Date > asc[i].Date {
			t.Fatalf("ascending sort out of order: %v", asc)
		}
	}

	desc := SortRecords(records, SortSpec{Column: SortByDate, Direction: SortDesc})
	for i := range desc {
		if desc[i].Date != asc[len(asc)-1-i].Date {
			t.Fatalf("descending sort is not the reverse of ascending: %v vs %v", desc, asc)
		}
	}

	// Input must not be mutated.
	if records[0].Date != "2025-03-02" {
		t.Errorf("SortRecords mutated its input: %v", records)
	}
}

func TestSortRecords_HoursComputed(t *testing.T) {
	records := []Record{
		{Date: "2025-03-01", ClockIn: "09:00", ClockOut: "17:00", BreakMinutes: 60}, // 7h
		{Date: "2025-03-02", ClockIn: "22:00", ClockOut: "06:00"},                   // 8h overnight
		{Date: "2025-03-03", ClockIn: "09:00", ClockOut: "12:00"},                   // 3h
	}
	got := SortRecords(records, SortSpec{Column: SortByHours, Direction: SortAsc})
	wantDates := []string{"2025-03-03", "2025-03-01", "2025-03-02"}
	for i, want := range wantDates {
		if got[i].Date != want {
			t.Fatalf("hours sort order = %v, want dates %v", got, wantDates)
		}
	}
}

func TestSortRecords_TieBreakByDate(t *testing.T) {
	records := []Record{
		{Date: "2025-03-03", ClockIn: "09:00", ClockOut: "17:00"},
		{Date: "2025-03-01", ClockIn: "09:00", ClockOut: "17:00"},
		{Date: "2025-03-02", ClockIn: "09:00", ClockOut: "17:00"},
	}
	got := SortRecords(records, SortSpec{Column: SortByHours, Direction: SortDesc})
	wantDates := []string{"2025-03-01", "2025-03-02", "2025-03-03"}
	for i, want := range wantDates {
		if got[i].Date != want {
			t.Fatalf("equal hours should tie-break by date ascending, got %v", got)
		}
	}
}

func TestSortSpec_Toggle(t *testing.T) {
	spec := DefaultSort()
	if spec.Column != SortByDate || spec.Direction != SortDesc {
		t.Fatalf("default sort = %+v", spec)
	}

	spec = spec.Toggle(SortByDate)
	if spec.Direction != SortAsc {
		t.Errorf("same column should flip to asc, got %+v", spec)
	}
	spec = spec.Toggle(SortByDate)
	if spec.Direction != SortDesc {
		t.Errorf("same column should flip back to desc, got %+v", spec)
	}
	spec = spec.Toggle(SortByHours)
	if spec.Column != SortByHours || spec.Direction != SortDesc {
		t.Errorf("new column should start desc, got %+v", spec)
	}
}

func TestPaginate(t *testing.T) {
	records := makeRecords(45)
	limit := 20

	cases := []struct {
		page    int
		wantLen int
	}{
		{1, 20},
		{2, 20},
		{3, 5},
		{4, 0},
		{0, 20}, // clamped to first page
	}
	for _, c := range cases {
		got := Paginate(records, c.page, limit)
		if len(got) != c.wantLen {
			t.Errorf("Paginate(page=%d) returned %d records, want %d", c.page, len(got), c.wantLen)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		count int
		limit int
		want  int
	}{
		{0, 20, 1},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{45, 20, 3},
	}
	for _, c := range cases {
		got := TotalPages(c.count, c.limit)
		if got != c.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", c.count, c.limit, got, c.want)
		}
	}
}

func TestShowingLabel(t *testing.T) {
	cases := []struct {
		page  int
		limit int
		total int
		want  string
	}{
		{1, 20, 45, "1-20 of 45"},
		{3, 20, 45, "41-45 of 45"},
		{1, 20, 0, "0-0 of 0"},
	}
	for _, c := range cases {
		got := ShowingLabel(c.page, c.limit, c.total)
		if got != c.want {
			t.Errorf("ShowingLabel(%d, %d, %d) = %q, want %q", c.page, c.limit, c.total, got, c.want)
		}
	}
}
