package sheets

// Wire types for the spreadsheet collaborator API. Field names follow the
// collaborator's PascalCase JSON; every response wraps its payload in a
// "data" envelope.

type envelope[T any] struct {
	Data T `json:"data"`
}

type employeeRow struct {
	EmployeeID string `json:"EmployeeID"`
	Name       string `json:"Name"`
	Department string `json:"Department"`
	Role       string `json:"Role"`
	PhotoURL   string `json:"PhotoURL"`
}

type attendanceRow struct {
	Date         string `json:"Date"`
	EmployeeID   string `json:"EmployeeID"`
	ClockIn      string `json:"ClockIn"`
	ClockOut     string `json:"ClockOut"`
	BreakMinutes int    `json:"BreakMinutes"`
	WFH          bool   `json:"WFH"`
	LeaveType    string `json:"LeaveType"`
	Notes        string `json:"Notes"`
}

type quotaRow struct {
	Year            int    `json:"Year"`
	AnnualAllocated int    `json:"AnnualAllocated"`
	CasualAllocated int    `json:"CasualAllocated"`
	SickAllocated   int    `json:"SickAllocated"`
	YearStartDate   string `json:"YearStartDate"`
}

type usageRow struct {
	AnnualUsed int `json:"AnnualUsed"`
	CasualUsed int `json:"CasualUsed"`
	SickUsed   int `json:"SickUsed"`
	WFHCount   int `json:"WFHCount"`
}

type deleteAttendanceBody struct {
	Date       string `json:"date"`
	EmployeeID string `json:"employeeId"`
}

type yearResetBody struct {
	Year int `json:"year"`
}
