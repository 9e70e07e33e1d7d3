package leave

// Leave kinds tracked per year.
const (
	KindAnnual = "Annual"
	KindCasual = "Casual"
	KindSick   = "Sick"
)

// Quota is the yearly allocation row stored by the spreadsheet collaborator.
// Zero allocations mean "not configured" and fall back to the defaults.
type Quota struct {
	Year            int
	AnnualAllocated int
	CasualAllocated int
	SickAllocated   int
	YearStartDate   string
}

// Usage is the aggregate of leave days taken and WFH days in a year, as
// reported by the collaborator.
type Usage struct {
	AnnualUsed int
	CasualUsed int
	SickUsed   int
	WFHCount   int
}

// Defaults are the fallback allocations applied when a quota field is unset.
type Defaults struct {
	Annual int
	Casual int
	Sick   int
}

// SystemDefaults returns the stock allocations.
func SystemDefaults() Defaults {
	return Defaults{Annual: 15, Casual: 10, Sick: 14}
}

func Kinds() []string {
	return []string{KindAnnual, KindCasual, KindSick}
}
