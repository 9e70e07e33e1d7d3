package leave

// Balance is the reconciled view of one leave kind.
type Balance struct {
	Kind      string  `json:"kind"`
	Allocated int     `json:"allocated"`
	Used      int     `json:"used"`
	Remaining int     `json:"remaining"`
	Fraction  float64 `json:"fraction"`
}

// ResolveAllocated returns the quota allocation for kind, falling back to the
// defaults when the stored value is zero or negative (unset).
func ResolveAllocated(quota Quota, defaults Defaults, kind string) int {
	var stored, fallback int
	switch kind {
	case KindAnnual:
		stored, fallback = quota.AnnualAllocated, defaults.Annual
	case KindCasual:
		stored, fallback = quota.CasualAllocated, defaults.Casual
	case KindSick:
		stored, fallback = quota.SickAllocated, defaults.Sick
	}
	if stored > 0 {
		return stored
	}
	return fallback
}

func usedFor(usage Usage, kind string) int {
	switch kind {
	case KindAnnual:
		return usage.AnnualUsed
	case KindCasual:
		return usage.CasualUsed
	case KindSick:
		return usage.SickUsed
	}
	return 0
}

// UsedFraction returns used/allocated for progress display, 0 when nothing is
// allocated.
func UsedFraction(used, allocated int) float64 {
	if allocated == 0 {
		return 0
	}
	return float64(used) / float64(allocated)
}

// Reconcile computes the balance for every leave kind. Remaining may go
// negative when more leave was taken than allocated; that over-use is shown
// to the user rather than clamped away.
func Reconcile(quota Quota, usage Usage, defaults Defaults) []Balance {
	balances := make([]Balance, 0, len(Kinds()))
	for _, kind := range Kinds() {
		allocated := ResolveAllocated(quota, defaults, kind)
		used := usedFor(usage, kind)
		balances = append(balances, Balance{
			Kind:      kind,
			Allocated: allocated,
			Used:      used,
			Remaining: allocated - used,
			Fraction:  UsedFraction(used, allocated),
		})
	}
	return balances
}
