package leave

import (
	"testing"
)

func TestResolveAllocated(t *testing.T) {
	defaults := SystemDefaults()

	cases := []struct {
		name  string
		quota Quota
		kind  string
		want  int
	}{
		{"configured annual", Quota{AnnualAllocated: 20}, KindAnnual, 20},
		{"unset annual falls back", Quota{}, KindAnnual, 15},
		{"unset casual falls back", Quota{}, KindCasual, 10},
		{"unset sick falls back", Quota{}, KindSick, 14},
		{"negative treated as unset", Quota{SickAllocated: -3}, KindSick, 14},
	}
	for _, c := range cases {
		got := ResolveAllocated(c.quota, defaults, c.kind)
		if got != c.want {
			t.Errorf("%s: ResolveAllocated = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestUsedFraction(t *testing.T) {
	cases := []struct {
		used      int
		allocated int
		want      float64
	}{
		{0, 15, 0},
		{5, 10, 0.5},
		{15, 15, 1},
		{3, 0, 0},
	}
	for _, c := range cases {
		got := UsedFraction(c.used, c.allocated)
		if got != c.want {
			t.Errorf("UsedFraction(%d, %d) = %v, want %v", c.used, c.allocated, got, c.want)
		}
	}
}

func TestReconcile(t *testing.T) {
	quota := Quota{Year: 2025, AnnualAllocated: 15}
	usage := Usage{AnnualUsed: 20, CasualUsed: 4, WFHCount: 7}

	balances := Reconcile(quota, usage, SystemDefaults())
	if len(balances) != 3 {
		t.Fatalf("got %d balances, want 3", len(balances))
	}

	byKind := make(map[string]Balance)
	for _, b := range balances {
		byKind[b.Kind] = b
	}

	annual := byKind[KindAnnual]
	if annual.Remaining != -5 {
		t.Errorf("over-used annual remaining = %d, want -5", annual.Remaining)
	}

	casual := byKind[KindCasual]
	if casual.Allocated != 10 || casual.Remaining != 6 {
		t.Errorf("casual balance = %+v", casual)
	}

	sick := byKind[KindSick]
	if sick.Allocated != 14 || sick.Used != 0 || sick.Remaining != 14 || sick.Fraction != 0 {
		t.Errorf("untouched sick balance = %+v", sick)
	}
}
