package leave

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/attendance-dashboard-go/internal/domain/leave"
	"github.com/workpulse/attendance-dashboard-go/internal/pkg/sse"
	"github.com/workpulse/attendance-dashboard-go/internal/pkg/validator"
	"github.com/workpulse/attendance-dashboard-go/internal/prefs"
	"github.com/workpulse/attendance-dashboard-go/internal/session"
	"github.com/workpulse/attendance-dashboard-go/internal/sheets"
)

type fakeCollaborator struct {
	mu          sync.Mutex
	quota       map[string]any
	usage       map[string]any
	saved       []map[string]any
	savedQuotas []map[string]any
	resetYears  []float64
}

func (f *fakeCollaborator) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		var data any
		switch {
		case r.URL.Path == "/employees":
			data = []map[string]any{{"EmployeeID": "EMP-1", "Name": "Ayesha Rahman"}}
		case r.URL.Path == "/attendance" && r.Method == http.MethodGet:
			data = []map[string]any{}
		case r.URL.Path == "/attendance" && r.Method == http.MethodPost:
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			f.saved = append(f.saved, body)
			data = map[string]any{}
		case r.URL.Path == "/leave/quotas" && r.Method == http.MethodGet:
			data = f.quota
		case r.URL.Path == "/leave/quotas" && r.Method == http.MethodPost:
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			f.savedQuotas = append(f.savedQuotas, body)
			data = map[string]any{}
		case r.URL.Path == "/leave/usage":
			data = f.usage
		case r.URL.Path == "/settings/year-reset":
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			f.resetYears = append(f.resetYears, body["year"].(float64))
			data = map[string]any{}
		default:
			http.NotFound(w, r)
			return
		}
		if data == nil {
			data = map[string]any{}
		}
		json.NewEncoder(w).Encode(map[string]any{"data": data})
	}
}

func newTestSetup(t *testing.T, fake *fakeCollaborator) (leave.LeaveService, *session.Controller) {
	t.Helper()
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	store, err := prefs.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ctrl := session.NewController(sheets.NewClient(server.URL, ""), sse.NewHub(), store, leave.SystemDefaults(), 20, time.UTC)
	require.NoError(t, ctrl.Bootstrap(context.Background()))
	return NewLeaveService(ctrl), ctrl
}

func TestRequest(t *testing.T) {
	fake := &fakeCollaborator{}
	svc, _ := newTestSetup(t, fake)

	err := svc.Request(context.Background(), leave.RequestLeaveRequest{
		Date:      "2025-06-10",
		LeaveType: leave.KindAnnual,
		Reason:    "family trip",
	})
	require.NoError(t, err)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.saved, 1)
	assert.Equal(t, "00:00", fake.saved[0]["ClockIn"], "leave is stored as a zero-duration placeholder")
	assert.Equal(t, "00:00", fake.saved[0]["ClockOut"])
	assert.Equal(t, false, fake.saved[0]["WFH"])
	assert.Equal(t, "Annual", fake.saved[0]["LeaveType"])
	assert.Equal(t, "family trip", fake.saved[0]["Notes"])
}

func TestRequestValidation(t *testing.T) {
	svc, _ := newTestSetup(t, &fakeCollaborator{})

	err := svc.Request(context.Background(), leave.RequestLeaveRequest{
		Date:      "2025-06-10",
		LeaveType: "Sabbatical",
		Reason:    "x",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	_, ok := verrs.ToMap()["leave_type"]
	assert.True(t, ok)
}

func TestBalances(t *testing.T) {
	fake := &fakeCollaborator{
		quota: map[string]any{"Year": 2025, "AnnualAllocated": 15},
		usage: map[string]any{"AnnualUsed": 20, "CasualUsed": 4, "WFHCount": 7},
	}
	svc, _ := newTestSetup(t, fake)

	summary, err := svc.Balances(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Balances, 3)
	assert.Equal(t, 7, summary.WFHCount)

	byKind := make(map[string]leave.Balance)
	for _, b := range summary.Balances {
		byKind[b.Kind] = b
	}
	assert.Equal(t, -5, byKind[leave.KindAnnual].Remaining, "over-use shows as negative remaining")
	assert.Equal(t, 10, byKind[leave.KindCasual].Allocated, "unset quota falls back to the default")
	assert.Equal(t, 14, byKind[leave.KindSick].Allocated)
}

func TestUpdateQuotas(t *testing.T) {
	fake := &fakeCollaborator{}
	svc, ctrl := newTestSetup(t, fake)

	resp, err := svc.UpdateQuotas(context.Background(), leave.UpdateQuotasRequest{
		AnnualAllocated: 18,
		CasualAllocated: 12,
		SickAllocated:   14,
	})
	require.NoError(t, err)
	assert.Equal(t, 18, resp.AnnualAllocated)
	assert.Equal(t, ctrl.Snapshot().Year, resp.Year)
	assert.NotEmpty(t, resp.YearStartDate, "year start defaults to January 1st")

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.savedQuotas, 1)
	assert.Equal(t, float64(18), fake.savedQuotas[0]["AnnualAllocated"])
}

func TestUpdateQuotasValidation(t *testing.T) {
	svc, _ := newTestSetup(t, &fakeCollaborator{})

	_, err := svc.UpdateQuotas(context.Background(), leave.UpdateQuotasRequest{AnnualAllocated: -1})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	_, ok := verrs.ToMap()["annual_allocated"]
	assert.True(t, ok)
}

func TestYearlyReset(t *testing.T) {
	fake := &fakeCollaborator{}
	svc, ctrl := newTestSetup(t, fake)

	before := ctrl.Snapshot().Year
	year, err := svc.YearlyReset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before+1, year)
	assert.Equal(t, before+1, ctrl.Snapshot().Year)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.resetYears, 1)
	assert.Equal(t, float64(before+1), fake.resetYears[0], "the collaborator provisions the next year")
}
