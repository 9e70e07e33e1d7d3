package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/attendance-dashboard-go/internal/domain/attendance"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCurrentEmployeeID_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	id, err := store.CurrentEmployeeID()
	require.NoError(t, err)
	assert.Equal(t, "", id, "unset preference should read as empty")

	require.NoError(t, store.SetCurrentEmployeeID("EMP-7"))

	id, err = store.CurrentEmployeeID()
	require.NoError(t, err)
	assert.Equal(t, "EMP-7", id)
}

func TestSetOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetCurrentEmployeeID("EMP-1"))
	require.NoError(t, store.SetCurrentEmployeeID("EMP-2"))

	id, err := store.CurrentEmployeeID()
	require.NoError(t, err)
	assert.Equal(t, "EMP-2", id)
}

func TestAttendanceFilters_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	criteria, err := store.AttendanceFilters()
	require.NoError(t, err)
	assert.Equal(t, attendance.FilterCriteria{}, criteria)

	from := "2025-01-01"
	wfh := true
	minHours := 4.5
	saved := attendance.FilterCriteria{DateFrom: &from, WFH: &wfh, MinHours: &minHours}
	require.NoError(t, store.SetAttendanceFilters(saved))

	criteria, err = store.AttendanceFilters()
	require.NoError(t, err)
	require.NotNil(t, criteria.DateFrom)
	assert.Equal(t, "2025-01-01", *criteria.DateFrom)
	require.NotNil(t, criteria.WFH)
	assert.True(t, *criteria.WFH)
	require.NotNil(t, criteria.MinHours)
	assert.Equal(t, 4.5, *criteria.MinHours)
	assert.Nil(t, criteria.DateTo)
}

func TestGetUnknownKey(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, ErrNotSet)
}
