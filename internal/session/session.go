package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/workpulse/attendance-dashboard-go/internal/domain/attendance"
	"github.com/workpulse/attendance-dashboard-go/internal/domain/employee"
	"github.com/workpulse/attendance-dashboard-go/internal/domain/leave"
	"github.com/workpulse/attendance-dashboard-go/internal/pkg/sse"
	"github.com/workpulse/attendance-dashboard-go/internal/prefs"
)

// SheetsClient is the collaborator surface the controller depends on.
type SheetsClient interface {
	ListEmployees(ctx context.Context) ([]employee.Employee, error)
	GetAttendance(ctx context.Context, employeeID, from, to string) ([]attendance.Record, error)
	SaveAttendance(ctx context.Context, record attendance.Record) error
	DeleteAttendance(ctx context.Context, date, employeeID string) error
	GetLeaveQuotas(ctx context.Context, year int) (leave.Quota, error)
	SaveLeaveQuotas(ctx context.Context, quota leave.Quota) error
	GetLeaveUsage(ctx context.Context, employeeID string, year int) (leave.Usage, error)
	PerformYearlyReset(ctx context.Context, year int) error
}

// Snapshot is the dashboard state for the selected employee and year: the raw
// records plus the derived filtered and sorted view.
type Snapshot struct {
	EmployeeID string
	Employee   employee.Employee
	Year       int
	Records    []attendance.Record
	Quota      leave.Quota
	Usage      leave.Usage
	Filters    attendance.FilterCriteria
	Sort       attendance.SortSpec
	Page       int
	Filtered   []attendance.Record
}

// Controller owns the dashboard state. All reads and writes go through it;
// collaborator fetches happen outside the lock and commit atomically.
type Controller struct {
	client   SheetsClient
	hub      *sse.Hub
	prefs    *prefs.Store
	defaults leave.Defaults
	pageSize int
	loc      *time.Location

	mu            sync.Mutex
	snap          Snapshot
	latestRefresh uuid.UUID
}

func NewController(client SheetsClient, hub *sse.Hub, store *prefs.Store, defaults leave.Defaults, pageSize int, loc *time.Location) *Controller {
	return &Controller{
		client:   client,
		hub:      hub,
		prefs:    store,
		defaults: defaults,
		pageSize: pageSize,
		loc:      loc,
		snap: Snapshot{
			Year: time.Now().In(loc).Year(),
			Sort: attendance.DefaultSort(),
			Page: 1,
		},
	}
}

// Bootstrap restores saved preferences and selects the remembered employee,
// falling back to the first one in the directory. Called once at startup; a
// failure here is not fatal, the dashboard just starts unselected.
func (c *Controller) Bootstrap(ctx context.Context) error {
	savedFilters, err := c.prefs.AttendanceFilters()
	if err != nil {
		slog.Warn("could not restore saved filters", "error", err)
		savedFilters = attendance.FilterCriteria{}
	}

	c.mu.Lock()
	c.snap.Filters = savedFilters
	c.mu.Unlock()

	employees, err := c.client.ListEmployees(ctx)
	if err != nil {
		return fmt.Errorf("failed to load employee directory: %w", err)
	}
	if len(employees) == 0 {
		return nil
	}

	savedID, err := c.prefs.CurrentEmployeeID()
	if err != nil {
		slog.Warn("could not restore selected employee", "error", err)
	}

	selected := employees[0]
	for _, e := range employees {
		if e.ID == savedID {
			selected = e
			break
		}
	}
	return c.selectEmployee(ctx, selected)
}

// SelectEmployee switches the dashboard to the given employee and reloads
// the snapshot.
func (c *Controller) SelectEmployee(ctx context.Context, employeeID string) error {
	employees, err := c.client.ListEmployees(ctx)
	if err != nil {
		return fmt.Errorf("failed to load employee directory: %w", err)
	}
	for _, e := range employees {
		if e.ID == employeeID {
			return c.selectEmployee(ctx, e)
		}
	}
	return employee.ErrEmployeeNotFound
}

func (c *Controller) selectEmployee(ctx context.Context, e employee.Employee) error {
	c.mu.Lock()
	c.snap.EmployeeID = e.ID
	c.snap.Employee = e
	c.snap.Page = 1
	c.mu.Unlock()

	if err := c.Refresh(ctx); err != nil {
		return err
	}

	if err := c.prefs.SetCurrentEmployeeID(e.ID); err != nil {
		slog.Warn("could not persist selected employee", "error", err)
	}
	c.hub.Publish(sse.Event{Type: sse.EventEmployeeSelected, Data: e.ID})
	return nil
}

// Refresh reloads records, quotas and usage for the selected employee and
// year. The three fetches run concurrently and the snapshot is only replaced
// when all of them succeed; on failure the previous snapshot stays intact.
// Overlapping refreshes are tagged so a slow, stale response never overwrites
// a newer one.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	employeeID := c.snap.EmployeeID
	year := c.snap.Year
	refreshID := uuid.New()
	c.latestRefresh = refreshID
	c.mu.Unlock()

	if employeeID == "" {
		return employee.ErrNoEmployeeChosen
	}

	yearStart := fmt.Sprintf("%d-01-01", year)
	yearEnd := fmt.Sprintf("%d-12-31", year)

	var (
		records []attendance.Record
		quota   leave.Quota
		usage   leave.Usage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = c.client.GetAttendance(gctx, employeeID, yearStart, yearEnd)
		return err
	})
	g.Go(func() error {
		var err error
		quota, err = c.client.GetLeaveQuotas(gctx, year)
		return err
	})
	g.Go(func() error {
		var err error
		usage, err = c.client.GetLeaveUsage(gctx, employeeID, year)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to refresh snapshot: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.latestRefresh != refreshID {
		slog.Debug("dropping stale refresh", "refresh_id", refreshID)
		return nil
	}

	c.snap.Records = records
	c.snap.Quota = quota
	c.snap.Usage = usage
	c.recomputeLocked()

	c.hub.Publish(sse.Event{Type: sse.EventSnapshotRefreshed, Data: employeeID})
	return nil
}

// recomputeLocked rebuilds the derived view and clamps the page into range.
// Caller holds the mutex.
func (c *Controller) recomputeLocked() {
	filtered := attendance.ApplyFilters(c.snap.Records, c.snap.Filters)
	c.snap.Filtered = attendance.SortRecords(filtered, c.snap.Sort)

	totalPages := attendance.TotalPages(len(c.snap.Filtered), c.pageSize)
	if c.snap.Page < 1 {
		c.snap.Page = 1
	}
	if c.snap.Page > totalPages {
		c.snap.Page = totalPages
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// PageSize returns the configured rows-per-page.
func (c *Controller) PageSize() int {
	return c.pageSize
}

// Defaults returns the fallback leave allocations.
func (c *Controller) Defaults() leave.Defaults {
	return c.defaults
}

// Today returns the current date string in the dashboard timezone.
func (c *Controller) Today() string {
	return time.Now().In(c.loc).Format("2006-01-02")
}

// Location returns the dashboard timezone.
func (c *Controller) Location() *time.Location {
	return c.loc
}

// SetFilters replaces the active filters, recomputes the view and resets to
// the first page. The filters are persisted so they survive restarts.
func (c *Controller) SetFilters(criteria attendance.FilterCriteria) Snapshot {
	c.mu.Lock()
	c.snap.Filters = criteria
	c.snap.Page = 1
	c.recomputeLocked()
	snap := c.snap
	c.mu.Unlock()

	if err := c.prefs.SetAttendanceFilters(criteria); err != nil {
		slog.Warn("could not persist filters", "error", err)
	}
	c.hub.Publish(sse.Event{Type: sse.EventViewChanged})
	return snap
}

// ToggleSort cycles the ordering for a column and resets to the first page.
func (c *Controller) ToggleSort(column string) Snapshot {
	c.mu.Lock()
	c.snap.Sort = c.snap.Sort.Toggle(column)
	c.snap.Page = 1
	c.recomputeLocked()
	snap := c.snap
	c.mu.Unlock()

	c.hub.Publish(sse.Event{Type: sse.EventViewChanged})
	return snap
}

// SetPage moves the view to the given page, clamped into range.
func (c *Controller) SetPage(page int) Snapshot {
	c.mu.Lock()
	c.snap.Page = page
	c.recomputeLocked()
	snap := c.snap
	c.mu.Unlock()

	c.hub.Publish(sse.Event{Type: sse.EventViewChanged})
	return snap
}

// AdvanceYear moves the session to the next year after a yearly reset.
func (c *Controller) AdvanceYear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.Year++
	return c.snap.Year
}

// Client exposes the collaborator for the service layer.
func (c *Controller) Client() SheetsClient {
	return c.client
}

// StartAutoRefresh registers the periodic snapshot refresh on the scheduler.
type scheduler interface {
	AddJob(name string, interval time.Duration, fn func(ctx context.Context) error)
}

func (c *Controller) StartAutoRefresh(s scheduler, interval time.Duration) {
	s.AddJob("snapshot-refresh", interval, func(ctx context.Context) error {
		c.mu.Lock()
		selected := c.snap.EmployeeID != ""
		c.mu.Unlock()
		if !selected {
			return nil
		}
		return c.Refresh(ctx)
	})
}
