package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/workpulse/attendance-dashboard-go/internal/config"
	appHTTP "github.com/workpulse/attendance-dashboard-go/internal/handler/http"
	"github.com/workpulse/attendance-dashboard-go/internal/pkg/cron"
	"github.com/workpulse/attendance-dashboard-go/internal/pkg/sse"
	"github.com/workpulse/attendance-dashboard-go/internal/prefs"
	attendanceService "github.com/workpulse/attendance-dashboard-go/internal/service/attendance"
	employeeService "github.com/workpulse/attendance-dashboard-go/internal/service/employee"
	leaveService "github.com/workpulse/attendance-dashboard-go/internal/service/leave"
	"github.com/workpulse/attendance-dashboard-go/internal/session"
	"github.com/workpulse/attendance-dashboard-go/internal/sheets"

	domainLeave "github.com/workpulse/attendance-dashboard-go/internal/domain/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := cfg.Location()
	if err != nil {
		fmt.Println("Error resolving timezone:", err)
		return
	}

	store, err := prefs.New(cfg.App.PrefsDBPath)
	if err != nil {
		fmt.Println("Error opening preferences store:", err)
		return
	}
	defer store.Close()

	client := sheets.NewClient(cfg.Sheets.BaseURL, cfg.Sheets.APIToken)
	hub := sse.NewHub()
	defaults := domainLeave.Defaults{
		Annual: cfg.Leave.DefaultAnnual,
		Casual: cfg.Leave.DefaultCasual,
		Sick:   cfg.Leave.DefaultSick,
	}

	controller := session.NewController(client, hub, store, defaults, cfg.App.PageSize, loc)

	ctx := context.Background()
	if err := controller.Bootstrap(ctx); err != nil {
		slog.Warn("bootstrap failed, starting without a snapshot", "error", err)
	}

	attendanceSvc := attendanceService.NewAttendanceService(controller)
	leaveSvc := leaveService.NewLeaveService(controller)
	employeeSvc := employeeService.NewEmployeeService(controller)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(employeeSvc, attendanceSvc, leaveSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	settingsHandler := appHTTP.NewSettingsHandler(leaveSvc)
	eventsHandler := appHTTP.NewEventsHandler(hub)

	scheduler := cron.NewScheduler()
	controller.StartAutoRefresh(scheduler, cfg.App.RefreshInterval)
	scheduler.Start(ctx)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppEnv:      cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
			LogLevel:    parseLogLevel(cfg.App.LogLevel),
		},
		employeeHandler,
		dashboardHandler,
		attendanceHandler,
		leaveHandler,
		settingsHandler,
		eventsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
