package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterConfig struct {
	AppEnv      string
	FrontendURL string
	LogLevel    slog.Level
}

func NewRouter(
	cfg RouterConfig,
	employeeHandler EmployeeHandler,
	dashboardHandler DashboardHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	settingsHandler SettingsHandler,
	eventsHandler EventsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-dashboard"),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Get("/current", employeeHandler.Current)
			r.Post("/select", employeeHandler.Select)
		})

		r.Get("/dashboard", dashboardHandler.Get)

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Post("/", attendanceHandler.Save)
			r.Put("/filters", attendanceHandler.SetFilters)
			r.Put("/sort", attendanceHandler.SetSort)
			r.Put("/page", attendanceHandler.SetPage)
			r.Get("/export", attendanceHandler.ExportCSV)
			r.Delete("/{date}", attendanceHandler.Delete)
		})

		r.Route("/leave", func(r chi.Router) {
			r.Get("/history", leaveHandler.History)
			r.Get("/balances", leaveHandler.Balances)
			r.Post("/request", leaveHandler.Request)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/quotas", settingsHandler.GetQuotas)
			r.Put("/quotas", settingsHandler.UpdateQuotas)
			r.Post("/year-reset", settingsHandler.YearlyReset)
		})

		r.Get("/events", eventsHandler.Stream)
	})
	return r
}
