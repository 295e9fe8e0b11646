package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/workforcehq/hr-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	departmentHandler DepartmentHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	performanceHandler PerformanceHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", departmentHandler.List)
			r.Post("/", departmentHandler.Create)
			r.Get("/stats", departmentHandler.Stats)
			r.Get("/{id}", departmentHandler.GetByID)
			r.Put("/{id}", departmentHandler.Update)
			r.Delete("/{id}", departmentHandler.Delete)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Get("/{id}", employeeHandler.GetByID)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Delete)
		})

		r.Route("/attendances", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Post("/", attendanceHandler.Create)
			r.Get("/today", attendanceHandler.Today)
			r.Get("/stats", attendanceHandler.Stats)
			r.Get("/monthly-overview", attendanceHandler.MonthlyOverview)
			r.Get("/{id}", attendanceHandler.GetByID)
			r.Put("/{id}", attendanceHandler.Update)
			r.Delete("/{id}", attendanceHandler.Delete)
		})

		r.Route("/performances", func(r chi.Router) {
			r.Get("/", performanceHandler.List)
			r.Post("/", performanceHandler.Create)
			r.Get("/stats", performanceHandler.Stats)
			r.Get("/rating-analysis", performanceHandler.RatingAnalysis)
			r.Get("/overdue", performanceHandler.Overdue)
			r.Get("/upcoming", performanceHandler.Upcoming)
			r.Get("/{id}", performanceHandler.GetByID)
			r.Put("/{id}", performanceHandler.Update)
			r.Delete("/{id}", performanceHandler.Delete)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", dashboardHandler.Stats)
			r.Get("/department-chart", dashboardHandler.DepartmentChart)
			r.Get("/attendance-chart", dashboardHandler.AttendanceChart)
			r.Get("/performance-chart", dashboardHandler.PerformanceChart)
		})
	})
	return r
}

func logLevel(level string) slog.Level {
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
