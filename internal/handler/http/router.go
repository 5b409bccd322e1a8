package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-go/internal/config"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Report     ReportHandler
	Dashboard  DashboardHandler
	Stream     StreamHandler
}

func NewRouter(appConfig config.AppConfig, logLevel slog.Level, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(appConfig.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-go"),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appConfig.CORSAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired)
				r.With(middleware.RequirePermission(employee.PermissionViewOwnProfile)).
					Get("/me", h.Auth.Me)
				r.Post("/sse-token", h.Auth.SSEToken)
			})
		})

		// SSE authenticates with its own short-lived token
		r.Get("/attendance/stream", h.Stream.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(employee.PermissionAttendanceCreate))
					r.Post("/checkin", h.Attendance.CheckIn)
					r.Post("/checkout", h.Attendance.CheckOut)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(employee.PermissionAttendanceViewOwn))
					r.Get("/my-history", h.Attendance.GetMyHistory)
					r.Get("/today", h.Attendance.GetToday)
					r.Get("/my-summary", h.Report.GetMySummary)
				})

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(employee.PermissionAttendanceViewAll))
					r.Get("/all", h.Report.GetTeamReport)
					r.Get("/employee/{id}", h.Attendance.GetEmployeeHistory)
					r.Get("/today-status", h.Report.GetTodayStatus)
					r.Get("/summary", h.Report.GetDailySummary)
				})

				r.With(middleware.RequirePermission(employee.PermissionReportsExport)).
					Get("/export", h.Report.Export)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.With(middleware.RequirePermission(employee.PermissionAttendanceViewOwn)).
					Get("/employee", h.Dashboard.GetEmployeeDashboard)
				r.With(middleware.RequirePermission(employee.PermissionAttendanceViewAll)).
					Get("/manager", h.Dashboard.GetManagerDashboard)
			})
		})
	})
	return r
}
