package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/config"
	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	appHTTP "github.com/cmlabs-hris/attendance-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/attendance-go/internal/repository/sqlite"
	attendanceService "github.com/cmlabs-hris/attendance-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/attendance-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/attendance-go/internal/service/dashboard"
	reportService "github.com/cmlabs-hris/attendance-go/internal/service/report"
)

type repositories struct {
	transactor   database.Transactor
	employee     employee.EmployeeRepository
	attendance   attendance.AttendanceRepository
	refreshToken auth.RefreshTokenRepository
	close        func()
}

func openRepositories(cfg *config.Config) (*repositories, error) {
	switch cfg.Database.Driver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := database.MigratePostgres(db); err != nil {
			db.Close()
			return nil, err
		}
		return &repositories{
			transactor:   postgresql.NewTransactor(db),
			employee:     postgresql.NewEmployeeRepository(db),
			attendance:   postgresql.NewAttendanceRepository(db),
			refreshToken: postgresql.NewRefreshTokenRepository(db),
			close:        db.Close,
		}, nil

	case "sqlite":
		db, err := database.NewSQLiteDB(cfg.Database.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		if err := database.MigrateSQLite(db); err != nil {
			db.Close()
			return nil, err
		}
		return &repositories{
			transactor:   sqlite.NewTransactor(db),
			employee:     sqlite.NewEmployeeRepository(db),
			attendance:   sqlite.NewAttendanceRepository(db),
			refreshToken: sqlite.NewRefreshTokenRepository(db),
			close:        func() { db.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	repos, err := openRepositories(cfg)
	if err != nil {
		log.Fatal("Error initializing storage: ", err)
	}
	defer repos.close()

	policy := attendance.Policy{
		LateCutoff:       cfg.LateCutoff(),
		HalfDayThreshold: cfg.HalfDayThreshold(),
		Location:         cfg.Location(),
	}
	hub := sse.NewHub()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	var GoogleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		GoogleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	authService := serviceAuth.NewAuthService(repos.transactor, repos.employee, JWTService, repos.refreshToken, cfg.App.AllowManagerSignup)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employee, policy, hub, nil)
	reportSvc := reportService.NewReportService(repos.attendance, repos.employee, policy, nil)
	dashboardSvc := dashboardService.NewDashboardService(attendanceSvc, reportSvc)

	router := appHTTP.NewRouter(cfg.App, cfg.SlogLevel(), JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Stream:     appHTTP.NewStreamHandler(JWTService, hub),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := cron.NewScheduler()
	cron.NewAuthJobs(repos.refreshToken, nil).RegisterJobs(scheduler)
	cron.NewAttendanceJobs(reportSvc, policy, nil).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// WriteTimeout stays unset so SSE streams are not cut off
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "db_driver", cfg.Database.Driver, "timezone", cfg.App.Timezone)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}
