package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/db"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/config"
	appHTTP "github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/cron"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/jwt"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/attendance"
	serviceAuth "github.com/shiftdesk/shiftdesk-backend-go/internal/service/auth"
	bookingService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/booking"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/service/master"
	notificationService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/notification"
	overtimeService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/overtime"
	reportService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/report"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/service/shiftplan"
	sweepService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/sweep"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	dsn := cfg.DatabaseURL()

	if err := database.RunMigrations(dsn, db.Migrations); err != nil {
		fmt.Println("Error running migrations:", err)
		os.Exit(1)
	}

	pool, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer pool.Close()

	txManager := postgresql.NewTxManager(pool)
	userRepo := postgresql.NewUserRepository(pool)
	branchRepo := postgresql.NewBranchRepository(pool)
	employeeRepo := postgresql.NewEmployeeRepository(pool)
	shiftRepo := postgresql.NewShiftRepository(pool)
	assignmentRepo := postgresql.NewAssignmentRepository(pool)
	eventRepo := postgresql.NewAttendanceEventRepository(pool)
	ledgerRepo := postgresql.NewHourLedgerRepository(pool)
	holidayRepo := postgresql.NewHolidayRepository(pool)
	settingsRepo := postgresql.NewSettingsRepository(pool)
	notificationRepo := postgresql.NewNotificationRepository(pool)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	resolver := shiftplan.NewResolver()

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	overtimeCalc := overtimeService.NewCalculator(eventRepo, shiftRepo, settingsRepo, ledgerRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		txManager,
		eventRepo,
		employeeRepo,
		branchRepo,
		shiftRepo,
		ledgerRepo,
		overtimeCalc,
		resolver,
	)
	booker := bookingService.NewBookingService(settingsRepo, ledgerRepo)
	notifier := notificationService.NewNotificationService(notificationRepo, notificationService.Config{})
	notificationQuery := notificationService.NewQueryService(notificationRepo)
	sweeper := sweepService.NewSweepService(
		assignmentRepo,
		shiftRepo,
		employeeRepo,
		eventRepo,
		holidayRepo,
		booker,
		notifier,
		resolver,
	)
	masterSvc := master.NewMasterService(branchRepo, shiftRepo, assignmentRepo, employeeRepo, holidayRepo, settingsRepo)
	reportSvc := reportService.NewReportService(employeeRepo, ledgerRepo)

	scheduler := cron.NewScheduler()
	cron.NewSweepJobs(sweeper, cfg.Sweep.Interval).RegisterJobs(scheduler)
	scheduler.Start()

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationQuery)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		masterHandler,
		notificationHandler,
		reportHandler,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		slog.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("could not gracefully shutdown the server", "error", err)
		}
		scheduler.Stop()
		notifier.Stop()
		close(done)
	}()

	slog.Info("server is starting", "port", cfg.App.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("could not listen", "port", cfg.App.Port, "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("server stopped")
}
