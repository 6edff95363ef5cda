package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/middleware"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	masterHandler MasterHandler,
	notificationHandler NotificationHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftdesk"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.RecordAttendance)
				r.Post("/leave", attendanceHandler.RecordLeave)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.List)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", masterHandler.ListShifts)
				r.Get("/{id}", masterHandler.GetShift)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateShift)
					r.Put("/{id}", masterHandler.UpdateShift)
					r.Delete("/{id}", masterHandler.DeleteShift)
					r.Post("/{id}/assignments", masterHandler.AssignShift)
					r.Delete("/assignments/{assignmentID}", masterHandler.UnassignShift)
				})
			})

			r.Route("/branches", func(r chi.Router) {
				r.Get("/", masterHandler.ListBranches)
				r.Get("/{id}", masterHandler.GetBranch)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateBranch)
					r.Put("/{id}", masterHandler.UpdateBranch)
					r.Delete("/{id}", masterHandler.DeleteBranch)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}/assignments", masterHandler.ListEmployeeAssignments)
				r.Get("/{id}/notifications", notificationHandler.ListByEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", masterHandler.ListEmployees)
					r.Get("/{id}", masterHandler.GetEmployee)
					r.Post("/", masterHandler.CreateEmployee)
					r.Put("/{id}", masterHandler.UpdateEmployee)
					r.Delete("/{id}", masterHandler.DeleteEmployee)
					r.Get("/{id}/hour-ledger", reportHandler.HourLedger)
				})
			})

			r.Put("/notifications/{id}/read", notificationHandler.MarkRead)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/holidays", func(r chi.Router) {
					r.Get("/", masterHandler.ListHolidays)
					r.Post("/", masterHandler.CreateHoliday)
					r.Delete("/{id}", masterHandler.DeleteHoliday)
				})

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", masterHandler.GetSettings)
					r.Put("/", masterHandler.UpdateSettings)
				})
			})
		})
	})
	return r
}
