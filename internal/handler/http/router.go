package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	FrontendURL string
	Env         string
}

func NewRouter(
	jwtService jwt.Service,
	cfg RouterConfig,
	authHandler AuthHandler,
	userHandler UserHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	jobHandler JobHandler,
	payrollHandler PayrollHandler,
	performanceHandler PerformanceHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "peoplecore-hrm"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", authHandler.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				// Ownership is enforced in the service: self always
				// allowed, user.view_all required for anyone else.
				r.Get("/{id}", userHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionUserViewAll))
					r.Get("/", userHandler.List)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionUserManage))
					r.Post("/", userHandler.Create)
					r.Put("/{id}", userHandler.Update)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/activate", userHandler.Activate)
					r.Post("/{id}/deactivate", userHandler.Deactivate)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceMark))
					r.Post("/check-in", attendanceHandler.CheckIn)
					r.Post("/check-out", attendanceHandler.CheckOut)
				})

				r.Get("/my", attendanceHandler.GetMyAttendance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceViewAll))
					r.Get("/", attendanceHandler.List)
					r.Get("/stats", attendanceHandler.Stats)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceCorrect))
					r.Put("/{id}", attendanceHandler.Update)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveCreate))
					r.Post("/", leaveHandler.Create)
				})

				r.Get("/my", leaveHandler.GetMyRequests)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveViewAll))
					r.Get("/pending", leaveHandler.ListPending)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", jobHandler.List)
				r.Get("/{id}", jobHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionJobManage))
					r.Post("/", jobHandler.Create)
					r.Post("/{id}/close", jobHandler.Close)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleCandidate))
					r.Post("/{id}/apply", jobHandler.Apply)
				})
			})

			r.Route("/applications", func(r chi.Router) {
				r.Get("/my", jobHandler.ListMyApplications)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionApplicationManage))
					r.Get("/", jobHandler.ListApplications)
					r.Put("/{id}/status", jobHandler.UpdateApplicationStatus)
					r.Post("/{id}/interview", jobHandler.ScheduleInterview)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/my", payrollHandler.GetMyPayrolls)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollManage))
					r.Post("/", payrollHandler.Create)
					r.Get("/", payrollHandler.ListByPeriod)
					r.Put("/{id}/status", payrollHandler.UpdateStatus)
				})
			})

			r.Route("/performance", func(r chi.Router) {
				r.Get("/my", performanceHandler.GetMyReviews)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionReviewManage))
					r.Post("/", performanceHandler.Create)
					r.Get("/pending", performanceHandler.ListPending)
					r.Post("/{id}/complete", performanceHandler.Complete)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/counts", notificationHandler.Counts)
				r.Get("/details", notificationHandler.Details)
			})
		})
	})

	// Unversioned alias kept for clients that predate /api/v1.
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
		r.Get("/api/notifications/counts", notificationHandler.Counts)
		r.Get("/api/notifications/details", notificationHandler.Details)
	})

	return r
}
