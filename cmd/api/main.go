package main

import (
	"fmt"
	"net/http"

	"github.com/peoplecore/hrm-backend-go/internal/config"
	appHTTP "github.com/peoplecore/hrm-backend-go/internal/handler/http"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/cron"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peoplecore/hrm-backend-go/internal/service/attendance"
	authService "github.com/peoplecore/hrm-backend-go/internal/service/auth"
	jobService "github.com/peoplecore/hrm-backend-go/internal/service/job"
	leaveService "github.com/peoplecore/hrm-backend-go/internal/service/leave"
	notificationService "github.com/peoplecore/hrm-backend-go/internal/service/notification"
	payrollService "github.com/peoplecore/hrm-backend-go/internal/service/payroll"
	performanceService "github.com/peoplecore/hrm-backend-go/internal/service/performance"
	userService "github.com/peoplecore/hrm-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc := cfg.Location()

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	userSvc := userService.NewUserService(userRepo, loc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, loc, cfg.App.CheckInCutoff)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, attendanceRepo, userRepo, loc)
	jobSvc := jobService.NewJobService(jobRepo, applicationRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, userRepo)
	performanceSvc := performanceService.NewReviewService(reviewRepo, userRepo)
	notificationSvc := notificationService.NewNotificationService(
		userRepo,
		attendanceRepo,
		leaveRepo,
		payrollRepo,
		reviewRepo,
		applicationRepo,
		loc,
	)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	jobHandler := appHTTP.NewJobHandler(jobSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	performanceHandler := appHTTP.NewPerformanceHandler(performanceSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
		},
		authHandler,
		userHandler,
		attendanceHandler,
		leaveHandler,
		jobHandler,
		payrollHandler,
		performanceHandler,
		notificationHandler,
	)

	scheduler := cron.NewScheduler()
	cron.RegisterTokenPruneJob(scheduler, jwtSvc)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
