package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	payrollapp "github.com/bizsuite/backend/internal/application/payroll"
	domainpayroll "github.com/bizsuite/backend/internal/domain/payroll"
	"github.com/bizsuite/backend/internal/infrastructure/auth"
	"github.com/bizsuite/backend/internal/infrastructure/cache"
	"github.com/bizsuite/backend/internal/infrastructure/config"
	"github.com/bizsuite/backend/internal/infrastructure/logger"
	"github.com/bizsuite/backend/internal/infrastructure/persistence"
	"github.com/bizsuite/backend/internal/infrastructure/scheduler"
	"github.com/bizsuite/backend/internal/infrastructure/storage"
	"github.com/bizsuite/backend/internal/interfaces/http/handler"
	"github.com/bizsuite/backend/internal/interfaces/http/middleware"
	"github.com/bizsuite/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting BizSuite payroll backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	departmentRepo := persistence.NewGormDepartmentRepository(db.DB)
	teamRepo := persistence.NewGormTeamRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	attendanceRepo := persistence.NewGormAttendanceRepository(db.DB)
	leaveRepo := persistence.NewGormLeaveRepository(db.DB)
	reviewRepo := persistence.NewGormPerformanceReviewRepository(db.DB)
	trainingRepo := persistence.NewGormTrainingRepository(db.DB)
	onboardingRepo := persistence.NewGormOnboardingRepository(db.DB)
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	payrollRepo := persistence.NewGormPayrollRepository(db.DB)
	uow := persistence.NewGormUnitOfWork(db.DB)
	tenantSource := persistence.NewGormTenantSource(db.DB)

	// Payslip object storage
	objectStorage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := objectStorage.EnsureBucket(ctx); err != nil {
			log.Warn("Could not ensure payslip bucket exists", zap.Error(err))
		}
		cancel()
	}

	// Run lock: Redis when reachable, in-process otherwise
	var runLock payrollapp.RunLock
	redisLock, err := cache.NewRedisRunLock(&cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory run lock", zap.Error(err))
		runLock = cache.NewInMemoryRunLock()
	} else {
		defer func() {
			_ = redisLock.Close()
		}()
		runLock = redisLock
	}

	// Application services
	payrollService := payrollapp.NewService(
		employeeRepo,
		attendanceRepo,
		leaveRepo,
		reviewRepo,
		trainingRepo,
		onboardingRepo,
		userRepo,
		departmentRepo,
		teamRepo,
		accountRepo,
		payrollRepo,
		uow,
		objectStorage,
		payrollapp.ServiceConfig{NetPolicy: domainpayroll.NetPolicy(cfg.Payroll.NetPolicy)},
		log,
	)
	runService := payrollapp.NewRunService(payrollService, employeeRepo, runLock, log)

	// Monthly payroll scheduler
	payrollScheduler := scheduler.NewPayrollCronScheduler(
		scheduler.PayrollCronSchedulerConfig{
			Enabled:    cfg.Scheduler.Enabled,
			RunDay:     cfg.Scheduler.RunDay,
			RunHour:    cfg.Scheduler.RunHour,
			RunMinute:  cfg.Scheduler.RunMinute,
			JobTimeout: cfg.Scheduler.JobTimeout,
		},
		runService,
		tenantSource,
		log,
	)
	if cfg.Scheduler.Enabled {
		if err := payrollScheduler.Start(context.Background()); err != nil {
			log.Error("Failed to start payroll scheduler", zap.Error(err))
		}
		defer func() {
			if err := payrollScheduler.Stop(context.Background()); err != nil {
				log.Error("Failed to stop payroll scheduler", zap.Error(err))
			}
		}()
	}

	// JWT auth
	jwtService := auth.NewJWTService(cfg.JWT)

	// HTTP engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}
	engine.Use(middleware.RequestID(log))
	engine.Use(middleware.RequestLogging())
	engine.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig()))
	engine.Use(middleware.JWTAuth(jwtService))

	// Routes
	r := router.New(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler(db, payrollScheduler))
	r.Register(handler.NewPayrollHandler(payrollService, runService))
	r.Register(handler.NewEmployeeHandler(employeeRepo))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
