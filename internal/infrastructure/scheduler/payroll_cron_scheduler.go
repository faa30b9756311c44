package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	payrollapp "github.com/bizsuite/backend/internal/application/payroll"
	"github.com/bizsuite/backend/internal/domain/hr"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// cronTickerInterval is the interval at which the scheduler checks for execution
const cronTickerInterval = 1 * time.Minute

// ErrSchedulerNotRunning is returned when a trigger is requested while stopped
var ErrSchedulerNotRunning = errors.New("scheduler is not running")

// TenantSource lists the tenants to run scheduled payroll for
type TenantSource interface {
	ListTenantIDs(ctx context.Context) ([]uuid.UUID, error)
}

// PayrollCronSchedulerConfig holds configuration for the monthly payroll scheduler
type PayrollCronSchedulerConfig struct {
	// Enabled indicates if the scheduler is enabled
	Enabled bool
	// RunDay is the day of month (1-28) to process the previous month
	RunDay int
	// RunHour is the hour (0-23) of the run
	RunHour int
	// RunMinute is the minute (0-59) of the run
	RunMinute int
	// JobTimeout bounds a single tenant's payroll run
	JobTimeout time.Duration
}

// DefaultPayrollCronSchedulerConfig returns the default configuration:
// the 1st of each month at 02:00
func DefaultPayrollCronSchedulerConfig() PayrollCronSchedulerConfig {
	return PayrollCronSchedulerConfig{
		Enabled:    true,
		RunDay:     1,
		RunHour:    2,
		RunMinute:  0,
		JobTimeout: 30 * time.Minute,
	}
}

// PayrollCronScheduler runs monthly payroll for every tenant.
// On the configured day it processes the previous calendar month, so a
// run on April 1st produces records for period 2025-03.
type PayrollCronScheduler struct {
	config     PayrollCronSchedulerConfig
	runService *payrollapp.RunService
	tenants    TenantSource
	logger     *zap.Logger

	runCtx    context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool

	lastRunAt *time.Time
	nextRunAt *time.Time
}

// NewPayrollCronScheduler creates a new monthly payroll scheduler
func NewPayrollCronScheduler(
	config PayrollCronSchedulerConfig,
	runService *payrollapp.RunService,
	tenants TenantSource,
	logger *zap.Logger,
) *PayrollCronScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PayrollCronScheduler{
		config:     config,
		runService: runService,
		tenants:    tenants,
		logger:     logger,
	}
}

// Start starts the scheduler loop
func (s *PayrollCronScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	s.runCtx = ctx
	s.cancel = cancel
	s.isRunning = true
	s.mu.Unlock()

	s.calculateNextRunTime(time.Now())

	s.wg.Add(1)
	go s.cronLoop(ctx)

	s.logger.Info("Payroll cron scheduler started",
		zap.Int("run_day", s.config.RunDay),
		zap.Int("run_hour", s.config.RunHour),
		zap.Int("run_minute", s.config.RunMinute),
		zap.Timep("next_run_at", s.nextRunAt),
	)

	return nil
}

// Stop stops the scheduler loop
func (s *PayrollCronScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Payroll cron scheduler stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Payroll cron scheduler stop timed out")
		return ctx.Err()
	}
}

func (s *PayrollCronScheduler) cronLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(cronTickerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if s.shouldRun(now) {
				s.runMonthlyPayroll(ctx, now)
				s.calculateNextRunTime(now)
			}
		}
	}
}

// shouldRun checks whether the scheduled moment has arrived
func (s *PayrollCronScheduler) shouldRun(now time.Time) bool {
	return now.Day() == s.config.RunDay &&
		now.Hour() == s.config.RunHour &&
		now.Minute() == s.config.RunMinute
}

// calculateNextRunTime computes the next scheduled run after now
func (s *PayrollCronScheduler) calculateNextRunTime(now time.Time) {
	next := time.Date(now.Year(), now.Month(), s.config.RunDay, s.config.RunHour, s.config.RunMinute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 1, 0)
	}

	s.mu.Lock()
	s.nextRunAt = &next
	s.mu.Unlock()
}

// runMonthlyPayroll processes the previous month's payroll for every tenant
func (s *PayrollCronScheduler) runMonthlyPayroll(ctx context.Context, now time.Time) {
	period := hr.PeriodOf(now).Previous()
	s.logger.Info("Starting scheduled payroll run", zap.String("period", period.String()))

	s.mu.Lock()
	s.lastRunAt = &now
	s.mu.Unlock()

	tenantIDs, err := s.tenants.ListTenantIDs(ctx)
	if err != nil {
		s.logger.Error("Failed to list tenants for payroll run", zap.Error(err))
		return
	}

	for _, tenantID := range tenantIDs {
		jobCtx, cancel := context.WithTimeout(ctx, s.config.JobTimeout)
		result, err := s.runService.ProcessPeriod(jobCtx, tenantID, period)
		cancel()
		if err != nil {
			s.logger.Error("Scheduled payroll run failed for tenant",
				zap.String("tenant_id", tenantID.String()),
				zap.String("period", period.String()),
				zap.Error(err),
			)
			continue
		}
		s.logger.Info("Scheduled payroll run finished for tenant",
			zap.String("tenant_id", tenantID.String()),
			zap.String("period", period.String()),
			zap.Int("processed", result.Processed),
			zap.Int("skipped", result.Skipped),
			zap.Int("failed", result.Failed),
		)
	}
}

// TriggerManualRun kicks off an immediate run for the previous month.
// The run is detached from the caller's request context; it lives on
// the scheduler's own context so Stop waits for it.
func (s *PayrollCronScheduler) TriggerManualRun(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	runCtx := s.runCtx
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		s.runMonthlyPayroll(runCtx, time.Now())
	}()
	return nil
}

// GetStatus returns the current scheduler status
func (s *PayrollCronScheduler) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"enabled":     s.config.Enabled,
		"is_running":  s.isRunning,
		"run_day":     s.config.RunDay,
		"run_hour":    s.config.RunHour,
		"run_minute":  s.config.RunMinute,
		"last_run_at": s.lastRunAt,
		"next_run_at": s.nextRunAt,
	}
}
