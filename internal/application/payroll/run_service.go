package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bizsuite/backend/internal/domain/hr"
	"github.com/bizsuite/backend/internal/domain/payroll"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RunLock guards against concurrent payroll executions for the same
// (employee, period) pair. Acquire returns false when another execution
// currently holds the lock.
type RunLock interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// runLockTTL bounds how long a crashed run can block a retry
const runLockTTL = 5 * time.Minute

// RunResult summarizes one period run over a tenant's workforce
type RunResult struct {
	Period    string      `json:"period"`
	Processed int         `json:"processed"`
	Skipped   int         `json:"skipped"`
	Failed    int         `json:"failed"`
	RecordIDs []uuid.UUID `json:"record_ids,omitempty"`
}

// RunService executes payroll for every active employee of a tenant.
// It is the entry point used by the monthly scheduler and the run API.
type RunService struct {
	service      *Service
	employeeRepo hr.EmployeeRepository
	lock         RunLock
	logger       *zap.Logger
}

// NewRunService creates a new RunService
func NewRunService(service *Service, employeeRepo hr.EmployeeRepository, lock RunLock, logger *zap.Logger) *RunService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RunService{
		service:      service,
		employeeRepo: employeeRepo,
		lock:         lock,
		logger:       logger,
	}
}

// ProcessPeriod runs payroll for all active employees of the tenant.
// Employees whose payroll already exists for the period are skipped;
// individual failures do not abort the rest of the run.
func (s *RunService) ProcessPeriod(ctx context.Context, tenantID uuid.UUID, period hr.Period) (*RunResult, error) {
	employees, err := s.employeeRepo.FindActiveForTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	result := &RunResult{Period: period.String()}
	for i := range employees {
		outcome, recordID := s.processOne(ctx, tenantID, employees[i].ID, period)
		switch outcome {
		case runOutcomeProcessed:
			result.Processed++
			result.RecordIDs = append(result.RecordIDs, recordID)
		case runOutcomeSkipped:
			result.Skipped++
		case runOutcomeFailed:
			result.Failed++
		}
	}

	s.logger.Info("Payroll run finished",
		zap.String("tenant_id", tenantID.String()),
		zap.String("period", period.String()),
		zap.Int("processed", result.Processed),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

type runOutcome int

const (
	runOutcomeProcessed runOutcome = iota
	runOutcomeSkipped
	runOutcomeFailed
)

func (s *RunService) processOne(ctx context.Context, tenantID, employeeID uuid.UUID, period hr.Period) (runOutcome, uuid.UUID) {
	log := s.logger.With(
		zap.String("employee_id", employeeID.String()),
		zap.String("period", period.String()),
	)

	lockKey := fmt.Sprintf("payroll:run:%s:%s:%s", tenantID, employeeID, period)
	acquired, err := s.lock.Acquire(ctx, lockKey, runLockTTL)
	if err != nil {
		log.Error("Failed to acquire payroll run lock", zap.Error(err))
		return runOutcomeFailed, uuid.Nil
	}
	if !acquired {
		log.Warn("Payroll run already in flight, skipping")
		return runOutcomeSkipped, uuid.Nil
	}
	defer func() {
		if err := s.lock.Release(ctx, lockKey); err != nil {
			log.Warn("Failed to release payroll run lock", zap.Error(err))
		}
	}()

	res, err := s.service.ProcessPayroll(ctx, tenantID, employeeID, period)
	if err != nil {
		if errors.Is(err, payroll.ErrDuplicatePeriod) {
			return runOutcomeSkipped, uuid.Nil
		}
		log.Error("Payroll processing failed", zap.Error(err))
		return runOutcomeFailed, uuid.Nil
	}
	return runOutcomeProcessed, res.RecordID
}
