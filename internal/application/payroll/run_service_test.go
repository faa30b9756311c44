package payroll

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bizsuite/backend/internal/domain/hr"
	"github.com/bizsuite/backend/internal/domain/identity"
)

type fakeRunLock struct {
	held       map[string]bool
	acquired   []string
	released   []string
	acquireErr error
}

func (l *fakeRunLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if l.acquireErr != nil {
		return false, l.acquireErr
	}
	if l.held == nil {
		l.held = make(map[string]bool)
	}
	if l.held[key] {
		return false, nil
	}
	l.held[key] = true
	l.acquired = append(l.acquired, key)
	return true, nil
}

func (l *fakeRunLock) Release(ctx context.Context, key string) error {
	delete(l.held, key)
	l.released = append(l.released, key)
	return nil
}

// addEmployee registers another active employee with a linked user
func (f *fixture) addEmployee(t *testing.T, number string) *hr.Employee {
	t.Helper()
	user, err := identity.NewUser(f.tenantID, "user-"+number, number+"@example.com", "Employee "+number)
	require.NoError(t, err)
	f.userRepo.byID[user.ID] = user

	employee, err := hr.NewEmployee(f.tenantID, number, user.ID, f.employee.DepartmentID, time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, employee.SetCompensation(
		decimal.NewFromInt(4000),
		decimal.NewFromInt(18),
		decimal.NewFromInt(120),
	))
	f.employeeRepo.byID[employee.ID] = employee
	f.employeeRepo.active = append(f.employeeRepo.active, *employee)
	return employee
}

func newRunFixture(t *testing.T) (*fixture, *fakeRunLock, *RunService) {
	t.Helper()
	f := newFixture(t)
	lock := &fakeRunLock{}
	runner := NewRunService(f.service(DefaultServiceConfig()), f.employeeRepo, lock, zap.NewNop())
	return f, lock, runner
}

func TestProcessPeriodAllEmployees(t *testing.T) {
	f, lock, runner := newRunFixture(t)
	f.addEmployee(t, "EMP-002")
	f.addEmployee(t, "EMP-003")

	result, err := runner.ProcessPeriod(context.Background(), f.tenantID, f.period)
	require.NoError(t, err)

	assert.Equal(t, "2026-07", result.Period)
	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, result.RecordIDs, 3)
	assert.Len(t, f.payrollRepo.records, 3)

	assert.Len(t, lock.acquired, 3)
	assert.ElementsMatch(t, lock.acquired, lock.released, "every acquired lock is released")
}

func TestProcessPeriodSkipsAlreadyProcessed(t *testing.T) {
	f, _, runner := newRunFixture(t)
	f.addEmployee(t, "EMP-002")
	f.existingRecord(t) // the first employee already has this period

	result, err := runner.ProcessPeriod(context.Background(), f.tenantID, f.period)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, f.payrollRepo.records, 2)
}

func TestProcessPeriodContinuesPastFailures(t *testing.T) {
	f, _, runner := newRunFixture(t)
	broken := f.addEmployee(t, "EMP-002")
	delete(f.userRepo.byID, broken.UserID)
	f.addEmployee(t, "EMP-003")

	result, err := runner.ProcessPeriod(context.Background(), f.tenantID, f.period)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.RecordIDs, 2)
}

func TestProcessPeriodLockContention(t *testing.T) {
	f, lock, runner := newRunFixture(t)

	inFlightKey := fmt.Sprintf("payroll:run:%s:%s:%s", f.tenantID, f.employee.ID, f.period)
	lock.held = map[string]bool{inFlightKey: true}

	result, err := runner.ProcessPeriod(context.Background(), f.tenantID, f.period)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, f.payrollRepo.records)
	assert.True(t, lock.held[inFlightKey], "a contended lock is not released by the loser")
}

func TestProcessPeriodLockErrorCountsAsFailed(t *testing.T) {
	f, lock, runner := newRunFixture(t)
	lock.acquireErr = errors.New("redis unavailable")

	result, err := runner.ProcessPeriod(context.Background(), f.tenantID, f.period)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, f.payrollRepo.records)
}

func TestProcessPeriodEmployeeListError(t *testing.T) {
	f, _, runner := newRunFixture(t)
	f.employeeRepo.activeErr = errors.New("database down")

	_, err := runner.ProcessPeriod(context.Background(), f.tenantID, f.period)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list active employees")
}

func TestProcessPeriodLockReleasedAfterFailure(t *testing.T) {
	f, lock, runner := newRunFixture(t)
	delete(f.userRepo.byID, f.user.ID)

	result, err := runner.ProcessPeriod(context.Background(), f.tenantID, f.period)
	require.NoError(t, err)

	require.Equal(t, 1, result.Failed)
	require.Len(t, lock.acquired, 1)
	assert.Equal(t, lock.acquired, lock.released, "lock is released even when processing fails")
}
