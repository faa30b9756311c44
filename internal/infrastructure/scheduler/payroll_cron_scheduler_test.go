package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPayrollCronSchedulerConfig(t *testing.T) {
	cfg := DefaultPayrollCronSchedulerConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1, cfg.RunDay)
	assert.Equal(t, 2, cfg.RunHour)
	assert.Equal(t, 0, cfg.RunMinute)
	assert.Equal(t, 30*time.Minute, cfg.JobTimeout)
}

func TestPayrollCronScheduler_ShouldRun(t *testing.T) {
	s := NewPayrollCronScheduler(PayrollCronSchedulerConfig{
		RunDay:    1,
		RunHour:   2,
		RunMinute: 0,
	}, nil, nil, nil)

	assert.True(t, s.shouldRun(time.Date(2025, 4, 1, 2, 0, 30, 0, time.UTC)))
	assert.False(t, s.shouldRun(time.Date(2025, 4, 1, 2, 1, 0, 0, time.UTC)))
	assert.False(t, s.shouldRun(time.Date(2025, 4, 2, 2, 0, 0, 0, time.UTC)))
	assert.False(t, s.shouldRun(time.Date(2025, 4, 1, 3, 0, 0, 0, time.UTC)))
}

func TestPayrollCronScheduler_CalculateNextRunTime(t *testing.T) {
	s := NewPayrollCronScheduler(PayrollCronSchedulerConfig{
		RunDay:    1,
		RunHour:   2,
		RunMinute: 0,
	}, nil, nil, nil)

	t.Run("before this month's run", func(t *testing.T) {
		now := time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC)
		s.calculateNextRunTime(now)
		require.NotNil(t, s.nextRunAt)
		assert.Equal(t, time.Date(2025, 3, 1, 2, 0, 0, 0, time.UTC), *s.nextRunAt)
	})

	t.Run("after this month's run rolls to next month", func(t *testing.T) {
		now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
		s.calculateNextRunTime(now)
		require.NotNil(t, s.nextRunAt)
		assert.Equal(t, time.Date(2025, 4, 1, 2, 0, 0, 0, time.UTC), *s.nextRunAt)
	})

	t.Run("december rolls to january", func(t *testing.T) {
		now := time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC)
		s.calculateNextRunTime(now)
		require.NotNil(t, s.nextRunAt)
		assert.Equal(t, time.Date(2026, 1, 1, 2, 0, 0, 0, time.UTC), *s.nextRunAt)
	})
}

func TestPayrollCronScheduler_TriggerManualRunWhenStopped(t *testing.T) {
	s := NewPayrollCronScheduler(DefaultPayrollCronSchedulerConfig(), nil, nil, nil)

	err := s.TriggerManualRun(context.Background())
	assert.ErrorIs(t, err, ErrSchedulerNotRunning)
}

type blockingTenantSource struct {
	called  chan struct{}
	release chan struct{}
}

func (b *blockingTenantSource) ListTenantIDs(ctx context.Context) ([]uuid.UUID, error) {
	close(b.called)
	<-b.release
	return nil, errors.New("no tenants")
}

func TestPayrollCronScheduler_StopWaitsForManualRun(t *testing.T) {
	tenants := &blockingTenantSource{
		called:  make(chan struct{}),
		release: make(chan struct{}),
	}
	s := NewPayrollCronScheduler(DefaultPayrollCronSchedulerConfig(), nil, tenants, nil)
	require.NoError(t, s.Start(context.Background()))

	require.NoError(t, s.TriggerManualRun(context.Background()))
	select {
	case <-tenants.called:
	case <-time.After(2 * time.Second):
		t.Fatal("manual run never started")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := s.Stop(stopCtx)
	assert.ErrorIs(t, err, context.DeadlineExceeded, "stop waits for the in-flight manual run")

	close(tenants.release)
	s.wg.Wait()
}
