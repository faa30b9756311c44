package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizsuite/backend/internal/infrastructure/scheduler"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping() error {
	return s.err
}

type stubScheduler struct {
	status    map[string]any
	triggerFn func(ctx context.Context) error
	triggered int
}

func (s *stubScheduler) GetStatus() map[string]any {
	return s.status
}

func (s *stubScheduler) TriggerManualRun(ctx context.Context) error {
	s.triggered++
	if s.triggerFn != nil {
		return s.triggerFn(ctx)
	}
	return nil
}

func newSystemTestRouter(db Pinger, sched SchedulerStatus) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	NewSystemHandler(db, sched).RegisterRoutes(api)
	return r
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		r := newSystemTestRouter(&stubPinger{}, &stubScheduler{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("database unreachable", func(t *testing.T) {
		r := newSystemTestRouter(&stubPinger{err: context.DeadlineExceeded}, &stubScheduler{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"degraded"`)
		assert.Contains(t, w.Body.String(), `"database":"unreachable"`)
	})
}

func TestSystemHandler_SchedulerStatus(t *testing.T) {
	sched := &stubScheduler{status: map[string]any{"is_running": true, "run_day": 1}}
	r := newSystemTestRouter(&stubPinger{}, sched)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/scheduler", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_running":true`)
}

func TestSystemHandler_TriggerSchedulerRun(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		sched := &stubScheduler{}
		r := newSystemTestRouter(&stubPinger{}, sched)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/system/scheduler/runs", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		require.Equal(t, 1, sched.triggered)
	})

	t.Run("scheduler not running", func(t *testing.T) {
		sched := &stubScheduler{triggerFn: func(ctx context.Context) error {
			return scheduler.ErrSchedulerNotRunning
		}}
		r := newSystemTestRouter(&stubPinger{}, sched)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/system/scheduler/runs", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_INVALID_STATE")
	})
}
