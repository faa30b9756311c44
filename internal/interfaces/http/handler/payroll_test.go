package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	payrollapp "github.com/bizsuite/backend/internal/application/payroll"
	"github.com/bizsuite/backend/internal/domain/hr"
	"github.com/bizsuite/backend/internal/domain/payroll"
	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/bizsuite/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProcessor struct {
	processFn func(ctx context.Context, tenantID, employeeID uuid.UUID, period hr.Period) (*payrollapp.ProcessResult, error)
	getFn     func(ctx context.Context, tenantID, id uuid.UUID) (*payroll.PayrollRecord, error)
	listFn    func(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]payroll.PayrollRecord, int64, error)
}

func (s *stubProcessor) ProcessPayroll(ctx context.Context, tenantID, employeeID uuid.UUID, period hr.Period) (*payrollapp.ProcessResult, error) {
	return s.processFn(ctx, tenantID, employeeID, period)
}

func (s *stubProcessor) GetRecord(ctx context.Context, tenantID, id uuid.UUID) (*payroll.PayrollRecord, error) {
	return s.getFn(ctx, tenantID, id)
}

func (s *stubProcessor) ListRecords(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]payroll.PayrollRecord, int64, error) {
	return s.listFn(ctx, tenantID, filter)
}

type stubRunner struct {
	runFn func(ctx context.Context, tenantID uuid.UUID, period hr.Period) (*payrollapp.RunResult, error)
}

func (s *stubRunner) ProcessPeriod(ctx context.Context, tenantID uuid.UUID, period hr.Period) (*payrollapp.RunResult, error) {
	return s.runFn(ctx, tenantID, period)
}

func newPayrollTestRouter(processor PayrollProcessor, runner PayrollRunner, tenantID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.JWTTenantIDKey, tenantID.String())
		c.Set(middleware.JWTUserIDKey, uuid.NewString())
		c.Next()
	})
	api := r.Group("/api/v1")
	NewPayrollHandler(processor, runner).RegisterRoutes(api)
	return r
}

func TestPayrollHandler_ProcessPayroll(t *testing.T) {
	tenantID := uuid.New()
	employeeID := uuid.New()

	processor := &stubProcessor{
		processFn: func(ctx context.Context, gotTenant, gotEmployee uuid.UUID, period hr.Period) (*payrollapp.ProcessResult, error) {
			assert.Equal(t, tenantID, gotTenant)
			assert.Equal(t, employeeID, gotEmployee)
			assert.Equal(t, "2026-07", period.String())
			return &payrollapp.ProcessResult{
				RecordID:   uuid.New(),
				EmployeeID: gotEmployee,
				Period:     period.String(),
				Gross:      decimal.NewFromInt(5500),
				Deductions: decimal.NewFromInt(550),
				Net:        decimal.NewFromInt(4950),
			}, nil
		},
	}
	router := newPayrollTestRouter(processor, &stubRunner{}, tenantID)

	body, _ := json.Marshal(ProcessPayrollRequest{
		EmployeeID: employeeID.String(),
		Period:     "2026-07",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/records", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"period":"2026-07"`)
	assert.Contains(t, w.Body.String(), "4950")
}

func TestPayrollHandler_ProcessPayrollDuplicate(t *testing.T) {
	processor := &stubProcessor{
		processFn: func(ctx context.Context, tenantID, employeeID uuid.UUID, period hr.Period) (*payrollapp.ProcessResult, error) {
			return nil, payroll.ErrDuplicatePeriod
		},
	}
	router := newPayrollTestRouter(processor, &stubRunner{}, uuid.New())

	body, _ := json.Marshal(ProcessPayrollRequest{
		EmployeeID: uuid.NewString(),
		Period:     "2026-07",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/records", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_ALREADY_EXISTS")
}

func TestPayrollHandler_ProcessPayrollInvalidPeriod(t *testing.T) {
	router := newPayrollTestRouter(&stubProcessor{}, &stubRunner{}, uuid.New())

	body, _ := json.Marshal(ProcessPayrollRequest{
		EmployeeID: uuid.NewString(),
		Period:     "July 2026",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/records", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayrollHandler_GetRecord(t *testing.T) {
	tenantID := uuid.New()
	period, err := hr.ParsePeriod("2026-07")
	require.NoError(t, err)

	calc := payroll.Calculation{
		Gross:      decimal.NewFromInt(5500),
		Deductions: decimal.NewFromInt(550),
		Net:        decimal.NewFromInt(4950),
	}
	record, err := payroll.NewPayrollRecord(tenantID, uuid.New(), period, calc)
	require.NoError(t, err)

	processor := &stubProcessor{
		getFn: func(ctx context.Context, gotTenant, id uuid.UUID) (*payroll.PayrollRecord, error) {
			if id == record.ID {
				return record, nil
			}
			return nil, shared.NewDomainError("NOT_FOUND", "Payroll record not found")
		},
	}
	router := newPayrollTestRouter(processor, &stubRunner{}, tenantID)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll/records/"+record.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), record.ID.String())
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll/records/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
	})
}

func TestPayrollHandler_ListRecords(t *testing.T) {
	tenantID := uuid.New()
	period, err := hr.ParsePeriod("2026-07")
	require.NoError(t, err)

	calc := payroll.Calculation{
		Gross:      decimal.NewFromInt(5500),
		Deductions: decimal.NewFromInt(550),
		Net:        decimal.NewFromInt(4950),
	}
	record, err := payroll.NewPayrollRecord(tenantID, uuid.New(), period, calc)
	require.NoError(t, err)

	processor := &stubProcessor{
		listFn: func(ctx context.Context, gotTenant uuid.UUID, filter shared.Filter) ([]payroll.PayrollRecord, int64, error) {
			assert.Equal(t, "2026-07", filter.Filters["period"])
			return []payroll.PayrollRecord{*record}, 1, nil
		},
	}
	router := newPayrollTestRouter(processor, &stubRunner{}, tenantID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll/records?period=2026-07", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.Contains(t, w.Body.String(), record.ID.String())
}

func TestPayrollHandler_RunPeriod(t *testing.T) {
	tenantID := uuid.New()
	runner := &stubRunner{
		runFn: func(ctx context.Context, gotTenant uuid.UUID, period hr.Period) (*payrollapp.RunResult, error) {
			assert.Equal(t, tenantID, gotTenant)
			return &payrollapp.RunResult{
				Period:    period.String(),
				Processed: 3,
				Skipped:   1,
			}, nil
		},
	}
	router := newPayrollTestRouter(&stubProcessor{}, runner, tenantID)

	body, _ := json.Marshal(RunPayrollRequest{Period: "2026-07"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/runs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"processed":3`)
	assert.Contains(t, w.Body.String(), `"skipped":1`)
}
