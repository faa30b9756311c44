package handler

import (
	"context"
	"time"

	payrollapp "github.com/bizsuite/backend/internal/application/payroll"
	"github.com/bizsuite/backend/internal/domain/hr"
	"github.com/bizsuite/backend/internal/domain/payroll"
	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/bizsuite/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollProcessor is the application boundary for single-employee payroll
type PayrollProcessor interface {
	ProcessPayroll(ctx context.Context, tenantID, employeeID uuid.UUID, period hr.Period) (*payrollapp.ProcessResult, error)
	GetRecord(ctx context.Context, tenantID, id uuid.UUID) (*payroll.PayrollRecord, error)
	ListRecords(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]payroll.PayrollRecord, int64, error)
}

// PayrollRunner is the application boundary for whole-period payroll runs
type PayrollRunner interface {
	ProcessPeriod(ctx context.Context, tenantID uuid.UUID, period hr.Period) (*payrollapp.RunResult, error)
}

// PayrollHandler handles payroll processing API endpoints
type PayrollHandler struct {
	BaseHandler
	processor PayrollProcessor
	runner    PayrollRunner
}

// NewPayrollHandler creates a new PayrollHandler
func NewPayrollHandler(processor PayrollProcessor, runner PayrollRunner) *PayrollHandler {
	return &PayrollHandler{
		processor: processor,
		runner:    runner,
	}
}

// ProcessPayrollRequest represents a request to process payroll for one employee
type ProcessPayrollRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Period     string `json:"period" binding:"required"`
}

// RunPayrollRequest represents a request to run payroll for a whole period
type RunPayrollRequest struct {
	Period string `json:"period" binding:"required"`
}

// ListPayrollRecordsRequest represents payroll record list query parameters
type ListPayrollRecordsRequest struct {
	dto.ListRequest
	Period     string `form:"period"`
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
}

// PayrollRecordResponse represents a payroll record in API responses
type PayrollRecordResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Period     string          `json:"period"`
	Gross      decimal.Decimal `json:"gross"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
	CreatedAt  time.Time       `json:"created_at"`
	Version    int             `json:"version"`
}

func toPayrollRecordResponse(r *payroll.PayrollRecord) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:         r.ID.String(),
		EmployeeID: r.EmployeeID.String(),
		Period:     r.Period,
		Gross:      r.Gross,
		Deductions: r.Deductions,
		Net:        r.Net,
		CreatedAt:  r.CreatedAt,
		Version:    r.Version,
	}
}

// RegisterRoutes registers payroll routes
func (h *PayrollHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/payroll")
	{
		group.POST("/records", h.ProcessPayroll)
		group.GET("/records", h.ListRecords)
		group.GET("/records/:id", h.GetRecord)
		group.POST("/runs", h.RunPeriod)
	}
}

// ProcessPayroll computes and persists payroll for one employee and period
func (h *PayrollHandler) ProcessPayroll(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant context")
		return
	}

	var req ProcessPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	period, err := hr.ParsePeriod(req.Period)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result, err := h.processor.ProcessPayroll(c.Request.Context(), tenantID, employeeID, period)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// GetRecord returns a single payroll record by ID
func (h *PayrollHandler) GetRecord(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant context")
		return
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid record ID")
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid record ID")
		return
	}

	record, err := h.processor.GetRecord(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toPayrollRecordResponse(record))
}

// ListRecords returns payroll records for the tenant, optionally
// filtered by period or employee
func (h *PayrollHandler) ListRecords(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant context")
		return
	}

	req := ListPayrollRecordsRequest{ListRequest: dto.DefaultListRequest()}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	filter := shared.DefaultFilter()
	filter.Page = req.Page
	filter.PageSize = req.PageSize
	if req.OrderBy != "" {
		filter.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		filter.OrderDir = req.OrderDir
	}
	if req.Period != "" {
		period, err := hr.ParsePeriod(req.Period)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		filter.Filters["period"] = period.String()
	}
	if req.EmployeeID != "" {
		employeeID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			h.BadRequest(c, "Invalid employee ID")
			return
		}
		filter.Filters["employee_id"] = employeeID
	}

	records, total, err := h.processor.ListRecords(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]PayrollRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toPayrollRecordResponse(&records[i]))
	}

	h.SuccessWithMeta(c, responses, total, filter.Page, filter.PageSize)
}

// RunPeriod runs payroll for every active employee in the period
func (h *PayrollHandler) RunPeriod(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant context")
		return
	}

	var req RunPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	period, err := hr.ParsePeriod(req.Period)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result, err := h.runner.ProcessPeriod(c.Request.Context(), tenantID, period)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
