package handler

import (
	"time"

	"github.com/bizsuite/backend/internal/domain/hr"
	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/bizsuite/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeHandler exposes the employee master data consumed by payroll
type EmployeeHandler struct {
	BaseHandler
	employeeRepo hr.EmployeeRepository
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeRepo hr.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{
		employeeRepo: employeeRepo,
	}
}

// ListEmployeesRequest represents employee list query parameters
type ListEmployeesRequest struct {
	dto.ListRequest
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE ON_LEAVE TERMINATED"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID             string           `json:"id"`
	EmployeeNumber string           `json:"employee_number"`
	UserID         string           `json:"user_id"`
	DepartmentID   string           `json:"department_id"`
	TeamID         *string          `json:"team_id,omitempty"`
	Position       string           `json:"position,omitempty"`
	Status         string           `json:"status"`
	HireDate       time.Time        `json:"hire_date"`
	Salary         *decimal.Decimal `json:"salary,omitempty"`
	OvertimeRate   *decimal.Decimal `json:"overtime_rate,omitempty"`
	DailyRate      *decimal.Decimal `json:"daily_rate,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	Version        int              `json:"version"`
}

func toEmployeeResponse(e *hr.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID.String(),
		EmployeeNumber: e.EmployeeNumber,
		UserID:         e.UserID.String(),
		DepartmentID:   e.DepartmentID.String(),
		Position:       e.Position,
		Status:         string(e.Status),
		HireDate:       e.HireDate,
		Salary:         e.Salary,
		OvertimeRate:   e.OvertimeRate,
		DailyRate:      e.DailyRate,
		CreatedAt:      e.CreatedAt,
		Version:        e.Version,
	}
	if e.TeamID != nil {
		teamID := e.TeamID.String()
		resp.TeamID = &teamID
	}
	return resp
}

// RegisterRoutes registers employee routes
func (h *EmployeeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/employees")
	{
		group.GET("", h.ListEmployees)
		group.GET("/:id", h.GetEmployee)
	}
}

// ListEmployees returns employees for the tenant
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant context")
		return
	}

	req := ListEmployeesRequest{ListRequest: dto.DefaultListRequest()}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	filter := shared.DefaultFilter()
	filter.Page = req.Page
	filter.PageSize = req.PageSize
	filter.Search = req.Search
	if req.OrderBy != "" {
		filter.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		filter.OrderDir = req.OrderDir
	}
	if req.Status != "" {
		filter.Filters["status"] = req.Status
	}

	employees, total, err := h.employeeRepo.FindAllForTenant(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, toEmployeeResponse(&employees[i]))
	}

	h.SuccessWithMeta(c, responses, total, filter.Page, filter.PageSize)
}

// GetEmployee returns a single employee by ID
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant context")
		return
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeRepo.FindByIDForTenant(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if employee == nil {
		h.NotFound(c, "Employee not found")
		return
	}

	h.Success(c, toEmployeeResponse(employee))
}
