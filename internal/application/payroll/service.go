package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bizsuite/backend/internal/domain/document"
	"github.com/bizsuite/backend/internal/domain/finance"
	"github.com/bizsuite/backend/internal/domain/hr"
	"github.com/bizsuite/backend/internal/domain/identity"
	"github.com/bizsuite/backend/internal/domain/payroll"
	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/bizsuite/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ObjectStorage is the object-store boundary for payslip artifacts
type ObjectStorage interface {
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	DeleteObject(ctx context.Context, storageKey string) error
}

// ServiceConfig holds payroll processing configuration
type ServiceConfig struct {
	// NetPolicy controls how a negative net pay is handled
	NetPolicy payroll.NetPolicy
}

// DefaultServiceConfig returns the default processing configuration.
// Negative net pay is permitted, matching the recorded ledger behavior.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{NetPolicy: payroll.NetPolicyAllow}
}

// Service computes and posts payroll for one employee and one period
type Service struct {
	employeeRepo   hr.EmployeeRepository
	attendanceRepo hr.AttendanceRepository
	leaveRepo      hr.LeaveRepository
	reviewRepo     hr.PerformanceReviewRepository
	trainingRepo   hr.TrainingRepository
	onboardingRepo hr.OnboardingRepository
	userRepo       identity.UserRepository
	departmentRepo identity.DepartmentRepository
	teamRepo       identity.TeamRepository
	accountRepo    finance.AccountRepository
	payrollRepo    payroll.Repository
	uow            UnitOfWork
	storage        ObjectStorage
	cfg            ServiceConfig
	logger         *zap.Logger
}

// NewService creates a new payroll Service
func NewService(
	employeeRepo hr.EmployeeRepository,
	attendanceRepo hr.AttendanceRepository,
	leaveRepo hr.LeaveRepository,
	reviewRepo hr.PerformanceReviewRepository,
	trainingRepo hr.TrainingRepository,
	onboardingRepo hr.OnboardingRepository,
	userRepo identity.UserRepository,
	departmentRepo identity.DepartmentRepository,
	teamRepo identity.TeamRepository,
	accountRepo finance.AccountRepository,
	payrollRepo payroll.Repository,
	uow UnitOfWork,
	storage ObjectStorage,
	cfg ServiceConfig,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.NetPolicy.IsValid() {
		cfg.NetPolicy = payroll.NetPolicyAllow
	}
	return &Service{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		reviewRepo:     reviewRepo,
		trainingRepo:   trainingRepo,
		onboardingRepo: onboardingRepo,
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		teamRepo:       teamRepo,
		accountRepo:    accountRepo,
		payrollRepo:    payrollRepo,
		uow:            uow,
		storage:        storage,
		cfg:            cfg,
		logger:         logger,
	}
}

// ProcessResult describes the outcome of one payroll invocation
type ProcessResult struct {
	RecordID      uuid.UUID       `json:"record_id"`
	EmployeeID    uuid.UUID       `json:"employee_id"`
	Period        string          `json:"period"`
	Gross         decimal.Decimal `json:"gross"`
	Deductions    decimal.Decimal `json:"deductions"`
	Net           decimal.Decimal `json:"net"`
	TransactionID uuid.UUID       `json:"transaction_id"`
	DocumentID    uuid.UUID       `json:"document_id"`
	PayslipKey    string          `json:"payslip_key"`
	ExpenseIDs    []uuid.UUID     `json:"expense_ids,omitempty"`
}

// ProcessPayroll gathers the employee's payroll facts for the period,
// computes gross/net pay, and atomically persists the payroll record,
// the ledger posting, one expense record per qualifying training
// enrollment, and the payslip document.
//
// A missing cash account aborts the whole operation with nothing
// persisted. A record already existing for (employee, period) is a
// conflict. Any persistence failure rolls back every write of this
// invocation, including the uploaded payslip artifact.
func (s *Service) ProcessPayroll(ctx context.Context, tenantID, employeeID uuid.UUID, period hr.Period) (*ProcessResult, error) {
	log := s.logger.With(
		zap.String("tenant_id", tenantID.String()),
		zap.String("employee_id", employeeID.String()),
		zap.String("period", period.String()),
	)

	employee, err := s.employeeRepo.FindByIDForTenant(ctx, tenantID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	if employee == nil {
		return nil, shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found")
	}

	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, employee.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee user: %w", err)
	}
	if user == nil {
		return nil, shared.NewDomainError("EMPLOYEE_USER_MISSING", "Employee is not linked to a user account")
	}

	// Reject duplicates before gathering facts; the unique index on the
	// payroll store is the authoritative guard under concurrency.
	if existing, err := s.payrollRepo.FindByEmployeeAndPeriod(ctx, tenantID, employeeID, period.String()); err != nil {
		return nil, fmt.Errorf("failed to check existing payroll: %w", err)
	} else if existing != nil {
		return nil, payroll.ErrDuplicatePeriod
	}

	facts, expenses, err := s.gatherFacts(ctx, tenantID, employee, user, period)
	if err != nil {
		return nil, err
	}

	calc, err := payroll.Calculate(facts).ApplyNetPolicy(s.cfg.NetPolicy)
	if err != nil {
		return nil, err
	}

	record, err := payroll.NewPayrollRecord(tenantID, employeeID, period, calc)
	if err != nil {
		return nil, err
	}

	cashAccount, err := s.accountRepo.FindByName(ctx, tenantID, finance.CashAccountName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cash account: %w", err)
	}
	if cashAccount == nil {
		return nil, shared.NewDomainError("CASH_ACCOUNT_MISSING", fmt.Sprintf("Account %q is not configured", finance.CashAccountName))
	}

	posting, err := finance.NewPayrollPosting(
		tenantID,
		calc.Net,
		fmt.Sprintf("Payroll for %s (%s)", user.Name(), period),
		cashAccount.ID,
	)
	if err != nil {
		return nil, err
	}

	payslipKey := PayslipKey(employeeID, period)
	doc, err := document.NewDocument(
		tenantID,
		fmt.Sprintf("Payslip - %s - %s", user.Name(), period),
		fmt.Sprintf("Payslip for %s covering period %s", user.Name(), period),
		payslipKey,
		PayslipContentType,
		user.ID,
	)
	if err != nil {
		return nil, err
	}

	// The artifact upload cannot join the database transaction; it is
	// compensated with a delete when the transaction fails.
	payslip := RenderPayslip(user.Name(), period, valueobject.NewMoneyUSD(calc.Net))
	if err := s.storage.Upload(ctx, payslipKey, payslip, PayslipContentType); err != nil {
		return nil, fmt.Errorf("failed to store payslip artifact: %w", err)
	}

	err = s.uow.Execute(ctx, func(ctx context.Context, stores Stores) error {
		if err := stores.Payroll.Create(ctx, record); err != nil {
			return err
		}
		if err := stores.Transactions.Create(ctx, posting); err != nil {
			return err
		}
		for i := range expenses {
			if err := stores.Expenses.Create(ctx, &expenses[i]); err != nil {
				return err
			}
		}
		return stores.Documents.Create(ctx, doc)
	})
	if err != nil {
		s.compensatePayslip(ctx, payslipKey, log)
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, fmt.Errorf("payroll unit of work failed: %w", err)
	}

	expenseIDs := make([]uuid.UUID, len(expenses))
	for i := range expenses {
		expenseIDs[i] = expenses[i].ID
	}

	log.Info("Payroll processed",
		zap.String("gross", calc.Gross.String()),
		zap.String("deductions", calc.Deductions.String()),
		zap.String("net", calc.Net.String()),
		zap.Int("training_expenses", len(expenses)),
	)

	return &ProcessResult{
		RecordID:      record.ID,
		EmployeeID:    employeeID,
		Period:        period.String(),
		Gross:         calc.Gross,
		Deductions:    calc.Deductions,
		Net:           calc.Net,
		TransactionID: posting.ID,
		DocumentID:    doc.ID,
		PayslipKey:    payslipKey,
		ExpenseIDs:    expenseIDs,
	}, nil
}

// gatherFacts collects the period's attendance, leave, performance and
// training facts. Empty result sets contribute zero; only missing
// required relations are errors.
func (s *Service) gatherFacts(
	ctx context.Context,
	tenantID uuid.UUID,
	employee *hr.Employee,
	user *identity.User,
	period hr.Period,
) (payroll.Facts, []finance.ExpenseRecord, error) {
	facts := payroll.Facts{
		BaseSalary:   employee.BaseSalary(),
		OvertimeRate: employee.HourlyOvertimeRate(),
		DailyRate:    employee.DayRate(),
	}

	attendance, err := s.attendanceRepo.FindByEmployeeAndPeriod(ctx, tenantID, employee.ID, period)
	if err != nil {
		return facts, nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	overtime := decimal.Zero
	var absences int64
	for i := range attendance {
		overtime = overtime.Add(attendance[i].OvertimeHours)
		if attendance[i].IsAbsence() {
			absences++
		}
	}
	facts.OvertimeHours = overtime
	facts.AbsenceDays = absences

	leaves, err := s.leaveRepo.FindApprovedByEmployeeAndPeriod(ctx, tenantID, employee.ID, period)
	if err != nil {
		return facts, nil, fmt.Errorf("failed to load leave requests: %w", err)
	}
	unpaidDays := decimal.Zero
	leaveTypes := make(map[uuid.UUID]*hr.LeaveType)
	for i := range leaves {
		lt, ok := leaveTypes[leaves[i].LeaveTypeID]
		if !ok {
			lt, err = s.leaveRepo.FindTypeByID(ctx, tenantID, leaves[i].LeaveTypeID)
			if err != nil {
				return facts, nil, fmt.Errorf("failed to load leave type: %w", err)
			}
			leaveTypes[leaves[i].LeaveTypeID] = lt
		}
		if lt != nil && !lt.IsPaid {
			unpaidDays = unpaidDays.Add(leaves[i].DaysRequested)
		}
	}
	facts.UnpaidLeaveDays = unpaidDays

	review, err := s.reviewRepo.FindCompletedByEmployeeAndPeriod(ctx, tenantID, employee.ID, period)
	if err != nil {
		return facts, nil, fmt.Errorf("failed to load performance review: %w", err)
	}
	if review != nil {
		facts.Bonus = review.BonusAmount()
	} else {
		facts.Bonus = decimal.Zero
	}

	enrollments, err := s.trainingRepo.FindEnrollmentsByEmployeeAndPeriod(ctx, tenantID, employee.ID, period)
	if err != nil {
		return facts, nil, fmt.Errorf("failed to load training enrollments: %w", err)
	}
	trainingCost := decimal.Zero
	var expenses []finance.ExpenseRecord
	for i := range enrollments {
		training := enrollments[i].Training
		if !training.HasBillableCost() {
			continue
		}
		trainingCost = trainingCost.Add(training.CostPerParticipant)
		expense, err := finance.NewExpenseRecord(
			tenantID,
			fmt.Sprintf("Training: %s", training.Title),
			finance.ExpenseCategoryTraining,
			training.CostPerParticipant,
			fmt.Sprintf("Training cost for %s", user.Name()),
			user.ID,
		)
		if err != nil {
			return facts, nil, err
		}
		expenses = append(expenses, *expense)
	}
	facts.TrainingCost = trainingCost

	// Onboarding, department and team are resolved for downstream
	// reporting hooks; none of them enters the arithmetic.
	s.resolveContext(ctx, tenantID, employee, period)

	return facts, expenses, nil
}

func (s *Service) resolveContext(ctx context.Context, tenantID uuid.UUID, employee *hr.Employee, period hr.Period) {
	log := s.logger.With(
		zap.String("employee_id", employee.ID.String()),
		zap.String("period", period.String()),
	)

	onboarding, err := s.onboardingRepo.FindCompletedByEmployee(ctx, tenantID, employee.ID)
	if err != nil {
		log.Warn("Failed to load onboarding record", zap.Error(err))
	} else {
		log.Debug("Resolved onboarding", zap.Bool("onboarding_completed", onboarding != nil))
	}

	dept, err := s.departmentRepo.FindByIDForTenant(ctx, tenantID, employee.DepartmentID)
	if err != nil {
		log.Warn("Failed to load department", zap.Error(err))
	} else if dept != nil {
		log.Debug("Resolved department", zap.String("department", dept.Name))
	}

	if employee.TeamID != nil {
		team, err := s.teamRepo.FindByIDForTenant(ctx, tenantID, *employee.TeamID)
		if err != nil {
			log.Warn("Failed to load team", zap.Error(err))
		} else if team != nil {
			log.Debug("Resolved team", zap.String("team", team.Name))
		}
	}
}

func (s *Service) compensatePayslip(ctx context.Context, storageKey string, log *zap.Logger) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := s.storage.DeleteObject(cleanupCtx, storageKey); err != nil {
		log.Warn("Failed to remove orphaned payslip artifact",
			zap.String("storage_key", storageKey),
			zap.Error(err),
		)
	}
}

// GetRecord returns one payroll record by ID
func (s *Service) GetRecord(ctx context.Context, tenantID, id uuid.UUID) (*payroll.PayrollRecord, error) {
	record, err := s.payrollRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Payroll record not found")
	}
	return record, nil
}

// ListRecords returns the tenant's payroll records with pagination
func (s *Service) ListRecords(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]payroll.PayrollRecord, int64, error) {
	return s.payrollRepo.FindAllForTenant(ctx, tenantID, filter)
}
