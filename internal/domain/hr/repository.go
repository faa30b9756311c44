package hr

import (
	"context"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EmployeeRepository defines persistence operations for employee master data
type EmployeeRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Employee, error)
	FindActiveForTenant(ctx context.Context, tenantID uuid.UUID) ([]Employee, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Employee, int64, error)
	Save(ctx context.Context, employee *Employee) error
}

// AttendanceRepository reads attendance facts by employee and period
type AttendanceRepository interface {
	FindByEmployeeAndPeriod(ctx context.Context, tenantID, employeeID uuid.UUID, period Period) ([]AttendanceRecord, error)
	Save(ctx context.Context, record *AttendanceRecord) error
}

// LeaveRepository reads leave facts by employee and period
type LeaveRepository interface {
	// FindApprovedByEmployeeAndPeriod returns approved requests whose date
	// range overlaps the period (start-in, end-in, or spanning).
	FindApprovedByEmployeeAndPeriod(ctx context.Context, tenantID, employeeID uuid.UUID, period Period) ([]LeaveRequest, error)
	FindTypeByID(ctx context.Context, tenantID, leaveTypeID uuid.UUID) (*LeaveType, error)
	Save(ctx context.Context, request *LeaveRequest) error
	SaveType(ctx context.Context, leaveType *LeaveType) error
}

// PerformanceReviewRepository reads performance facts by employee and period
type PerformanceReviewRepository interface {
	// FindCompletedByEmployeeAndPeriod returns the completed review whose
	// review period equals the target period exactly, or nil when none
	// exists. With multiple matches the earliest created wins.
	FindCompletedByEmployeeAndPeriod(ctx context.Context, tenantID, employeeID uuid.UUID, period Period) (*PerformanceReview, error)
	Save(ctx context.Context, review *PerformanceReview) error
}

// TrainingRepository reads training facts by employee and period
type TrainingRepository interface {
	// FindEnrollmentsByEmployeeAndPeriod returns the employee's enrollments
	// whose training date range overlaps the period, with trainings resolved.
	FindEnrollmentsByEmployeeAndPeriod(ctx context.Context, tenantID, employeeID uuid.UUID, period Period) ([]EnrolledTraining, error)
	SaveTraining(ctx context.Context, training *Training) error
	SaveEnrollment(ctx context.Context, enrollment *TrainingEnrollment) error
}

// OnboardingRepository reads onboarding facts by employee
type OnboardingRepository interface {
	// FindCompletedByEmployee returns the employee's completed onboarding
	// record, or nil when none exists.
	FindCompletedByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) (*OnboardingRecord, error)
	Save(ctx context.Context, record *OnboardingRecord) error
}
