package persistence

import (
	"context"
	"errors"

	"github.com/bizsuite/backend/internal/domain/hr"
	"github.com/bizsuite/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAttendanceRepository implements hr.AttendanceRepository using GORM
type GormAttendanceRepository struct {
	db *gorm.DB
}

// NewGormAttendanceRepository creates a new GormAttendanceRepository
func NewGormAttendanceRepository(db *gorm.DB) *GormAttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

// FindByEmployeeAndPeriod returns the employee's attendance records whose
// dates fall inside the period's calendar month
func (r *GormAttendanceRepository) FindByEmployeeAndPeriod(ctx context.Context, tenantID, employeeID uuid.UUID, period hr.Period) ([]hr.AttendanceRecord, error) {
	var recordModels []models.AttendanceRecordModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ? AND date >= ? AND date <= ?",
			tenantID, employeeID, period.FirstDay(), period.LastDay()).
		Order("date ASC").
		Find(&recordModels).Error; err != nil {
		return nil, err
	}
	records := make([]hr.AttendanceRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// Save creates or updates an attendance record
func (r *GormAttendanceRepository) Save(ctx context.Context, record *hr.AttendanceRecord) error {
	var model models.AttendanceRecordModel
	model.FromDomain(record)
	return r.db.WithContext(ctx).Save(&model).Error
}

// GormLeaveRepository implements hr.LeaveRepository using GORM
type GormLeaveRepository struct {
	db *gorm.DB
}

// NewGormLeaveRepository creates a new GormLeaveRepository
func NewGormLeaveRepository(db *gorm.DB) *GormLeaveRepository {
	return &GormLeaveRepository{db: db}
}

// FindApprovedByEmployeeAndPeriod returns approved requests whose date range
// overlaps the period's calendar month, spanning requests included
func (r *GormLeaveRepository) FindApprovedByEmployeeAndPeriod(ctx context.Context, tenantID, employeeID uuid.UUID, period hr.Period) ([]hr.LeaveRequest, error) {
	var requestModels []models.LeaveRequestModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			tenantID, employeeID, hr.LeaveStatusApproved, period.LastDay(), period.FirstDay()).
		Order("start_date ASC").
		Find(&requestModels).Error; err != nil {
		return nil, err
	}
	requests := make([]hr.LeaveRequest, len(requestModels))
	for i, model := range requestModels {
		requests[i] = *model.ToDomain()
	}
	return requests, nil
}

// FindTypeByID finds a leave type by ID for a specific tenant, nil when absent
func (r *GormLeaveRepository) FindTypeByID(ctx context.Context, tenantID, leaveTypeID uuid.UUID) (*hr.LeaveType, error) {
	var model models.LeaveTypeModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, leaveTypeID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a leave request
func (r *GormLeaveRepository) Save(ctx context.Context, request *hr.LeaveRequest) error {
	var model models.LeaveRequestModel
	model.FromDomain(request)
	return r.db.WithContext(ctx).Save(&model).Error
}

// SaveType creates or updates a leave type
func (r *GormLeaveRepository) SaveType(ctx context.Context, leaveType *hr.LeaveType) error {
	var model models.LeaveTypeModel
	model.FromDomain(leaveType)
	return r.db.WithContext(ctx).Save(&model).Error
}

// GormPerformanceReviewRepository implements hr.PerformanceReviewRepository using GORM
type GormPerformanceReviewRepository struct {
	db *gorm.DB
}

// NewGormPerformanceReviewRepository creates a new GormPerformanceReviewRepository
func NewGormPerformanceReviewRepository(db *gorm.DB) *GormPerformanceReviewRepository {
	return &GormPerformanceReviewRepository{db: db}
}

// FindCompletedByEmployeeAndPeriod returns the completed review for the
// exact period, nil when none. The earliest created review wins when
// several completed reviews exist for the same period.
func (r *GormPerformanceReviewRepository) FindCompletedByEmployeeAndPeriod(ctx context.Context, tenantID, employeeID uuid.UUID, period hr.Period) (*hr.PerformanceReview, error) {
	var model models.PerformanceReviewModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ? AND review_period = ? AND status = ?",
			tenantID, employeeID, period.String(), hr.ReviewStatusCompleted).
		Order("created_at ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a performance review
func (r *GormPerformanceReviewRepository) Save(ctx context.Context, review *hr.PerformanceReview) error {
	var model models.PerformanceReviewModel
	model.FromDomain(review)
	return r.db.WithContext(ctx).Save(&model).Error
}

// GormTrainingRepository implements hr.TrainingRepository using GORM
type GormTrainingRepository struct {
	db *gorm.DB
}

// NewGormTrainingRepository creates a new GormTrainingRepository
func NewGormTrainingRepository(db *gorm.DB) *GormTrainingRepository {
	return &GormTrainingRepository{db: db}
}

// FindEnrollmentsByEmployeeAndPeriod returns the employee's enrollments whose
// training date range overlaps the period, each paired with its training.
// Enrollments are not deduplicated per training.
func (r *GormTrainingRepository) FindEnrollmentsByEmployeeAndPeriod(ctx context.Context, tenantID, employeeID uuid.UUID, period hr.Period) ([]hr.EnrolledTraining, error) {
	var enrollmentModels []models.TrainingEnrollmentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ?", tenantID, employeeID).
		Order("created_at ASC").
		Find(&enrollmentModels).Error; err != nil {
		return nil, err
	}
	if len(enrollmentModels) == 0 {
		return nil, nil
	}

	trainingIDs := make([]uuid.UUID, 0, len(enrollmentModels))
	for _, em := range enrollmentModels {
		trainingIDs = append(trainingIDs, em.TrainingID)
	}

	var trainingModels []models.TrainingModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ? AND start_date <= ? AND end_date >= ?",
			tenantID, trainingIDs, period.LastDay(), period.FirstDay()).
		Find(&trainingModels).Error; err != nil {
		return nil, err
	}
	trainingsByID := make(map[uuid.UUID]*hr.Training, len(trainingModels))
	for i := range trainingModels {
		t := trainingModels[i].ToDomain()
		trainingsByID[t.ID] = t
	}

	var enrolled []hr.EnrolledTraining
	for i := range enrollmentModels {
		training, ok := trainingsByID[enrollmentModels[i].TrainingID]
		if !ok {
			continue
		}
		enrolled = append(enrolled, hr.EnrolledTraining{
			Enrollment: *enrollmentModels[i].ToDomain(),
			Training:   *training,
		})
	}
	return enrolled, nil
}

// SaveTraining creates or updates a training program
func (r *GormTrainingRepository) SaveTraining(ctx context.Context, training *hr.Training) error {
	var model models.TrainingModel
	model.FromDomain(training)
	return r.db.WithContext(ctx).Save(&model).Error
}

// SaveEnrollment creates or updates a training enrollment
func (r *GormTrainingRepository) SaveEnrollment(ctx context.Context, enrollment *hr.TrainingEnrollment) error {
	var model models.TrainingEnrollmentModel
	model.FromDomain(enrollment)
	return r.db.WithContext(ctx).Save(&model).Error
}

// GormOnboardingRepository implements hr.OnboardingRepository using GORM
type GormOnboardingRepository struct {
	db *gorm.DB
}

// NewGormOnboardingRepository creates a new GormOnboardingRepository
func NewGormOnboardingRepository(db *gorm.DB) *GormOnboardingRepository {
	return &GormOnboardingRepository{db: db}
}

// FindCompletedByEmployee returns the employee's completed onboarding record,
// nil when none exists
func (r *GormOnboardingRepository) FindCompletedByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) (*hr.OnboardingRecord, error) {
	var model models.OnboardingRecordModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ? AND status = ?",
			tenantID, employeeID, hr.OnboardingStatusCompleted).
		Order("created_at ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates an onboarding record
func (r *GormOnboardingRepository) Save(ctx context.Context, record *hr.OnboardingRecord) error {
	var model models.OnboardingRecordModel
	model.FromDomain(record)
	return r.db.WithContext(ctx).Save(&model).Error
}
