package models

import (
	"time"

	"github.com/bizsuite/backend/internal/domain/hr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeModel is the persistence model for the Employee aggregate root.
type EmployeeModel struct {
	TenantAggregateModel
	EmployeeNumber string              `gorm:"type:varchar(50);not null;index"`
	UserID         uuid.UUID           `gorm:"type:uuid;not null;index"`
	DepartmentID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	TeamID         *uuid.UUID          `gorm:"type:uuid;index"`
	Position       string              `gorm:"type:varchar(100)"`
	Status         hr.EmploymentStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	HireDate       time.Time           `gorm:"not null"`
	Salary         *decimal.Decimal    `gorm:"type:decimal(18,4)"`
	OvertimeRate   *decimal.Decimal    `gorm:"type:decimal(18,4)"`
	DailyRate      *decimal.Decimal    `gorm:"type:decimal(18,4)"`
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee entity.
func (m *EmployeeModel) ToDomain() *hr.Employee {
	e := &hr.Employee{
		EmployeeNumber: m.EmployeeNumber,
		UserID:         m.UserID,
		DepartmentID:   m.DepartmentID,
		TeamID:         m.TeamID,
		Position:       m.Position,
		Status:         m.Status,
		HireDate:       m.HireDate,
		Salary:         m.Salary,
		OvertimeRate:   m.OvertimeRate,
		DailyRate:      m.DailyRate,
	}
	m.PopulateDomainRoot(&e.TenantAggregateRoot)
	return e
}

// FromDomain populates the persistence model from a domain Employee entity.
func (m *EmployeeModel) FromDomain(e *hr.Employee) {
	m.FromDomainRoot(e.TenantAggregateRoot)
	m.EmployeeNumber = e.EmployeeNumber
	m.UserID = e.UserID
	m.DepartmentID = e.DepartmentID
	m.TeamID = e.TeamID
	m.Position = e.Position
	m.Status = e.Status
	m.HireDate = e.HireDate
	m.Salary = e.Salary
	m.OvertimeRate = e.OvertimeRate
	m.DailyRate = e.DailyRate
}

// AttendanceRecordModel is the persistence model for daily attendance records.
type AttendanceRecordModel struct {
	TenantAggregateModel
	EmployeeID    uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_employee_date,priority:1"`
	Date          time.Time           `gorm:"type:date;not null;uniqueIndex:idx_attendance_employee_date,priority:2"`
	Status        hr.AttendanceStatus `gorm:"type:varchar(20);not null"`
	OvertimeHours decimal.Decimal     `gorm:"type:decimal(6,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}

// ToDomain converts the persistence model to a domain AttendanceRecord entity.
func (m *AttendanceRecordModel) ToDomain() *hr.AttendanceRecord {
	a := &hr.AttendanceRecord{
		EmployeeID:    m.EmployeeID,
		Date:          m.Date,
		Status:        m.Status,
		OvertimeHours: m.OvertimeHours,
	}
	m.PopulateDomainRoot(&a.TenantAggregateRoot)
	return a
}

// FromDomain populates the persistence model from a domain AttendanceRecord entity.
func (m *AttendanceRecordModel) FromDomain(a *hr.AttendanceRecord) {
	m.FromDomainRoot(a.TenantAggregateRoot)
	m.EmployeeID = a.EmployeeID
	m.Date = a.Date
	m.Status = a.Status
	m.OvertimeHours = a.OvertimeHours
}

// LeaveTypeModel is the persistence model for configured leave categories.
type LeaveTypeModel struct {
	TenantAggregateModel
	Name   string `gorm:"type:varchar(100);not null"`
	IsPaid bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (LeaveTypeModel) TableName() string {
	return "leave_types"
}

// ToDomain converts the persistence model to a domain LeaveType entity.
func (m *LeaveTypeModel) ToDomain() *hr.LeaveType {
	lt := &hr.LeaveType{
		Name:   m.Name,
		IsPaid: m.IsPaid,
	}
	m.PopulateDomainRoot(&lt.TenantAggregateRoot)
	return lt
}

// FromDomain populates the persistence model from a domain LeaveType entity.
func (m *LeaveTypeModel) FromDomain(lt *hr.LeaveType) {
	m.FromDomainRoot(lt.TenantAggregateRoot)
	m.Name = lt.Name
	m.IsPaid = lt.IsPaid
}

// LeaveRequestModel is the persistence model for leave requests.
type LeaveRequestModel struct {
	TenantAggregateModel
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	LeaveTypeID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	StartDate     time.Time       `gorm:"type:date;not null;index"`
	EndDate       time.Time       `gorm:"type:date;not null;index"`
	DaysRequested decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	Status        hr.LeaveStatus  `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Reason        string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (LeaveRequestModel) TableName() string {
	return "leave_requests"
}

// ToDomain converts the persistence model to a domain LeaveRequest entity.
func (m *LeaveRequestModel) ToDomain() *hr.LeaveRequest {
	lr := &hr.LeaveRequest{
		EmployeeID:    m.EmployeeID,
		LeaveTypeID:   m.LeaveTypeID,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		DaysRequested: m.DaysRequested,
		Status:        m.Status,
		Reason:        m.Reason,
	}
	m.PopulateDomainRoot(&lr.TenantAggregateRoot)
	return lr
}

// FromDomain populates the persistence model from a domain LeaveRequest entity.
func (m *LeaveRequestModel) FromDomain(lr *hr.LeaveRequest) {
	m.FromDomainRoot(lr.TenantAggregateRoot)
	m.EmployeeID = lr.EmployeeID
	m.LeaveTypeID = lr.LeaveTypeID
	m.StartDate = lr.StartDate
	m.EndDate = lr.EndDate
	m.DaysRequested = lr.DaysRequested
	m.Status = lr.Status
	m.Reason = lr.Reason
}

// PerformanceReviewModel is the persistence model for performance reviews.
type PerformanceReviewModel struct {
	TenantAggregateModel
	EmployeeID   uuid.UUID        `gorm:"type:uuid;not null;index:idx_reviews_employee_period,priority:1"`
	ReviewPeriod string           `gorm:"type:varchar(7);not null;index:idx_reviews_employee_period,priority:2"`
	Status       hr.ReviewStatus  `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	Rating       *int             `gorm:"type:smallint"`
	Bonus        *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Summary      string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PerformanceReviewModel) TableName() string {
	return "performance_reviews"
}

// ToDomain converts the persistence model to a domain PerformanceReview entity.
func (m *PerformanceReviewModel) ToDomain() *hr.PerformanceReview {
	r := &hr.PerformanceReview{
		EmployeeID:   m.EmployeeID,
		ReviewPeriod: m.ReviewPeriod,
		Status:       m.Status,
		Rating:       m.Rating,
		Bonus:        m.Bonus,
		Summary:      m.Summary,
	}
	m.PopulateDomainRoot(&r.TenantAggregateRoot)
	return r
}

// FromDomain populates the persistence model from a domain PerformanceReview entity.
func (m *PerformanceReviewModel) FromDomain(r *hr.PerformanceReview) {
	m.FromDomainRoot(r.TenantAggregateRoot)
	m.EmployeeID = r.EmployeeID
	m.ReviewPeriod = r.ReviewPeriod
	m.Status = r.Status
	m.Rating = r.Rating
	m.Bonus = r.Bonus
	m.Summary = r.Summary
}

// TrainingModel is the persistence model for training programs.
type TrainingModel struct {
	TenantAggregateModel
	Title              string          `gorm:"type:varchar(200);not null"`
	StartDate          time.Time       `gorm:"type:date;not null;index"`
	EndDate            time.Time       `gorm:"type:date;not null;index"`
	CostPerParticipant decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (TrainingModel) TableName() string {
	return "trainings"
}

// ToDomain converts the persistence model to a domain Training entity.
func (m *TrainingModel) ToDomain() *hr.Training {
	t := &hr.Training{
		Title:              m.Title,
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		CostPerParticipant: m.CostPerParticipant,
	}
	m.PopulateDomainRoot(&t.TenantAggregateRoot)
	return t
}

// FromDomain populates the persistence model from a domain Training entity.
func (m *TrainingModel) FromDomain(t *hr.Training) {
	m.FromDomainRoot(t.TenantAggregateRoot)
	m.Title = t.Title
	m.StartDate = t.StartDate
	m.EndDate = t.EndDate
	m.CostPerParticipant = t.CostPerParticipant
}

// TrainingEnrollmentModel is the persistence model for training enrollments.
type TrainingEnrollmentModel struct {
	TenantAggregateModel
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	TrainingID uuid.UUID `gorm:"type:uuid;not null;index"`
	EnrolledAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (TrainingEnrollmentModel) TableName() string {
	return "training_enrollments"
}

// ToDomain converts the persistence model to a domain TrainingEnrollment entity.
func (m *TrainingEnrollmentModel) ToDomain() *hr.TrainingEnrollment {
	e := &hr.TrainingEnrollment{
		EmployeeID: m.EmployeeID,
		TrainingID: m.TrainingID,
		EnrolledAt: m.EnrolledAt,
	}
	m.PopulateDomainRoot(&e.TenantAggregateRoot)
	return e
}

// FromDomain populates the persistence model from a domain TrainingEnrollment entity.
func (m *TrainingEnrollmentModel) FromDomain(e *hr.TrainingEnrollment) {
	m.FromDomainRoot(e.TenantAggregateRoot)
	m.EmployeeID = e.EmployeeID
	m.TrainingID = e.TrainingID
	m.EnrolledAt = e.EnrolledAt
}

// OnboardingRecordModel is the persistence model for onboarding records.
type OnboardingRecordModel struct {
	TenantAggregateModel
	EmployeeID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	Status      hr.OnboardingStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CompletedAt *time.Time
}

// TableName returns the table name for GORM
func (OnboardingRecordModel) TableName() string {
	return "onboarding_records"
}

// ToDomain converts the persistence model to a domain OnboardingRecord entity.
func (m *OnboardingRecordModel) ToDomain() *hr.OnboardingRecord {
	o := &hr.OnboardingRecord{
		EmployeeID:  m.EmployeeID,
		Status:      m.Status,
		CompletedAt: m.CompletedAt,
	}
	m.PopulateDomainRoot(&o.TenantAggregateRoot)
	return o
}

// FromDomain populates the persistence model from a domain OnboardingRecord entity.
func (m *OnboardingRecordModel) FromDomain(o *hr.OnboardingRecord) {
	m.FromDomainRoot(o.TenantAggregateRoot)
	m.EmployeeID = o.EmployeeID
	m.Status = o.Status
	m.CompletedAt = o.CompletedAt
}
