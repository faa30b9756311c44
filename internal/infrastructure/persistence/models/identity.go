package models

import (
	"github.com/bizsuite/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// UserModel is the persistence model for the User aggregate root.
type UserModel struct {
	TenantAggregateModel
	Username    string              `gorm:"type:varchar(100);not null;index"`
	Email       string              `gorm:"type:varchar(255);index"`
	DisplayName string              `gorm:"type:varchar(200)"`
	Status      identity.UserStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	u := &identity.User{
		Username:    m.Username,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Status:      m.Status,
	}
	m.PopulateDomainRoot(&u.TenantAggregateRoot)
	return u
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainRoot(u.TenantAggregateRoot)
	m.Username = u.Username
	m.Email = u.Email
	m.DisplayName = u.DisplayName
	m.Status = u.Status
}

// DepartmentModel is the persistence model for the Department aggregate root.
type DepartmentModel struct {
	TenantAggregateModel
	Name     string     `gorm:"type:varchar(100);not null"`
	Code     string     `gorm:"type:varchar(50);index"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (DepartmentModel) TableName() string {
	return "departments"
}

// ToDomain converts the persistence model to a domain Department entity.
func (m *DepartmentModel) ToDomain() *identity.Department {
	d := &identity.Department{
		Name:     m.Name,
		Code:     m.Code,
		ParentID: m.ParentID,
	}
	m.PopulateDomainRoot(&d.TenantAggregateRoot)
	return d
}

// FromDomain populates the persistence model from a domain Department entity.
func (m *DepartmentModel) FromDomain(d *identity.Department) {
	m.FromDomainRoot(d.TenantAggregateRoot)
	m.Name = d.Name
	m.Code = d.Code
	m.ParentID = d.ParentID
}

// TeamModel is the persistence model for the Team aggregate root.
type TeamModel struct {
	TenantAggregateModel
	Name         string    `gorm:"type:varchar(100);not null"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (TeamModel) TableName() string {
	return "teams"
}

// ToDomain converts the persistence model to a domain Team entity.
func (m *TeamModel) ToDomain() *identity.Team {
	t := &identity.Team{
		Name:         m.Name,
		DepartmentID: m.DepartmentID,
	}
	m.PopulateDomainRoot(&t.TenantAggregateRoot)
	return t
}

// FromDomain populates the persistence model from a domain Team entity.
func (m *TeamModel) FromDomain(t *identity.Team) {
	m.FromDomainRoot(t.TenantAggregateRoot)
	m.Name = t.Name
	m.DepartmentID = t.DepartmentID
}
