package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus enumerates the lifecycle states of a project.
type ProjectStatus string

const (
	StatusPlanned    ProjectStatus = "planned"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
	StatusCancelled  ProjectStatus = "cancelled"
	StatusOnHold     ProjectStatus = "on_hold"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusCancelled, StatusOnHold:
		return true
	}
	return false
}

// Project represents a construction project run by a company.
type Project struct {
	ID              uuid.UUID     `json:"id"`
	CompanyID       uuid.UUID     `json:"company_id"`
	ProjectName     string        `json:"project_name"`
	Location        string        `json:"location"`
	StartDate       *Date         `json:"start_date,omitempty"`
	EndDate         *Date         `json:"end_date,omitempty"`
	Status          ProjectStatus `json:"status"`
	Description     *string       `json:"description,omitempty"`
	BeneficiaryInfo *string       `json:"beneficiary_info,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// NewProject creates a Project under the given company with a fresh ID,
// the default "planned" status, and UTC timestamps.
func NewProject(companyID uuid.UUID) *Project {
	now := time.Now().UTC()
	return &Project{
		ID:        uuid.New(),
		CompanyID: companyID,
		Status:    StatusPlanned,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ValidateDateOrder enforces end_date >= start_date when both are set.
func ValidateDateOrder(start, end *Date) error {
	if start == nil || end == nil {
		return nil
	}
	if end.Before(*start) {
		return ErrDateOrder
	}
	return nil
}
