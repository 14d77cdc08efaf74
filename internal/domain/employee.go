package domain

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents a person employed by a company.
type Employee struct {
	ID             uuid.UUID `json:"id"`
	CompanyID      uuid.UUID `json:"company_id"`
	FullName       string    `json:"full_name"`
	Position       string    `json:"position"`
	Email          *string   `json:"email,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Specialization *string   `json:"specialization,omitempty"`
	JoinDate       *Date     `json:"join_date,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewEmployee creates an Employee under the given company with a fresh ID
// and UTC timestamps.
func NewEmployee(companyID uuid.UUID) *Employee {
	now := time.Now().UTC()
	return &Employee{
		ID:        uuid.New(),
		CompanyID: companyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
