package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service represents a service a company offers to the community.
// Every service belongs to exactly one company.
type Service struct {
	ID                  uuid.UUID `json:"id"`
	CompanyID           uuid.UUID `json:"company_id"`
	ServiceName         string    `json:"service_name"`
	Description         *string   `json:"description,omitempty"`
	IsFree              bool      `json:"is_free"`
	EligibilityCriteria *string   `json:"eligibility_criteria,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// NewService creates a Service under the given company with a fresh ID
// and UTC timestamps.
func NewService(companyID uuid.UUID) *Service {
	now := time.Now().UTC()
	return &Service{
		ID:        uuid.New(),
		CompanyID: companyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
