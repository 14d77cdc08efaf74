package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bounds for the founded_year invariant. The upper bound is the current
// year, evaluated at validation time.
const MinFoundedYear = 1800

// Company represents a construction company registered in the directory.
type Company struct {
	ID             uuid.UUID `json:"id"`
	CompanyName    string    `json:"company_name"`
	CompanyAddress string    `json:"company_address"`
	CompanyEmail   string    `json:"company_email"`
	CompanyPhone   string    `json:"company_phone"`
	Website        *string   `json:"website,omitempty"`
	Description    *string   `json:"description,omitempty"`
	FoundedYear    *int      `json:"founded_year,omitempty"`
	IsVerified     bool      `json:"is_verified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewCompany creates a Company with a fresh ID and UTC timestamps.
// Field validation happens at the API boundary; this constructor only
// assigns server-owned fields.
func NewCompany() *Company {
	now := time.Now().UTC()
	return &Company{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ValidateFoundedYear checks the [1800, current year] invariant.
// A nil year is valid; the field is optional.
func ValidateFoundedYear(year *int, now time.Time) error {
	if year == nil {
		return nil
	}
	if *year < MinFoundedYear || *year > now.Year() {
		return ErrInvalidFoundedYear
	}
	return nil
}

// CompanyPatch carries a partial update for a company. Nil fields are
// left untouched by the store; only non-nil fields are written.
type CompanyPatch struct {
	CompanyName    *string
	CompanyAddress *string
	CompanyEmail   *string
	CompanyPhone   *string
	Website        *string
	Description    *string
	FoundedYear    *int
	IsVerified     *bool
}

// IsEmpty reports whether the patch modifies nothing.
func (p CompanyPatch) IsEmpty() bool {
	return p.CompanyName == nil && p.CompanyAddress == nil &&
		p.CompanyEmail == nil && p.CompanyPhone == nil &&
		p.Website == nil && p.Description == nil &&
		p.FoundedYear == nil && p.IsVerified == nil
}

// CompanySummary aggregates a company with counts of its child entities.
type CompanySummary struct {
	Company Company       `json:"company"`
	Counts  SummaryCounts `json:"counts"`
}

// SummaryCounts holds the per-entity counts for a company summary,
// including a breakdown of projects by status.
type SummaryCounts struct {
	Services         int            `json:"services"`
	Projects         int            `json:"projects"`
	ProjectsByStatus map[string]int `json:"projects_by_status"`
	Employees        int            `json:"employees"`
}
