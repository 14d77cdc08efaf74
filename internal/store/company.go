package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/osconstruct/construct-api/internal/domain"
)

// CompanyFilter narrows a company listing. Zero values mean "no filter".
type CompanyFilter struct {
	// IsVerified filters on the verification flag when non-nil.
	IsVerified *bool

	// Name filters on a case-insensitive substring match of the
	// company name when non-empty.
	Name string
}

// CompanyStore defines the interface for company persistence.
type CompanyStore interface {
	// List returns one page of companies matching the filter, together
	// with the total number of matching companies.
	List(ctx context.Context, filter CompanyFilter, page Page) ([]domain.Company, int, error)

	// GetByID retrieves a company by its unique ID.
	// Returns ErrCompanyNotFound if the company does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)

	// Exists reports whether a company with the given ID exists.
	// Used as the parent check before child-resource operations.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Create saves a new company to the store.
	Create(ctx context.Context, company *domain.Company) error

	// Update applies a partial update: only non-nil patch fields are
	// written, and updated_at is refreshed. Returns the updated company,
	// or ErrCompanyNotFound if the company does not exist.
	Update(ctx context.Context, id uuid.UUID, patch domain.CompanyPatch) (*domain.Company, error)

	// Delete removes a company. Child services, projects, and employees
	// are removed by the database's ON DELETE CASCADE constraints.
	// Returns ErrCompanyNotFound if the company does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Summary returns the company together with counts of its services,
	// employees, and projects broken down by status.
	// Returns ErrCompanyNotFound if the company does not exist.
	Summary(ctx context.Context, id uuid.UUID) (*domain.CompanySummary, error)
}
