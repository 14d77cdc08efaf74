package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/osconstruct/construct-api/internal/domain"
)

// ProjectFilter narrows a project listing.
type ProjectFilter struct {
	// Status filters on status equality when non-nil.
	Status *domain.ProjectStatus
}

// ProjectStore defines the interface for project persistence.
type ProjectStore interface {
	// ListByCompany returns one page of a company's projects matching
	// the filter, together with the total number of matching projects.
	ListByCompany(ctx context.Context, companyID uuid.UUID, filter ProjectFilter, page Page) ([]domain.Project, int, error)

	// Create saves a new project to the store. The caller is responsible
	// for verifying the parent company exists first.
	Create(ctx context.Context, project *domain.Project) error
}
