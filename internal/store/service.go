package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/osconstruct/construct-api/internal/domain"
)

// ServiceStore defines the interface for service persistence.
type ServiceStore interface {
	// ListByCompany returns one page of a company's services together
	// with the total number of services that company has.
	ListByCompany(ctx context.Context, companyID uuid.UUID, page Page) ([]domain.Service, int, error)

	// Create saves a new service to the store. The caller is responsible
	// for verifying the parent company exists first.
	Create(ctx context.Context, service *domain.Service) error
}
