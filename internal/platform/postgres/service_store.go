package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/osconstruct/construct-api/internal/domain"
	"github.com/osconstruct/construct-api/internal/store"
)

const serviceColumns = `id, company_id, service_name, description, is_free,
	eligibility_criteria, created_at, updated_at`

// ServiceStore implements store.ServiceStore using PostgreSQL.
type ServiceStore struct {
	db store.DBTX
}

// NewServiceStore creates a PostgreSQL implementation of store.ServiceStore.
func NewServiceStore(db store.DBTX) *ServiceStore {
	return &ServiceStore{db: db}
}

var _ store.ServiceStore = (*ServiceStore)(nil)

// ListByCompany implements store.ServiceStore.ListByCompany. The total
// is counted per company, not across the whole table.
func (s *ServiceStore) ListByCompany(ctx context.Context, companyID uuid.UUID, page store.Page) ([]domain.Service, int, error) {
	var total int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM services WHERE company_id = $1", companyID,
	).Scan(&total)
	if err != nil {
		return nil, 0, MapError(err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+serviceColumns+" FROM services WHERE company_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3",
		companyID, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	services := make([]domain.Service, 0, page.Limit)
	for rows.Next() {
		var svc domain.Service
		err := rows.Scan(
			&svc.ID, &svc.CompanyID, &svc.ServiceName, &svc.Description, &svc.IsFree,
			&svc.EligibilityCriteria, &svc.CreatedAt, &svc.UpdatedAt,
		)
		if err != nil {
			return nil, 0, MapError(err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return services, total, nil
}

// Create implements store.ServiceStore.Create.
func (s *ServiceStore) Create(ctx context.Context, service *domain.Service) error {
	query := `INSERT INTO services
		(id, company_id, service_name, description, is_free, eligibility_criteria, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.db.ExecContext(ctx, query,
		service.ID, service.CompanyID, service.ServiceName, service.Description,
		service.IsFree, service.EligibilityCriteria, service.CreatedAt, service.UpdatedAt,
	)
	return MapError(err)
}
