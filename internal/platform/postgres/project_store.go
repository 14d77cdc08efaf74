package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/osconstruct/construct-api/internal/domain"
	"github.com/osconstruct/construct-api/internal/store"
)

const projectColumns = `id, company_id, project_name, location, start_date, end_date,
	status, description, beneficiary_info, created_at, updated_at`

// ProjectStore implements store.ProjectStore using PostgreSQL.
type ProjectStore struct {
	db store.DBTX
}

// NewProjectStore creates a PostgreSQL implementation of store.ProjectStore.
func NewProjectStore(db store.DBTX) *ProjectStore {
	return &ProjectStore{db: db}
}

var _ store.ProjectStore = (*ProjectStore)(nil)

func scanProject(row interface{ Scan(...any) error }) (*domain.Project, error) {
	var p domain.Project
	var startDate, endDate sql.NullTime
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.ProjectName, &p.Location, &startDate, &endDate,
		&p.Status, &p.Description, &p.BeneficiaryInfo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if startDate.Valid {
		d := domain.Date{Time: startDate.Time}
		p.StartDate = &d
	}
	if endDate.Valid {
		d := domain.Date{Time: endDate.Time}
		p.EndDate = &d
	}
	return &p, nil
}

// ListByCompany implements store.ProjectStore.ListByCompany. The count
// query shares the WHERE clause with the page query so a status filter
// is reflected in the total.
func (s *ProjectStore) ListByCompany(ctx context.Context, companyID uuid.UUID, filter store.ProjectFilter, page store.Page) ([]domain.Project, int, error) {
	where := "company_id = $1"
	args := []any{companyID}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, MapError(err)
	}

	args = append(args, page.Limit, page.Offset)
	query := fmt.Sprintf(
		"SELECT %s FROM projects WHERE %s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d",
		projectColumns, where, len(args)-1, len(args),
	)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	projects := make([]domain.Project, 0, page.Limit)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, MapError(err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return projects, total, nil
}

// Create implements store.ProjectStore.Create.
func (s *ProjectStore) Create(ctx context.Context, project *domain.Project) error {
	query := `INSERT INTO projects
		(id, company_id, project_name, location, start_date, end_date,
		 status, description, beneficiary_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := s.db.ExecContext(ctx, query,
		project.ID, project.CompanyID, project.ProjectName, project.Location,
		project.StartDate, project.EndDate, project.Status,
		project.Description, project.BeneficiaryInfo, project.CreatedAt, project.UpdatedAt,
	)
	return MapError(err)
}
