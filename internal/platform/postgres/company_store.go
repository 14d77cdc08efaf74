package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/osconstruct/construct-api/internal/domain"
	"github.com/osconstruct/construct-api/internal/store"
)

// companyColumns is the column list shared by every company query so
// scans stay consistent.
const companyColumns = `id, company_name, company_address, company_email, company_phone,
	website, description, founded_year, is_verified, created_at, updated_at`

// CompanyStore implements store.CompanyStore using PostgreSQL.
type CompanyStore struct {
	db store.DBTX
}

// NewCompanyStore creates a PostgreSQL implementation of store.CompanyStore.
// It accepts a database handle or transaction owned by the caller.
func NewCompanyStore(db store.DBTX) *CompanyStore {
	return &CompanyStore{db: db}
}

// Ensure CompanyStore implements store.CompanyStore.
var _ store.CompanyStore = (*CompanyStore)(nil)

func scanCompany(row interface{ Scan(...any) error }) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.CompanyAddress, &c.CompanyEmail, &c.CompanyPhone,
		&c.Website, &c.Description, &c.FoundedYear, &c.IsVerified, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List implements store.CompanyStore.List. The count query reuses the
// WHERE clause of the page query so the reported total always reflects
// the filtered set.
func (s *CompanyStore) List(ctx context.Context, filter store.CompanyFilter, page store.Page) ([]domain.Company, int, error) {
	where := "TRUE"
	var args []any
	if filter.IsVerified != nil {
		args = append(args, *filter.IsVerified)
		where += fmt.Sprintf(" AND is_verified = $%d", len(args))
	}
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		where += fmt.Sprintf(" AND company_name ILIKE $%d", len(args))
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM companies WHERE " + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, MapError(err)
	}

	args = append(args, page.Limit, page.Offset)
	query := fmt.Sprintf(
		"SELECT %s FROM companies WHERE %s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d",
		companyColumns, where, len(args)-1, len(args),
	)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	companies := make([]domain.Company, 0, page.Limit)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, MapError(err)
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return companies, total, nil
}

// GetByID implements store.CompanyStore.GetByID.
func (s *CompanyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	query := fmt.Sprintf("SELECT %s FROM companies WHERE id = $1", companyColumns)
	company, err := scanCompany(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err = MapError(err); errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

// Exists implements store.CompanyStore.Exists.
func (s *CompanyStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// Create implements store.CompanyStore.Create.
func (s *CompanyStore) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies
		(id, company_name, company_address, company_email, company_phone,
		 website, description, founded_year, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := s.db.ExecContext(ctx, query,
		company.ID, company.CompanyName, company.CompanyAddress, company.CompanyEmail, company.CompanyPhone,
		company.Website, company.Description, company.FoundedYear, company.IsVerified,
		company.CreatedAt, company.UpdatedAt,
	)
	return MapError(err)
}

// Update implements store.CompanyStore.Update. It builds a SET clause
// from the non-nil patch fields only, so absent fields are untouched.
func (s *CompanyStore) Update(ctx context.Context, id uuid.UUID, patch domain.CompanyPatch) (*domain.Company, error) {
	set := []string{"updated_at = $1"}
	args := []any{time.Now().UTC()}
	assign := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.CompanyName != nil {
		assign("company_name", *patch.CompanyName)
	}
	if patch.CompanyAddress != nil {
		assign("company_address", *patch.CompanyAddress)
	}
	if patch.CompanyEmail != nil {
		assign("company_email", *patch.CompanyEmail)
	}
	if patch.CompanyPhone != nil {
		assign("company_phone", *patch.CompanyPhone)
	}
	if patch.Website != nil {
		assign("website", *patch.Website)
	}
	if patch.Description != nil {
		assign("description", *patch.Description)
	}
	if patch.FoundedYear != nil {
		assign("founded_year", *patch.FoundedYear)
	}
	if patch.IsVerified != nil {
		assign("is_verified", *patch.IsVerified)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE companies SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), companyColumns,
	)
	company, err := scanCompany(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err = MapError(err); errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

// Delete implements store.CompanyStore.Delete. RETURNING distinguishes
// "deleted" from "was already gone" in a single round trip.
func (s *CompanyStore) Delete(ctx context.Context, id uuid.UUID) error {
	var deleted uuid.UUID
	err := s.db.QueryRowContext(ctx, "DELETE FROM companies WHERE id = $1 RETURNING id", id).Scan(&deleted)
	if err != nil {
		if err = MapError(err); errors.Is(err, store.ErrNotFound) {
			return store.ErrCompanyNotFound
		}
		return err
	}
	return nil
}

// Summary implements store.CompanyStore.Summary.
func (s *CompanyStore) Summary(ctx context.Context, id uuid.UUID) (*domain.CompanySummary, error) {
	company, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := &domain.CompanySummary{
		Company: *company,
		Counts: domain.SummaryCounts{
			ProjectsByStatus: make(map[string]int),
		},
	}

	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM services WHERE company_id = $1", id,
	).Scan(&summary.Counts.Services)
	if err != nil {
		return nil, MapError(err)
	}

	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM employees WHERE company_id = $1", id,
	).Scan(&summary.Counts.Employees)
	if err != nil {
		return nil, MapError(err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT status, COUNT(*) FROM projects WHERE company_id = $1 GROUP BY status", id,
	)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, MapError(err)
		}
		summary.Counts.ProjectsByStatus[status] = count
		summary.Counts.Projects += count
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return summary, nil
}
