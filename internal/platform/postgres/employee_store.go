package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/osconstruct/construct-api/internal/domain"
	"github.com/osconstruct/construct-api/internal/store"
)

const employeeColumns = `id, company_id, full_name, position, email, phone,
	specialization, join_date, created_at, updated_at`

// EmployeeStore implements store.EmployeeStore using PostgreSQL.
// It holds the full *sql.DB handle rather than a DBTX because Transfer
// opens its own transaction.
type EmployeeStore struct {
	db *sql.DB
}

// NewEmployeeStore creates a PostgreSQL implementation of store.EmployeeStore.
func NewEmployeeStore(db *sql.DB) *EmployeeStore {
	return &EmployeeStore{db: db}
}

var _ store.EmployeeStore = (*EmployeeStore)(nil)

func scanEmployee(row interface{ Scan(...any) error }) (*domain.Employee, error) {
	var e domain.Employee
	var joinDate sql.NullTime
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.FullName, &e.Position, &e.Email, &e.Phone,
		&e.Specialization, &joinDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if joinDate.Valid {
		d := domain.Date{Time: joinDate.Time}
		e.JoinDate = &d
	}
	return &e, nil
}

// ListByCompany implements store.EmployeeStore.ListByCompany.
func (s *EmployeeStore) ListByCompany(ctx context.Context, companyID uuid.UUID, page store.Page) ([]domain.Employee, int, error) {
	var total int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM employees WHERE company_id = $1", companyID,
	).Scan(&total)
	if err != nil {
		return nil, 0, MapError(err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+employeeColumns+" FROM employees WHERE company_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3",
		companyID, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	employees := make([]domain.Employee, 0, page.Limit)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, MapError(err)
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return employees, total, nil
}

// Create implements store.EmployeeStore.Create.
func (s *EmployeeStore) Create(ctx context.Context, employee *domain.Employee) error {
	query := `INSERT INTO employees
		(id, company_id, full_name, position, email, phone, specialization, join_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := s.db.ExecContext(ctx, query,
		employee.ID, employee.CompanyID, employee.FullName, employee.Position,
		employee.Email, employee.Phone, employee.Specialization, employee.JoinDate,
		employee.CreatedAt, employee.UpdatedAt,
	)
	return MapError(err)
}

// Transfer implements store.EmployeeStore.Transfer. The membership check,
// destination check, and move happen in one transaction so a concurrent
// company deletion cannot strand the employee.
func (s *EmployeeStore) Transfer(ctx context.Context, employeeID, fromCompanyID, toCompanyID uuid.UUID) (*domain.Employee, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	err = tx.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1 AND company_id = $2)",
		employeeID, fromCompanyID,
	).Scan(&exists)
	if err != nil {
		return nil, MapError(err)
	}
	if !exists {
		return nil, store.ErrEmployeeNotFound
	}

	err = tx.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1)", toCompanyID,
	).Scan(&exists)
	if err != nil {
		return nil, MapError(err)
	}
	if !exists {
		return nil, store.ErrCompanyNotFound
	}

	query := fmt.Sprintf(
		"UPDATE employees SET company_id = $1, updated_at = $2 WHERE id = $3 RETURNING %s",
		employeeColumns,
	)
	employee, err := scanEmployee(tx.QueryRowContext(ctx, query, toCompanyID, time.Now().UTC(), employeeID))
	if err != nil {
		if err = MapError(err); errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrEmployeeNotFound
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, MapError(err)
	}
	return employee, nil
}
