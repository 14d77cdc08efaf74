package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/osconstruct/construct-api/internal/domain"
)

// EmployeeStore defines the interface for employee persistence.
type EmployeeStore interface {
	// ListByCompany returns one page of a company's employees together
	// with the total number of employees that company has.
	ListByCompany(ctx context.Context, companyID uuid.UUID, page Page) ([]domain.Employee, int, error)

	// Create saves a new employee to the store. The caller is responsible
	// for verifying the parent company exists first.
	Create(ctx context.Context, employee *domain.Employee) error

	// Transfer moves an employee from one company to another inside a
	// single transaction. Returns ErrEmployeeNotFound if the employee
	// does not exist under the source company, and ErrCompanyNotFound
	// if the destination company does not exist.
	Transfer(ctx context.Context, employeeID, fromCompanyID, toCompanyID uuid.UUID) (*domain.Employee, error)
}
