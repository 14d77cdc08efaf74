package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/osconstruct/construct-api/internal/domain"
	"github.com/osconstruct/construct-api/internal/store"
)

// MockServiceStore implements store.ServiceStore for testing.
type MockServiceStore struct {
	ListByCompanyFn func(ctx context.Context, companyID uuid.UUID, page store.Page) ([]domain.Service, int, error)
	CreateFn        func(ctx context.Context, service *domain.Service) error

	CreateCalls int
}

var _ store.ServiceStore = (*MockServiceStore)(nil)

func (m *MockServiceStore) ListByCompany(ctx context.Context, companyID uuid.UUID, page store.Page) ([]domain.Service, int, error) {
	if m.ListByCompanyFn != nil {
		return m.ListByCompanyFn(ctx, companyID, page)
	}
	return nil, 0, nil
}

func (m *MockServiceStore) Create(ctx context.Context, service *domain.Service) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, service)
	}
	return nil
}

// MockProjectStore implements store.ProjectStore for testing.
type MockProjectStore struct {
	ListByCompanyFn func(ctx context.Context, companyID uuid.UUID, filter store.ProjectFilter, page store.Page) ([]domain.Project, int, error)
	CreateFn        func(ctx context.Context, project *domain.Project) error

	CreateCalls int
}

var _ store.ProjectStore = (*MockProjectStore)(nil)

func (m *MockProjectStore) ListByCompany(ctx context.Context, companyID uuid.UUID, filter store.ProjectFilter, page store.Page) ([]domain.Project, int, error) {
	if m.ListByCompanyFn != nil {
		return m.ListByCompanyFn(ctx, companyID, filter, page)
	}
	return nil, 0, nil
}

func (m *MockProjectStore) Create(ctx context.Context, project *domain.Project) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, project)
	}
	return nil
}

// MockEmployeeStore implements store.EmployeeStore for testing.
type MockEmployeeStore struct {
	ListByCompanyFn func(ctx context.Context, companyID uuid.UUID, page store.Page) ([]domain.Employee, int, error)
	CreateFn        func(ctx context.Context, employee *domain.Employee) error
	TransferFn      func(ctx context.Context, employeeID, fromCompanyID, toCompanyID uuid.UUID) (*domain.Employee, error)

	CreateCalls   int
	TransferCalls int
}

var _ store.EmployeeStore = (*MockEmployeeStore)(nil)

func (m *MockEmployeeStore) ListByCompany(ctx context.Context, companyID uuid.UUID, page store.Page) ([]domain.Employee, int, error) {
	if m.ListByCompanyFn != nil {
		return m.ListByCompanyFn(ctx, companyID, page)
	}
	return nil, 0, nil
}

func (m *MockEmployeeStore) Create(ctx context.Context, employee *domain.Employee) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, employee)
	}
	return nil
}

func (m *MockEmployeeStore) Transfer(ctx context.Context, employeeID, fromCompanyID, toCompanyID uuid.UUID) (*domain.Employee, error) {
	m.TransferCalls++
	if m.TransferFn != nil {
		return m.TransferFn(ctx, employeeID, fromCompanyID, toCompanyID)
	}
	return nil, store.ErrEmployeeNotFound
}

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, store.ErrUserNotFound
}
