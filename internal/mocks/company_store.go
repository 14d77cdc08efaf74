package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/osconstruct/construct-api/internal/domain"
	"github.com/osconstruct/construct-api/internal/store"
)

// MockCompanyStore implements store.CompanyStore for testing.
type MockCompanyStore struct {
	ListFn    func(ctx context.Context, filter store.CompanyFilter, page store.Page) ([]domain.Company, int, error)
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	ExistsFn  func(ctx context.Context, id uuid.UUID) (bool, error)
	CreateFn  func(ctx context.Context, company *domain.Company) error
	UpdateFn  func(ctx context.Context, id uuid.UUID, patch domain.CompanyPatch) (*domain.Company, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
	SummaryFn func(ctx context.Context, id uuid.UUID) (*domain.CompanySummary, error)

	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

var _ store.CompanyStore = (*MockCompanyStore)(nil)

func (m *MockCompanyStore) List(ctx context.Context, filter store.CompanyFilter, page store.Page) ([]domain.Company, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, page)
	}
	return nil, 0, nil
}

func (m *MockCompanyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrCompanyNotFound
}

func (m *MockCompanyStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}
	return false, nil
}

func (m *MockCompanyStore) Create(ctx context.Context, company *domain.Company) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, company)
	}
	return nil
}

func (m *MockCompanyStore) Update(ctx context.Context, id uuid.UUID, patch domain.CompanyPatch) (*domain.Company, error) {
	m.UpdateCalls++
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return nil, store.ErrCompanyNotFound
}

func (m *MockCompanyStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls++
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return store.ErrCompanyNotFound
}

func (m *MockCompanyStore) Summary(ctx context.Context, id uuid.UUID) (*domain.CompanySummary, error) {
	if m.SummaryFn != nil {
		return m.SummaryFn(ctx, id)
	}
	return nil, store.ErrCompanyNotFound
}
