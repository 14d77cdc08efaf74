package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osconstruct/construct-api/internal/api/shared"
	"github.com/osconstruct/construct-api/internal/domain"
	"github.com/osconstruct/construct-api/internal/mocks"
	"github.com/osconstruct/construct-api/internal/store"
)

func newCompanyHandler(companies *mocks.MockCompanyStore) *CompanyHandler {
	return NewCompanyHandler(companies, NewValidator())
}

func testCompany() *domain.Company {
	c := domain.NewCompany()
	c.CompanyName = "Bedrock Builders"
	c.CompanyAddress = "1 Granite Way"
	c.CompanyEmail = "office@bedrock.example"
	c.CompanyPhone = "+1-555-0100"
	return c
}

func TestCompanyList(t *testing.T) {
	t.Parallel()

	t.Run("returns paginated envelope", func(t *testing.T) {
		t.Parallel()
		companies := &mocks.MockCompanyStore{
			ListFn: func(ctx context.Context, filter store.CompanyFilter, page store.Page) ([]domain.Company, int, error) {
				assert.Equal(t, 10, page.Limit)
				assert.Equal(t, 0, page.Offset)
				return []domain.Company{*testCompany(), *testCompany()}, 25, nil
			},
		}
		h := newCompanyHandler(companies)

		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest("GET", "/api/companies", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Data       []domain.Company `json:"data"`
			Pagination Pagination       `json:"pagination"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp.Data, 2)
		assert.Equal(t, 25, resp.Pagination.Total)
		assert.Equal(t, 3, resp.Pagination.Pages)
	})

	t.Run("passes filters to the store", func(t *testing.T) {
		t.Parallel()
		var gotFilter store.CompanyFilter
		companies := &mocks.MockCompanyStore{
			ListFn: func(ctx context.Context, filter store.CompanyFilter, page store.Page) ([]domain.Company, int, error) {
				gotFilter = filter
				return nil, 0, nil
			},
		}
		h := newCompanyHandler(companies)

		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest("GET", "/api/companies?is_verified=true&name=bedrock", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotFilter.IsVerified)
		assert.True(t, *gotFilter.IsVerified)
		assert.Equal(t, "bedrock", gotFilter.Name)
	})

	t.Run("rejects malformed is_verified", func(t *testing.T) {
		t.Parallel()
		h := newCompanyHandler(&mocks.MockCompanyStore{})

		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest("GET", "/api/companies?is_verified=maybe", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, shared.KindValidation, decodeError(t, rec).Error)
	})

	t.Run("rejects non-numeric page", func(t *testing.T) {
		t.Parallel()
		h := newCompanyHandler(&mocks.MockCompanyStore{})

		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest("GET", "/api/companies?page=abc", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCompanyGet(t *testing.T) {
	t.Parallel()

	t.Run("returns the company", func(t *testing.T) {
		t.Parallel()
		company := testCompany()
		companies := &mocks.MockCompanyStore{
			GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
				assert.Equal(t, company.ID, id)
				return company, nil
			},
		}
		h := newCompanyHandler(companies)

		rec := httptest.NewRecorder()
		r := newTestRequest(t, "GET", "/api/companies/"+company.ID.String(), nil,
			map[string]string{"company_id": company.ID.String()})
		h.Get(rec, r)

		require.Equal(t, http.StatusOK, rec.Code)
		var got domain.Company
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, company.ID, got.ID)
		assert.Equal(t, "Bedrock Builders", got.CompanyName)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		t.Parallel()
		h := newCompanyHandler(&mocks.MockCompanyStore{})

		id := uuid.New().String()
		rec := httptest.NewRecorder()
		h.Get(rec, newTestRequest(t, "GET", "/api/companies/"+id, nil,
			map[string]string{"company_id": id}))

		require.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, shared.KindNotFound, resp.Error)
		assert.Equal(t, "Company not found", resp.Message)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		t.Parallel()
		h := newCompanyHandler(&mocks.MockCompanyStore{})

		rec := httptest.NewRecorder()
		h.Get(rec, newTestRequest(t, "GET", "/api/companies/not-a-uuid", nil,
			map[string]string{"company_id": "not-a-uuid"}))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, shared.KindValidation, decodeError(t, rec).Error)
	})
}

func TestCompanyCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates and returns 201", func(t *testing.T) {
		t.Parallel()
		companies := &mocks.MockCompanyStore{
			CreateFn: func(ctx context.Context, company *domain.Company) error {
				assert.Equal(t, "Bedrock Builders", company.CompanyName)
				assert.NotEqual(t, uuid.Nil, company.ID)
				return nil
			},
		}
		h := newCompanyHandler(companies)

		body := jsonBody(t, map[string]any{
			"company_name":    "Bedrock Builders",
			"company_address": "1 Granite Way",
			"company_email":   "office@bedrock.example",
			"company_phone":   "+1-555-0100",
		})
		rec := httptest.NewRecorder()
		h.Create(rec, httptest.NewRequest("POST", "/api/companies", body))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, companies.CreateCalls)

		var got domain.Company
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.NotEqual(t, uuid.Nil, got.ID)
	})

	t.Run("missing field names the field and skips the store", func(t *testing.T) {
		t.Parallel()
		companies := &mocks.MockCompanyStore{}
		h := newCompanyHandler(companies)

		body := jsonBody(t, map[string]any{
			"company_address": "1 Granite Way",
			"company_email":   "office@bedrock.example",
			"company_phone":   "+1-555-0100",
		})
		rec := httptest.NewRecorder()
		h.Create(rec, httptest.NewRequest("POST", "/api/companies", body))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, companies.CreateCalls)

		resp := decodeError(t, rec)
		assert.Equal(t, shared.KindValidation, resp.Error)
		require.Len(t, resp.Fields, 1)
		assert.Equal(t, "company_name", resp.Fields[0].Field)
	})

	t.Run("malformed JSON is 400", func(t *testing.T) {
		t.Parallel()
		h := newCompanyHandler(&mocks.MockCompanyStore{})

		rec := httptest.NewRecorder()
		h.Create(rec, httptest.NewRequest("POST", "/api/companies", strings.NewReader("{not json")))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCompanyUpdate(t *testing.T) {
	t.Parallel()

	t.Run("partial update passes only provided fields", func(t *testing.T) {
		t.Parallel()
		company := testCompany()
		var gotPatch domain.CompanyPatch
		companies := &mocks.MockCompanyStore{
			UpdateFn: func(ctx context.Context, id uuid.UUID, patch domain.CompanyPatch) (*domain.Company, error) {
				gotPatch = patch
				company.CompanyPhone = *patch.CompanyPhone
				return company, nil
			},
		}
		h := newCompanyHandler(companies)

		body := jsonBody(t, map[string]any{"company_phone": "+1-555-0199"})
		rec := httptest.NewRecorder()
		r := newTestRequest(t, "PUT", "/api/companies/"+company.ID.String(), body,
			map[string]string{"company_id": company.ID.String()})
		h.Update(rec, r)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotPatch.CompanyPhone)
		assert.Equal(t, "+1-555-0199", *gotPatch.CompanyPhone)
		assert.Nil(t, gotPatch.CompanyName)
		assert.Nil(t, gotPatch.CompanyEmail)
		assert.Nil(t, gotPatch.IsVerified)
	})

	t.Run("unknown company is 404", func(t *testing.T) {
		t.Parallel()
		h := newCompanyHandler(&mocks.MockCompanyStore{})

		id := uuid.New().String()
		body := jsonBody(t, map[string]any{"company_phone": "+1-555-0199"})
		rec := httptest.NewRecorder()
		h.Update(rec, newTestRequest(t, "PUT", "/api/companies/"+id, body,
			map[string]string{"company_id": id}))

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid field value is 400", func(t *testing.T) {
		t.Parallel()
		companies := &mocks.MockCompanyStore{}
		h := newCompanyHandler(companies)

		id := uuid.New().String()
		body := jsonBody(t, map[string]any{"company_email": "not-an-email"})
		rec := httptest.NewRecorder()
		h.Update(rec, newTestRequest(t, "PUT", "/api/companies/"+id, body,
			map[string]string{"company_id": id}))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, companies.UpdateCalls)
	})
}

func TestCompanyDelete(t *testing.T) {
	t.Parallel()

	t.Run("delete then repeat delete", func(t *testing.T) {
		t.Parallel()
		deleted := false
		companies := &mocks.MockCompanyStore{
			DeleteFn: func(ctx context.Context, id uuid.UUID) error {
				if deleted {
					return store.ErrCompanyNotFound
				}
				deleted = true
				return nil
			},
		}
		h := newCompanyHandler(companies)
		id := uuid.New().String()

		rec := httptest.NewRecorder()
		h.Delete(rec, newTestRequest(t, "DELETE", "/api/companies/"+id, nil,
			map[string]string{"company_id": id}))
		require.Equal(t, http.StatusOK, rec.Code)

		var msg shared.MessageResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&msg))
		assert.Equal(t, "Company deleted successfully", msg.Message)

		rec = httptest.NewRecorder()
		h.Delete(rec, newTestRequest(t, "DELETE", "/api/companies/"+id, nil,
			map[string]string{"company_id": id}))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCompanySummary(t *testing.T) {
	t.Parallel()

	company := testCompany()
	companies := &mocks.MockCompanyStore{
		SummaryFn: func(ctx context.Context, id uuid.UUID) (*domain.CompanySummary, error) {
			return &domain.CompanySummary{
				Company: *company,
				Counts: domain.SummaryCounts{
					Services:         2,
					Projects:         3,
					ProjectsByStatus: map[string]int{"planned": 1, "completed": 2},
					Employees:        5,
				},
			}, nil
		},
	}
	h := newCompanyHandler(companies)

	rec := httptest.NewRecorder()
	r := newTestRequest(t, "GET", "/api/companies/"+company.ID.String()+"/summary", nil,
		map[string]string{"company_id": company.ID.String()})
	h.Summary(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.CompanySummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 5, got.Counts.Employees)
	assert.Equal(t, 2, got.Counts.ProjectsByStatus["completed"])
}
