package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osconstruct/construct-api/internal/domain"
	"github.com/osconstruct/construct-api/internal/mocks"
	"github.com/osconstruct/construct-api/internal/store"
)

func TestEmployeeCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates under the company", func(t *testing.T) {
		t.Parallel()
		companyID := uuid.New()
		var created *domain.Employee
		employees := &mocks.MockEmployeeStore{
			CreateFn: func(ctx context.Context, employee *domain.Employee) error {
				created = employee
				return nil
			},
		}
		h := NewEmployeeHandler(existingCompany(companyID), employees, NewValidator())

		body := jsonBody(t, map[string]any{
			"full_name": "Rosa Vega",
			"position":  "Site Engineer",
			"join_date": "2025-11-01",
		})
		rec := httptest.NewRecorder()
		h.Create(rec, newTestRequest(t, "POST", "/api/companies/"+companyID.String()+"/employees", body,
			map[string]string{"company_id": companyID.String()}))

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, created)
		assert.Equal(t, companyID, created.CompanyID)
		assert.Equal(t, "Rosa Vega", created.FullName)
		require.NotNil(t, created.JoinDate)
		assert.Equal(t, "2025-11-01", created.JoinDate.String())
	})

	t.Run("missing position names the field", func(t *testing.T) {
		t.Parallel()
		companyID := uuid.New()
		employees := &mocks.MockEmployeeStore{}
		h := NewEmployeeHandler(existingCompany(companyID), employees, NewValidator())

		body := jsonBody(t, map[string]any{"full_name": "Rosa Vega"})
		rec := httptest.NewRecorder()
		h.Create(rec, newTestRequest(t, "POST", "/api/companies/"+companyID.String()+"/employees", body,
			map[string]string{"company_id": companyID.String()}))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		require.Len(t, resp.Fields, 1)
		assert.Equal(t, "position", resp.Fields[0].Field)
		assert.Equal(t, 0, employees.CreateCalls)
	})

	t.Run("unknown company is 404", func(t *testing.T) {
		t.Parallel()
		employees := &mocks.MockEmployeeStore{}
		h := NewEmployeeHandler(existingCompany(uuid.New()), employees, NewValidator())

		id := uuid.New().String()
		body := jsonBody(t, map[string]any{"full_name": "Rosa Vega", "position": "Site Engineer"})
		rec := httptest.NewRecorder()
		h.Create(rec, newTestRequest(t, "POST", "/api/companies/"+id+"/employees", body,
			map[string]string{"company_id": id}))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, 0, employees.CreateCalls)
	})
}

func TestEmployeeTransfer(t *testing.T) {
	t.Parallel()

	employeeID := uuid.New()
	fromID := uuid.New()
	toID := uuid.New()

	t.Run("moves the employee", func(t *testing.T) {
		t.Parallel()
		employees := &mocks.MockEmployeeStore{
			TransferFn: func(ctx context.Context, gotEmployee, gotFrom, gotTo uuid.UUID) (*domain.Employee, error) {
				assert.Equal(t, employeeID, gotEmployee)
				assert.Equal(t, fromID, gotFrom)
				assert.Equal(t, toID, gotTo)

				e := domain.NewEmployee(gotTo)
				e.ID = gotEmployee
				e.FullName = "Rosa Vega"
				e.Position = "Site Engineer"
				return e, nil
			},
		}
		h := NewEmployeeHandler(&mocks.MockCompanyStore{}, employees, NewValidator())

		body := jsonBody(t, map[string]any{
			"from_company_id": fromID.String(),
			"to_company_id":   toID.String(),
		})
		rec := httptest.NewRecorder()
		h.Transfer(rec, newTestRequest(t, "POST", "/api/employees/"+employeeID.String()+"/transfer", body,
			map[string]string{"employee_id": employeeID.String()}))

		require.Equal(t, http.StatusOK, rec.Code)
		var got domain.Employee
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, toID, got.CompanyID)
	})

	t.Run("employee missing from source company is 404", func(t *testing.T) {
		t.Parallel()
		employees := &mocks.MockEmployeeStore{
			TransferFn: func(ctx context.Context, _, _, _ uuid.UUID) (*domain.Employee, error) {
				return nil, store.ErrEmployeeNotFound
			},
		}
		h := NewEmployeeHandler(&mocks.MockCompanyStore{}, employees, NewValidator())

		body := jsonBody(t, map[string]any{
			"from_company_id": fromID.String(),
			"to_company_id":   toID.String(),
		})
		rec := httptest.NewRecorder()
		h.Transfer(rec, newTestRequest(t, "POST", "/api/employees/"+employeeID.String()+"/transfer", body,
			map[string]string{"employee_id": employeeID.String()}))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Employee not found", decodeError(t, rec).Message)
	})

	t.Run("missing company ids is 400", func(t *testing.T) {
		t.Parallel()
		employees := &mocks.MockEmployeeStore{}
		h := NewEmployeeHandler(&mocks.MockCompanyStore{}, employees, NewValidator())

		body := jsonBody(t, map[string]any{})
		rec := httptest.NewRecorder()
		h.Transfer(rec, newTestRequest(t, "POST", "/api/employees/"+employeeID.String()+"/transfer", body,
			map[string]string{"employee_id": employeeID.String()}))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, employees.TransferCalls)
	})
}
