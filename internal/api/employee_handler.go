package api

import (
	"net/http"

	"github.com/osconstruct/construct-api/internal/api/shared"
	"github.com/osconstruct/construct-api/internal/platform/logger"
	"github.com/osconstruct/construct-api/internal/store"
)

// EmployeeHandler serves the per-company employee endpoints and the
// cross-company transfer operation.
type EmployeeHandler struct {
	companies store.CompanyStore
	employees store.EmployeeStore
	validator *Validator
}

// NewEmployeeHandler creates an EmployeeHandler with the given dependencies.
func NewEmployeeHandler(companies store.CompanyStore, employees store.EmployeeStore, validator *Validator) *EmployeeHandler {
	return &EmployeeHandler{companies: companies, employees: employees, validator: validator}
}

// List handles GET /api/companies/{company_id}/employees.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathUUID(r, "company_id")
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if err := requireCompany(r, h.companies, companyID); err != nil {
		HandleError(w, r, err)
		return
	}

	params, err := ParsePageParams(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	employees, total, err := h.employees.ListByCompany(r.Context(), companyID, params.Store())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPaginatedResponse(employees, params, total))
}

// Create handles POST /api/companies/{company_id}/employees.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathUUID(r, "company_id")
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if err := requireCompany(r, h.companies, companyID); err != nil {
		HandleError(w, r, err)
		return
	}

	var req CreateEmployeeRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}
	if fields := h.validator.Check(&req); fields != nil {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest,
			shared.KindValidation, "Invalid request data", fields)
		return
	}

	employee := req.NewEmployee(companyID)
	if err := h.employees.Create(r.Context(), employee); err != nil {
		HandleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("employee created",
		"employee_id", employee.ID, "company_id", companyID)
	shared.RespondWithJSON(w, r, http.StatusCreated, employee)
}

// Transfer handles POST /api/employees/{employee_id}/transfer.
// The move is transactional: either the employee ends up at the
// destination company or nothing changes.
func (h *EmployeeHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathUUID(r, "employee_id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	var req TransferEmployeeRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}
	if fields := h.validator.Check(&req); fields != nil {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest,
			shared.KindValidation, "Invalid request data", fields)
		return
	}

	employee, err := h.employees.Transfer(r.Context(), employeeID, req.FromCompanyID, req.ToCompanyID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("employee transferred",
		"employee_id", employee.ID,
		"from_company_id", req.FromCompanyID,
		"to_company_id", req.ToCompanyID)
	shared.RespondWithJSON(w, r, http.StatusOK, employee)
}
