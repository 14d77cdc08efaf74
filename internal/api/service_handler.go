package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/osconstruct/construct-api/internal/api/shared"
	"github.com/osconstruct/construct-api/internal/platform/logger"
	"github.com/osconstruct/construct-api/internal/store"
)

// ServiceHandler serves the per-company service endpoints.
type ServiceHandler struct {
	companies store.CompanyStore
	services  store.ServiceStore
	validator *Validator
}

// NewServiceHandler creates a ServiceHandler with the given dependencies.
func NewServiceHandler(companies store.CompanyStore, services store.ServiceStore, validator *Validator) *ServiceHandler {
	return &ServiceHandler{companies: companies, services: services, validator: validator}
}

// List handles GET /api/companies/{company_id}/services.
// An unknown company is a 404, never an empty page.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
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

	services, total, err := h.services.ListByCompany(r.Context(), companyID, params.Store())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPaginatedResponse(services, params, total))
}

// Create handles POST /api/companies/{company_id}/services.
// The parent check runs before the payload is read, so an unknown
// company is a 404 regardless of payload validity.
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathUUID(r, "company_id")
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if err := requireCompany(r, h.companies, companyID); err != nil {
		HandleError(w, r, err)
		return
	}

	var req CreateServiceRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}
	if fields := h.validator.Check(&req); fields != nil {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest,
			shared.KindValidation, "Invalid request data", fields)
		return
	}

	service := req.NewService(companyID)
	if err := h.services.Create(r.Context(), service); err != nil {
		HandleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("service created",
		"service_id", service.ID, "company_id", companyID)
	shared.RespondWithJSON(w, r, http.StatusCreated, service)
}

// requireCompany verifies the parent company exists, returning
// ErrCompanyNotFound when it does not. Shared by every child-resource
// handler so the parent check always precedes payload handling.
func requireCompany(r *http.Request, companies store.CompanyStore, companyID uuid.UUID) error {
	exists, err := companies.Exists(r.Context(), companyID)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrCompanyNotFound
	}
	return nil
}
