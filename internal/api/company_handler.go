package api

import (
	"net/http"
	"strconv"

	"github.com/osconstruct/construct-api/internal/api/shared"
	"github.com/osconstruct/construct-api/internal/domain"
	"github.com/osconstruct/construct-api/internal/platform/logger"
	"github.com/osconstruct/construct-api/internal/store"
)

// CompanyHandler serves the company CRUD and summary endpoints.
type CompanyHandler struct {
	companies store.CompanyStore
	validator *Validator
}

// NewCompanyHandler creates a CompanyHandler with the given dependencies.
func NewCompanyHandler(companies store.CompanyStore, validator *Validator) *CompanyHandler {
	return &CompanyHandler{companies: companies, validator: validator}
}

// List handles GET /api/companies.
// Supports pagination plus optional is_verified and name filters; the
// pagination total reflects the filtered set.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := ParsePageParams(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	filter := store.CompanyFilter{Name: r.URL.Query().Get("name")}
	if raw := r.URL.Query().Get("is_verified"); raw != "" {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			HandleError(w, r, domain.NewValidationError("is_verified", "must be true or false", domain.ErrValidation))
			return
		}
		filter.IsVerified = &verified
	}

	companies, total, err := h.companies.List(r.Context(), filter, params.Store())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPaginatedResponse(companies, params, total))
}

// Get handles GET /api/companies/{company_id}.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "company_id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	company, err := h.companies.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, company)
}

// Create handles POST /api/companies.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}
	if fields := h.validator.Check(&req); fields != nil {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest,
			shared.KindValidation, "Invalid request data", fields)
		return
	}

	company := req.NewCompany()
	if err := h.companies.Create(r.Context(), company); err != nil {
		HandleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("company created", "company_id", company.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, company)
}

// Update handles PUT /api/companies/{company_id}.
// The update is partial: fields absent from the payload keep their
// stored values.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "company_id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	var req UpdateCompanyRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}
	if fields := h.validator.Check(&req); fields != nil {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest,
			shared.KindValidation, "Invalid request data", fields)
		return
	}

	company, err := h.companies.Update(r.Context(), id, req.Patch())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("company updated", "company_id", company.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, company)
}

// Delete handles DELETE /api/companies/{company_id}. Admin only; the
// router enforces the role check before this handler runs. Child
// records are removed by cascade, so a repeated delete is a 404.
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "company_id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if err := h.companies.Delete(r.Context(), id); err != nil {
		HandleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("company deleted", "company_id", id)
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Company deleted successfully",
	})
}

// Summary handles GET /api/companies/{company_id}/summary.
func (h *CompanyHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "company_id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	summary, err := h.companies.Summary(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}
