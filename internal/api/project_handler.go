package api

import (
	"net/http"

	"github.com/osconstruct/construct-api/internal/api/shared"
	"github.com/osconstruct/construct-api/internal/domain"
	"github.com/osconstruct/construct-api/internal/platform/logger"
	"github.com/osconstruct/construct-api/internal/store"
)

// ProjectHandler serves the per-company project endpoints.
type ProjectHandler struct {
	companies store.CompanyStore
	projects  store.ProjectStore
	validator *Validator
}

// NewProjectHandler creates a ProjectHandler with the given dependencies.
func NewProjectHandler(companies store.CompanyStore, projects store.ProjectStore, validator *Validator) *ProjectHandler {
	return &ProjectHandler{companies: companies, projects: projects, validator: validator}
}

// List handles GET /api/companies/{company_id}/projects.
// Supports an optional status filter; an unrecognized status is a 400.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
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

	var filter store.ProjectFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.ProjectStatus(raw)
		if !status.Valid() {
			HandleError(w, r, domain.NewValidationError("status", "is not a recognized project status", domain.ErrInvalidStatus))
			return
		}
		filter.Status = &status
	}

	projects, total, err := h.projects.ListByCompany(r.Context(), companyID, filter, params.Store())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPaginatedResponse(projects, params, total))
}

// Create handles POST /api/companies/{company_id}/projects.
// The parent check runs first; the date-order check fails the request
// before any write is attempted.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathUUID(r, "company_id")
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if err := requireCompany(r, h.companies, companyID); err != nil {
		HandleError(w, r, err)
		return
	}

	var req CreateProjectRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}
	if fields := h.validator.Check(&req); fields != nil {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest,
			shared.KindValidation, "Invalid request data", fields)
		return
	}

	project := req.NewProject(companyID)
	if err := h.projects.Create(r.Context(), project); err != nil {
		HandleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("project created",
		"project_id", project.ID, "company_id", companyID)
	shared.RespondWithJSON(w, r, http.StatusCreated, project)
}
