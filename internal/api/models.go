package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/osconstruct/construct-api/internal/api/shared"
	"github.com/osconstruct/construct-api/internal/domain"
)

// Request and response models for all endpoints. Create requests carry
// validator tags mirroring the database constraints; update requests use
// pointer fields so an absent field is distinguishable from a zero value
// and is left untouched in the target record.

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// Token is the signed session token used for API authorization.
	Token string `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires.
	ExpiresAt string `json:"expires_at"`

	// User identifies the authenticated account.
	User LoginUser `json:"user"`
}

// LoginUser is the account block inside a LoginResponse.
type LoginUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// HealthResponse reports store connectivity for monitoring.
type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// CreateCompanyRequest defines the payload for creating a company.
type CreateCompanyRequest struct {
	CompanyName    string  `json:"company_name"    validate:"required,min=1,max=255"`
	CompanyAddress string  `json:"company_address" validate:"required"`
	CompanyEmail   string  `json:"company_email"   validate:"required,email"`
	CompanyPhone   string  `json:"company_phone"   validate:"required,min=5,max=50"`
	Website        *string `json:"website"         validate:"omitempty,max=255"`
	Description    *string `json:"description"`
	FoundedYear    *int    `json:"founded_year"`
	IsVerified     bool    `json:"is_verified"`
}

// crossValidate enforces the founded-year range, which depends on the
// current year and so cannot be a static tag.
func (r *CreateCompanyRequest) crossValidate() []shared.FieldError {
	return foundedYearErrors(r.FoundedYear)
}

// NewCompany builds the domain entity with server-assigned ID and
// timestamps.
func (r *CreateCompanyRequest) NewCompany() *domain.Company {
	c := domain.NewCompany()
	c.CompanyName = r.CompanyName
	c.CompanyAddress = r.CompanyAddress
	c.CompanyEmail = r.CompanyEmail
	c.CompanyPhone = r.CompanyPhone
	c.Website = r.Website
	c.Description = r.Description
	c.FoundedYear = r.FoundedYear
	c.IsVerified = r.IsVerified
	return c
}

// UpdateCompanyRequest defines the payload for a partial company update.
// Every field is optional, but any field present must pass the same
// checks as in create.
type UpdateCompanyRequest struct {
	CompanyName    *string `json:"company_name"    validate:"omitempty,min=1,max=255"`
	CompanyAddress *string `json:"company_address" validate:"omitempty,min=1"`
	CompanyEmail   *string `json:"company_email"   validate:"omitempty,email"`
	CompanyPhone   *string `json:"company_phone"   validate:"omitempty,min=5,max=50"`
	Website        *string `json:"website"         validate:"omitempty,max=255"`
	Description    *string `json:"description"`
	FoundedYear    *int    `json:"founded_year"`
	IsVerified     *bool   `json:"is_verified"`
}

func (r *UpdateCompanyRequest) crossValidate() []shared.FieldError {
	return foundedYearErrors(r.FoundedYear)
}

// Patch converts the request into the partial-update form the store
// applies; nil fields stay untouched.
func (r *UpdateCompanyRequest) Patch() domain.CompanyPatch {
	return domain.CompanyPatch{
		CompanyName:    r.CompanyName,
		CompanyAddress: r.CompanyAddress,
		CompanyEmail:   r.CompanyEmail,
		CompanyPhone:   r.CompanyPhone,
		Website:        r.Website,
		Description:    r.Description,
		FoundedYear:    r.FoundedYear,
		IsVerified:     r.IsVerified,
	}
}

// CreateServiceRequest defines the payload for adding a service to a
// company. is_free defaults to true when absent.
type CreateServiceRequest struct {
	ServiceName         string  `json:"service_name" validate:"required,min=1,max=255"`
	Description         *string `json:"description"`
	IsFree              *bool   `json:"is_free"`
	EligibilityCriteria *string `json:"eligibility_criteria"`
}

// NewService builds the domain entity under the given company.
func (r *CreateServiceRequest) NewService(companyID uuid.UUID) *domain.Service {
	svc := domain.NewService(companyID)
	svc.ServiceName = r.ServiceName
	svc.Description = r.Description
	svc.IsFree = r.IsFree == nil || *r.IsFree
	svc.EligibilityCriteria = r.EligibilityCriteria
	return svc
}

// CreateProjectRequest defines the payload for adding a project to a
// company. Status defaults to "planned" when absent.
type CreateProjectRequest struct {
	ProjectName     string       `json:"project_name" validate:"required,min=1,max=255"`
	Location        string       `json:"location"     validate:"required"`
	StartDate       *domain.Date `json:"start_date"`
	EndDate         *domain.Date `json:"end_date"`
	Status          string       `json:"status"       validate:"omitempty,oneof=planned in_progress completed cancelled on_hold"`
	Description     *string      `json:"description"`
	BeneficiaryInfo *string      `json:"beneficiary_info"`
}

// crossValidate enforces end_date >= start_date when both are present.
func (r *CreateProjectRequest) crossValidate() []shared.FieldError {
	if err := domain.ValidateDateOrder(r.StartDate, r.EndDate); err != nil {
		return []shared.FieldError{{Field: "end_date", Message: "must not be before start_date"}}
	}
	return nil
}

// NewProject builds the domain entity under the given company.
func (r *CreateProjectRequest) NewProject(companyID uuid.UUID) *domain.Project {
	p := domain.NewProject(companyID)
	p.ProjectName = r.ProjectName
	p.Location = r.Location
	p.StartDate = r.StartDate
	p.EndDate = r.EndDate
	if r.Status != "" {
		p.Status = domain.ProjectStatus(r.Status)
	}
	p.Description = r.Description
	p.BeneficiaryInfo = r.BeneficiaryInfo
	return p
}

// CreateEmployeeRequest defines the payload for adding an employee to a
// company.
type CreateEmployeeRequest struct {
	FullName       string       `json:"full_name" validate:"required,min=1,max=255"`
	Position       string       `json:"position"  validate:"required,min=1,max=100"`
	Email          *string      `json:"email"     validate:"omitempty,email"`
	Phone          *string      `json:"phone"     validate:"omitempty,max=50"`
	Specialization *string      `json:"specialization" validate:"omitempty,max=100"`
	JoinDate       *domain.Date `json:"join_date"`
}

// NewEmployee builds the domain entity under the given company.
func (r *CreateEmployeeRequest) NewEmployee(companyID uuid.UUID) *domain.Employee {
	e := domain.NewEmployee(companyID)
	e.FullName = r.FullName
	e.Position = r.Position
	e.Email = r.Email
	e.Phone = r.Phone
	e.Specialization = r.Specialization
	e.JoinDate = r.JoinDate
	return e
}

// TransferEmployeeRequest defines the payload for moving an employee
// between companies.
type TransferEmployeeRequest struct {
	FromCompanyID uuid.UUID `json:"from_company_id" validate:"required"`
	ToCompanyID   uuid.UUID `json:"to_company_id"   validate:"required"`
}

// foundedYearErrors checks the [1800, current year] invariant shared by
// company create and update payloads.
func foundedYearErrors(year *int) []shared.FieldError {
	if err := domain.ValidateFoundedYear(year, time.Now().UTC()); err != nil {
		return []shared.FieldError{{
			Field:   "founded_year",
			Message: "must be between 1800 and the current year",
		}}
	}
	return nil
}
