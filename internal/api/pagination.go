package api

import (
	"net/http"
	"strconv"

	"github.com/osconstruct/construct-api/internal/domain"
	"github.com/osconstruct/construct-api/internal/store"
)

// Pagination defaults and bounds.
const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 100
)

// PageParams are the sanitized pagination inputs for a list endpoint.
type PageParams struct {
	Page    int
	PerPage int
}

// Store converts the params to a limit/offset window.
func (p PageParams) Store() store.Page {
	return store.Page{Limit: p.PerPage, Offset: (p.Page - 1) * p.PerPage}
}

// Pagination is the metadata block of a paginated response envelope.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// PaginatedResponse is the envelope for all list endpoints.
type PaginatedResponse struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ParsePageParams extracts page and per_page from the query string.
// Out-of-range numeric values are clamped (page to >=1, per_page to
// [1,100]); non-numeric values are a validation failure.
func ParsePageParams(r *http.Request) (PageParams, error) {
	params := PageParams{Page: defaultPage, PerPage: defaultPerPage}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return PageParams{}, domain.NewValidationError("page", "must be a positive integer", domain.ErrValidation)
		}
		params.Page = max(1, page)
	}

	if raw := r.URL.Query().Get("per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			return PageParams{}, domain.NewValidationError("per_page", "must be a positive integer", domain.ErrValidation)
		}
		params.PerPage = max(1, min(maxPerPage, perPage))
	}

	return params, nil
}

// NewPaginatedResponse wraps one page of data with its metadata.
// pages is ceil(total/per_page), and zero when the filtered set is empty.
func NewPaginatedResponse(data any, params PageParams, total int) PaginatedResponse {
	pages := 0
	if total > 0 {
		pages = (total + params.PerPage - 1) / params.PerPage
	}
	return PaginatedResponse{
		Data: data,
		Pagination: Pagination{
			Page:    params.Page,
			PerPage: params.PerPage,
			Total:   total,
			Pages:   pages,
		},
	}
}
