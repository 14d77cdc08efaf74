package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osconstruct/construct-api/internal/api/shared"
	"github.com/osconstruct/construct-api/internal/domain"
)

func fieldNames(fields []shared.FieldError) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Field
	}
	return names
}

func TestCheckCreateCompanyRequest(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()
		req := &CreateCompanyRequest{
			CompanyName:    "Bedrock Builders",
			CompanyAddress: "1 Granite Way",
			CompanyEmail:   "office@bedrock.example",
			CompanyPhone:   "+1-555-0100",
		}
		assert.Nil(t, v.Check(req))
	})

	t.Run("enumerates every offending field", func(t *testing.T) {
		t.Parallel()
		req := &CreateCompanyRequest{
			CompanyEmail: "not-an-email",
			CompanyPhone: "123",
		}
		fields := v.Check(req)
		require.NotNil(t, fields)

		names := fieldNames(fields)
		assert.Contains(t, names, "company_name")
		assert.Contains(t, names, "company_address")
		assert.Contains(t, names, "company_email")
		assert.Contains(t, names, "company_phone")
	})

	t.Run("reports json field names", func(t *testing.T) {
		t.Parallel()
		fields := v.Check(&CreateCompanyRequest{})
		require.NotEmpty(t, fields)
		for _, f := range fields {
			assert.NotContains(t, f.Field, "Company", "field names must use json tags, got %q", f.Field)
		}
	})

	t.Run("founded_year outside range", func(t *testing.T) {
		t.Parallel()
		year := 1600
		req := &CreateCompanyRequest{
			CompanyName:    "Bedrock Builders",
			CompanyAddress: "1 Granite Way",
			CompanyEmail:   "office@bedrock.example",
			CompanyPhone:   "+1-555-0100",
			FoundedYear:    &year,
		}
		fields := v.Check(req)
		require.Len(t, fields, 1)
		assert.Equal(t, "founded_year", fields[0].Field)
	})

	t.Run("founded_year in the future", func(t *testing.T) {
		t.Parallel()
		year := time.Now().UTC().Year() + 1
		req := &CreateCompanyRequest{
			CompanyName:    "Bedrock Builders",
			CompanyAddress: "1 Granite Way",
			CompanyEmail:   "office@bedrock.example",
			CompanyPhone:   "+1-555-0100",
			FoundedYear:    &year,
		}
		fields := v.Check(req)
		require.Len(t, fields, 1)
		assert.Equal(t, "founded_year", fields[0].Field)
	})
}

func TestCheckUpdateCompanyRequest(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	t.Run("empty patch is valid", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, v.Check(&UpdateCompanyRequest{}))
	})

	t.Run("present fields still validated", func(t *testing.T) {
		t.Parallel()
		email := "nope"
		fields := v.Check(&UpdateCompanyRequest{CompanyEmail: &email})
		require.Len(t, fields, 1)
		assert.Equal(t, "company_email", fields[0].Field)
	})
}

func TestCheckCreateProjectRequest(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	t.Run("status must be a known value", func(t *testing.T) {
		t.Parallel()
		req := &CreateProjectRequest{
			ProjectName: "Harbor Bridge",
			Location:    "Dockside",
			Status:      "underway",
		}
		fields := v.Check(req)
		require.Len(t, fields, 1)
		assert.Equal(t, "status", fields[0].Field)
	})

	t.Run("absent status is valid", func(t *testing.T) {
		t.Parallel()
		req := &CreateProjectRequest{ProjectName: "Harbor Bridge", Location: "Dockside"}
		assert.Nil(t, v.Check(req))
	})

	t.Run("end date before start date", func(t *testing.T) {
		t.Parallel()
		start := domain.NewDate(2026, time.June, 1)
		end := domain.NewDate(2026, time.May, 1)
		req := &CreateProjectRequest{
			ProjectName: "Harbor Bridge",
			Location:    "Dockside",
			StartDate:   &start,
			EndDate:     &end,
		}
		fields := v.Check(req)
		require.Len(t, fields, 1)
		assert.Equal(t, "end_date", fields[0].Field)
	})
}

func TestCheckLoginRequest(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	fields := v.Check(&LoginRequest{})
	names := fieldNames(fields)
	assert.Contains(t, names, "username")
	assert.Contains(t, names, "password")

	assert.Nil(t, v.Check(&LoginRequest{Username: "inspector", Password: "hunter2hunter2"}))
}
