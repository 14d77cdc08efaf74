package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectStatusValid(t *testing.T) {
	t.Parallel()

	for _, s := range []ProjectStatus{StatusPlanned, StatusInProgress, StatusCompleted, StatusCancelled, StatusOnHold} {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}

	for _, s := range []ProjectStatus{"", "active", "PLANNED", "in progress"} {
		assert.False(t, s.Valid(), "status %q should be invalid", s)
	}
}

func TestNewProjectDefaultsToPlanned(t *testing.T) {
	t.Parallel()

	companyID := uuid.New()
	p := NewProject(companyID)
	assert.Equal(t, StatusPlanned, p.Status)
	assert.Equal(t, companyID, p.CompanyID)
}

func TestValidateDateOrder(t *testing.T) {
	t.Parallel()

	jan := NewDate(2026, time.January, 10)
	feb := NewDate(2026, time.February, 10)

	tests := []struct {
		name    string
		start   *Date
		end     *Date
		wantErr error
	}{
		{name: "both nil", start: nil, end: nil},
		{name: "start only", start: &jan, end: nil},
		{name: "end only", start: nil, end: &feb},
		{name: "end after start", start: &jan, end: &feb},
		{name: "same day", start: &jan, end: &jan},
		{name: "end before start", start: &feb, end: &jan, wantErr: ErrDateOrder},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateDateOrder(tc.start, tc.end)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
