package usecase

import (
	"testing"

	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestValidate_CreatePatientInput(t *testing.T) {
	tests := []struct {
		name    string
		input   CreatePatientInput
		wantErr string
	}{
		{name: "age zero and other gender", input: CreatePatientInput{Name: "Baby", Age: intPtr(0), Gender: "O"}},
		{name: "negative age", input: CreatePatientInput{Name: "A", Age: intPtr(-1), Gender: "M"}, wantErr: "age must be at least 0"},
		{name: "unknown gender", input: CreatePatientInput{Name: "A", Age: intPtr(3), Gender: "X"}, wantErr: "gender must be one of M F O"},
		{name: "missing age", input: CreatePatientInput{Name: "A", Gender: "F"}, wantErr: "age is required"},
		{name: "missing name", input: CreatePatientInput{Age: intPtr(3), Gender: "F"}, wantErr: "name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_AddVisitInput(t *testing.T) {
	assert.NoError(t, Validate(&AddVisitInput{Diagnosis: "flu", MedicinePrescribed: "rest"}))
	assert.NoError(t, Validate(&AddVisitInput{Diagnosis: "flu", MedicinePrescribed: "rest", NextVisitDate: "2025-02-01"}))

	err := Validate(&AddVisitInput{Diagnosis: "flu", MedicinePrescribed: "rest", NextVisitDate: "01/02/2025"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "next_visit_date must be a date")
}

func TestValidate_RegisterInput(t *testing.T) {
	valid := RegisterInput{Username: "alice.m", Password1: "pw", Password2: "pw", Role: "manager"}
	assert.NoError(t, Validate(&valid))

	badName := valid
	badName.Username = "alice smith"
	assert.ErrorContains(t, Validate(&badName), "username may contain only")

	badRole := valid
	badRole.Role = "admin"
	assert.ErrorContains(t, Validate(&badRole), "role must be one of")

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.ErrorContains(t, Validate(&badEmail), "email must be a valid email")
}

func TestValidate_NormalizesBeforeChecking(t *testing.T) {
	patient := CreatePatientInput{Name: "  Bob ", Age: intPtr(30), Gender: " m "}
	require.NoError(t, Validate(&patient))
	assert.Equal(t, "Bob", patient.Name)
	assert.Equal(t, "M", patient.Gender)

	register := RegisterInput{Username: " alice ", Password1: "pw", Password2: "pw", Role: "Doctor"}
	require.NoError(t, Validate(&register))
	assert.Equal(t, "alice", register.Username)
	assert.Equal(t, "doctor", register.Role)

	profile := CompleteProfileInput{Role: " MANAGER "}
	require.NoError(t, Validate(&profile))
	assert.Equal(t, "manager", profile.Role)

	visit := AddVisitInput{Diagnosis: "   ", MedicinePrescribed: "rest", NextVisitDate: " 2025-02-01 "}
	assert.ErrorContains(t, Validate(&visit), "diagnosis is required")
	assert.Equal(t, "2025-02-01", visit.NextVisitDate)
}
