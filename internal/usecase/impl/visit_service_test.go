package impl

import (
	"context"
	"testing"
	"time"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	mockRepo "clinic/internal/mocks/repository"
	mockUsecase "clinic/internal/mocks/usecase"
	"clinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// visitServiceFixtures holds all test dependencies for visit service tests.
type visitServiceFixtures struct {
	service   *visitService
	gate      *mockUsecase.MockAccessGate
	patients  *mockUsecase.MockPatientUsecase
	visitRepo *mockRepo.MockVisitRepository
	now       time.Time
}

func createTestVisitService(t *testing.T) visitServiceFixtures {
	gate := mockUsecase.NewMockAccessGate(t)
	patients := mockUsecase.NewMockPatientUsecase(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)
	now := time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC)

	service, ok := NewVisitService(VisitServiceParams{
		Gate:      gate,
		Patients:  patients,
		VisitRepo: visitRepo,
		Logger:    newDiscardLogger(),
	}).(*visitService)
	require.True(t, ok)
	service.now = func() time.Time { return now }

	return visitServiceFixtures{
		service:   service,
		gate:      gate,
		patients:  patients,
		visitRepo: visitRepo,
		now:       now,
	}
}

func TestVisitService_AddVisit_Success(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	doctor := newPrincipal(entity.RoleDoctor)
	patient := &entity.Patient{ID: uuid.New(), Name: "John"}

	fx.gate.EXPECT().Authorize(ctx, entity.RoleDoctor, entity.OpCreateVisit).Return(nil)
	fx.patients.EXPECT().GetAny(ctx, patient.ID).Return(patient, nil)
	fx.visitRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)

	visit, err := fx.service.AddVisit(ctx, doctor, patient.ID, &usecase.AddVisitInput{
		Diagnosis:          " flu ",
		MedicinePrescribed: "rest\n",
		Notes:              "",
		NextVisitDate:      "2025-03-11",
	})

	require.NoError(t, err)
	assert.Equal(t, patient.ID, visit.PatientID)
	assert.Equal(t, doctor.UserID, visit.DoctorID)
	assert.Equal(t, fx.now, visit.VisitDate)
	assert.Equal(t, "flu", visit.Diagnosis)
	assert.Equal(t, "rest", visit.MedicinePrescribed)
	assert.Nil(t, visit.Notes)
	require.NotNil(t, visit.NextVisitDate)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), *visit.NextVisitDate)
}

func TestVisitService_AddVisit_EmptyNextVisitDate(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	doctor := newPrincipal(entity.RoleDoctor)
	patient := &entity.Patient{ID: uuid.New()}

	fx.gate.EXPECT().Authorize(ctx, entity.RoleDoctor, entity.OpCreateVisit).Return(nil)
	fx.patients.EXPECT().GetAny(ctx, patient.ID).Return(patient, nil)
	fx.visitRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)

	visit, err := fx.service.AddVisit(ctx, doctor, patient.ID, &usecase.AddVisitInput{
		Diagnosis: "cold", MedicinePrescribed: "tea", Notes: "follow up", NextVisitDate: "  ",
	})

	require.NoError(t, err)
	assert.Nil(t, visit.NextVisitDate)
	require.NotNil(t, visit.Notes)
	assert.Equal(t, "follow up", *visit.Notes)
}

func TestVisitService_AddVisit_Rejections(t *testing.T) {
	ctx := context.Background()
	doctor := newPrincipal(entity.RoleDoctor)

	tests := []struct {
		name  string
		input usecase.AddVisitInput
	}{
		{name: "blank diagnosis", input: usecase.AddVisitInput{Diagnosis: "   ", MedicinePrescribed: "m"}},
		{name: "blank medicine", input: usecase.AddVisitInput{Diagnosis: "d", MedicinePrescribed: ""}},
		{name: "malformed date", input: usecase.AddVisitInput{Diagnosis: "d", MedicinePrescribed: "m", NextVisitDate: "2025-13-40"}},
		{name: "not a date", input: usecase.AddVisitInput{Diagnosis: "d", MedicinePrescribed: "m", NextVisitDate: "next week"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVisitService(t)
			fx.gate.EXPECT().Authorize(ctx, entity.RoleDoctor, entity.OpCreateVisit).Return(nil)

			_, err := fx.service.AddVisit(ctx, doctor, uuid.New(), &tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestVisitService_AddVisit_PatientMissing(t *testing.T) {
	ctx := context.Background()
	doctor := newPrincipal(entity.RoleDoctor)
	patientID := uuid.New()
	input := &usecase.AddVisitInput{Diagnosis: "d", MedicinePrescribed: "m"}

	t.Run("absent before insert", func(t *testing.T) {
		fx := createTestVisitService(t)
		fx.gate.EXPECT().Authorize(ctx, entity.RoleDoctor, entity.OpCreateVisit).Return(nil)
		fx.patients.EXPECT().GetAny(ctx, patientID).Return(nil, domainerrors.ErrPatientNotFound)

		_, err := fx.service.AddVisit(ctx, doctor, patientID, input)
		assert.True(t, errors.Is(err, domainerrors.ErrPatientNotFound))
	})

	t.Run("deleted during insert", func(t *testing.T) {
		fx := createTestVisitService(t)
		fx.gate.EXPECT().Authorize(ctx, entity.RoleDoctor, entity.OpCreateVisit).Return(nil)
		fx.patients.EXPECT().GetAny(ctx, patientID).Return(&entity.Patient{ID: patientID}, nil)
		fx.visitRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Visit")).Return(repository.ErrPatientNotFound)

		_, err := fx.service.AddVisit(ctx, doctor, patientID, input)
		assert.True(t, errors.Is(err, domainerrors.ErrPatientNotFound))
	})
}

func TestVisitService_HistoryFor(t *testing.T) {
	ctx := context.Background()
	doctor := newPrincipal(entity.RoleDoctor)
	patientID := uuid.New()

	t.Run("returns visits newest first", func(t *testing.T) {
		fx := createTestVisitService(t)
		visits := []*entity.Visit{
			{ID: uuid.New(), VisitDate: fx.now},
			{ID: uuid.New(), VisitDate: fx.now.Add(-24 * time.Hour)},
		}
		fx.gate.EXPECT().Authorize(ctx, entity.RoleDoctor, entity.OpViewPatientHistory).Return(nil)
		fx.patients.EXPECT().GetAny(ctx, patientID).Return(&entity.Patient{ID: patientID}, nil)
		fx.visitRepo.EXPECT().ListByPatient(ctx, patientID).Return(visits, nil)

		got, err := fx.service.HistoryFor(ctx, doctor, patientID)

		require.NoError(t, err)
		require.Len(t, got, 2)
		for i := 1; i < len(got); i++ {
			assert.False(t, got[i].VisitDate.After(got[i-1].VisitDate))
		}
	})

	t.Run("unknown patient", func(t *testing.T) {
		fx := createTestVisitService(t)
		fx.gate.EXPECT().Authorize(ctx, entity.RoleDoctor, entity.OpViewPatientHistory).Return(nil)
		fx.patients.EXPECT().GetAny(ctx, patientID).Return(nil, domainerrors.ErrPatientNotFound)

		_, err := fx.service.HistoryFor(ctx, doctor, patientID)
		assert.True(t, errors.Is(err, domainerrors.ErrPatientNotFound))
	})

	t.Run("manager is forbidden", func(t *testing.T) {
		fx := createTestVisitService(t)
		manager := newPrincipal(entity.RoleManager)
		fx.gate.EXPECT().Authorize(ctx, entity.RoleManager, entity.OpViewPatientHistory).Return(domainerrors.ErrForbidden)

		_, err := fx.service.HistoryFor(ctx, manager, patientID)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestVisitService_RecentFor_Limit(t *testing.T) {
	ctx := context.Background()
	doctor := newPrincipal(entity.RoleDoctor)

	tests := []struct {
		requested int
		want      int
	}{
		{requested: 0, want: usecase.DefaultRecentVisits},
		{requested: -3, want: usecase.DefaultRecentVisits},
		{requested: 5, want: 5},
		{requested: 1000, want: usecase.MaxRecentVisits},
	}

	for _, tt := range tests {
		fx := createTestVisitService(t)
		fx.gate.EXPECT().Authorize(ctx, entity.RoleDoctor, entity.OpViewOwnVisits).Return(nil)
		fx.visitRepo.EXPECT().ListRecentByDoctor(ctx, doctor.UserID, tt.want).Return([]*entity.Visit{}, nil)

		_, err := fx.service.RecentFor(ctx, doctor, tt.requested)
		require.NoError(t, err)
	}
}
