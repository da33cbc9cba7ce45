package impl

import (
	"context"
	"testing"
	"time"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	mockRepo "clinic/internal/mocks/repository"
	mockService "clinic/internal/mocks/service"
	mockUsecase "clinic/internal/mocks/usecase"
	"clinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// patientServiceFixtures holds all test dependencies for patient service tests.
type patientServiceFixtures struct {
	service     usecase.PatientUsecase
	gate        *mockUsecase.MockAccessGate
	patientRepo *mockRepo.MockPatientRepository
	visitRepo   *mockRepo.MockVisitRepository
	phones      *mockService.MockPhoneNormalizer
}

func createTestPatientService(t *testing.T) patientServiceFixtures {
	gate := mockUsecase.NewMockAccessGate(t)
	patientRepo := mockRepo.NewMockPatientRepository(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)
	phones := mockService.NewMockPhoneNormalizer(t)

	service := NewPatientService(PatientServiceParams{
		Gate:        gate,
		PatientRepo: patientRepo,
		VisitRepo:   visitRepo,
		Phones:      phones,
		Logger:      newDiscardLogger(),
	})

	return patientServiceFixtures{
		service:     service,
		gate:        gate,
		patientRepo: patientRepo,
		visitRepo:   visitRepo,
		phones:      phones,
	}
}

func (f patientServiceFixtures) allow(ctx context.Context, role entity.Role, op entity.Operation) {
	f.gate.EXPECT().Authorize(ctx, role, op).Return(nil)
}

func TestPatientService_CreatePatient_Success(t *testing.T) {
	fx := createTestPatientService(t)

	ctx := context.Background()
	manager := newPrincipal(entity.RoleManager)
	input := &usecase.CreatePatientInput{
		Name:    "  John Doe ",
		Age:     intPtr(40),
		Gender:  "m",
		Phone:   "650-253-0000",
		Address: "1 Main St",
	}

	fx.allow(ctx, entity.RoleManager, entity.OpCreatePatient)
	fx.phones.EXPECT().Normalize("650-253-0000").Return("+16502530000", nil)
	fx.patientRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Patient) bool {
			return p.Name == "John Doe" && p.CreatedBy == manager.UserID && p.Gender == entity.GenderMale
		})).
		Run(func(_ context.Context, p *entity.Patient) { p.ID = uuid.New() }).
		Return(nil)

	patient, err := fx.service.CreatePatient(ctx, manager, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, patient.ID)
	assert.Equal(t, 40, patient.Age)
	require.NotNil(t, patient.Phone)
	assert.Equal(t, "+16502530000", *patient.Phone)
	require.NotNil(t, patient.Address)
	assert.Equal(t, "1 Main St", *patient.Address)
}

func TestPatientService_CreatePatient_Validation(t *testing.T) {
	ctx := context.Background()
	manager := newPrincipal(entity.RoleManager)

	tests := []struct {
		name   string
		age    *int
		gender string
		valid  bool
	}{
		{name: "age zero, gender other", age: intPtr(0), gender: "O", valid: true},
		{name: "negative age", age: intPtr(-1), gender: "F"},
		{name: "unknown gender", age: intPtr(30), gender: "X"},
		{name: "missing age", gender: "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPatientService(t)
			fx.allow(ctx, entity.RoleManager, entity.OpCreatePatient)
			if tt.valid {
				fx.patientRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Patient")).Return(nil)
			}

			patient, err := fx.service.CreatePatient(ctx, manager, &usecase.CreatePatientInput{Name: "P", Age: tt.age, Gender: tt.gender})
			if tt.valid {
				require.NoError(t, err)
				assert.Nil(t, patient.Phone)
				assert.Nil(t, patient.Address)

				return
			}

			assert.Nil(t, patient)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestPatientService_CreatePatient_InvalidPhone(t *testing.T) {
	fx := createTestPatientService(t)

	ctx := context.Background()
	manager := newPrincipal(entity.RoleManager)

	fx.allow(ctx, entity.RoleManager, entity.OpCreatePatient)
	fx.phones.EXPECT().Normalize("12").Return("", errors.New("too short"))

	_, err := fx.service.CreatePatient(ctx, manager, &usecase.CreatePatientInput{Name: "P", Age: intPtr(3), Gender: "F", Phone: "12"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "phone")
}

func TestPatientService_CreatePatient_Forbidden(t *testing.T) {
	fx := createTestPatientService(t)

	ctx := context.Background()
	doctor := newPrincipal(entity.RoleDoctor)

	fx.gate.EXPECT().Authorize(ctx, entity.RoleDoctor, entity.OpCreatePatient).Return(domainerrors.ErrForbidden)

	_, err := fx.service.CreatePatient(ctx, doctor, &usecase.CreatePatientInput{Name: "P", Age: intPtr(3), Gender: "F"})

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPatientService_GetOwned(t *testing.T) {
	ctx := context.Background()
	owner := newPrincipal(entity.RoleManager)
	other := newPrincipal(entity.RoleManager)
	patientID := uuid.New()
	patient := &entity.Patient{ID: patientID, Name: "John", CreatedBy: owner.UserID}
	now := time.Now()
	visits := []*entity.Visit{
		{ID: uuid.New(), PatientID: patientID, VisitDate: now},
		{ID: uuid.New(), PatientID: patientID, VisitDate: now.Add(-time.Hour)},
	}

	t.Run("owner sees detail with visits", func(t *testing.T) {
		fx := createTestPatientService(t)
		fx.allow(ctx, entity.RoleManager, entity.OpViewOwnPatientDetail)
		fx.patientRepo.EXPECT().FindOwned(ctx, owner.UserID, patientID).Return(patient, nil)
		fx.visitRepo.EXPECT().ListByPatient(ctx, patientID).Return(visits, nil)

		detail, err := fx.service.GetOwned(ctx, owner, patientID)

		require.NoError(t, err)
		assert.Equal(t, patient, detail.Patient)
		assert.Equal(t, visits, detail.Visits)
	})

	t.Run("another manager gets not found", func(t *testing.T) {
		fx := createTestPatientService(t)
		fx.allow(ctx, entity.RoleManager, entity.OpViewOwnPatientDetail)
		fx.patientRepo.EXPECT().FindOwned(ctx, other.UserID, patientID).Return(nil, repository.ErrPatientNotFound)

		detail, err := fx.service.GetOwned(ctx, other, patientID)

		assert.Nil(t, detail)
		assert.True(t, errors.Is(err, domainerrors.ErrPatientNotFound))
	})
}

func TestPatientService_Lists(t *testing.T) {
	ctx := context.Background()
	manager := newPrincipal(entity.RoleManager)
	doctor := newPrincipal(entity.RoleDoctor)
	owned := []*entity.Patient{{ID: uuid.New(), CreatedBy: manager.UserID}}
	all := append([]*entity.Patient{{ID: uuid.New()}}, owned...)

	fx := createTestPatientService(t)
	fx.allow(ctx, entity.RoleManager, entity.OpListOwnPatients)
	fx.allow(ctx, entity.RoleDoctor, entity.OpListAllPatients)
	fx.patientRepo.EXPECT().ListByOwner(ctx, manager.UserID).Return(owned, nil)
	fx.patientRepo.EXPECT().CountByOwner(ctx, manager.UserID).Return(int64(1), nil)
	fx.patientRepo.EXPECT().ListAll(ctx).Return(all, nil)

	gotOwned, err := fx.service.ListOwnedBy(ctx, manager)
	require.NoError(t, err)
	assert.Equal(t, owned, gotOwned)

	count, err := fx.service.CountOwnedBy(ctx, manager)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	gotAll, err := fx.service.ListAll(ctx, doctor)
	require.NoError(t, err)
	assert.Len(t, gotAll, 2)
}

func TestPatientService_GetAny_NotFound(t *testing.T) {
	fx := createTestPatientService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.patientRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPatientNotFound)

	_, err := fx.service.GetAny(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrPatientNotFound))
}

func TestPatientService_DeleteOwned(t *testing.T) {
	ctx := context.Background()
	manager := newPrincipal(entity.RoleManager)
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestPatientService(t)
		fx.allow(ctx, entity.RoleManager, entity.OpDeleteOwnPatient)
		fx.patientRepo.EXPECT().DeleteOwned(ctx, manager.UserID, id).Return(nil)

		assert.NoError(t, fx.service.DeleteOwned(ctx, manager, id))
	})

	t.Run("not owned", func(t *testing.T) {
		fx := createTestPatientService(t)
		fx.allow(ctx, entity.RoleManager, entity.OpDeleteOwnPatient)
		fx.patientRepo.EXPECT().DeleteOwned(ctx, manager.UserID, id).Return(repository.ErrPatientNotFound)

		err := fx.service.DeleteOwned(ctx, manager, id)
		assert.True(t, errors.Is(err, domainerrors.ErrPatientNotFound))
	})

	t.Run("datastore failure", func(t *testing.T) {
		fx := createTestPatientService(t)
		fx.allow(ctx, entity.RoleManager, entity.OpDeleteOwnPatient)
		fx.patientRepo.EXPECT().DeleteOwned(ctx, manager.UserID, id).Return(errors.New("db down"))

		err := fx.service.DeleteOwned(ctx, manager, id)
		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrPatientNotFound))
	})
}
