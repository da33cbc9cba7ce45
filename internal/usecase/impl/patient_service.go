package impl

import (
	"context"
	"log/slog"

	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/domain/service"
	"clinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// patientService implements the PatientUsecase interface.
type patientService struct {
	gate        usecase.AccessGate
	patientRepo repository.PatientRepository
	visitRepo   repository.VisitRepository
	phones      service.PhoneNormalizer
	logger      *slog.Logger
}

// PatientServiceParams holds dependencies for PatientService, injected by Fx.
type PatientServiceParams struct {
	fx.In

	Gate        usecase.AccessGate
	PatientRepo repository.PatientRepository
	VisitRepo   repository.VisitRepository
	Phones      service.PhoneNormalizer
	Logger      *slog.Logger
}

// NewPatientService is the constructor for patientService.
func NewPatientService(params PatientServiceParams) usecase.PatientUsecase {
	return &patientService{
		gate:        params.Gate,
		patientRepo: params.PatientRepo,
		visitRepo:   params.VisitRepo,
		phones:      params.Phones,
		logger:      params.Logger,
	}
}

func (srv *patientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *patientService) CreatePatient(ctx context.Context, principal *entity.Principal, input *usecase.CreatePatientInput) (*entity.Patient, error) {
	if err := authorize(ctx, srv.gate, principal, entity.OpCreatePatient); err != nil {
		return nil, err
	}

	cleaned := *input
	if err := usecase.Validate(&cleaned); err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		Name:      cleaned.Name,
		Age:       *cleaned.Age,
		Gender:    entity.Gender(cleaned.Gender),
		Address:   optional(cleaned.Address),
		CreatedBy: principal.UserID,
	}

	if cleaned.Phone != "" {
		normalized, err := srv.phones.Normalize(cleaned.Phone)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("phone must be a valid phone number")
		}
		patient.Phone = &normalized
	}

	if err := srv.patientRepo.Create(ctx, patient); err != nil {
		srv.log(ctx).Error("Failed to create patient", slog.Any("manager_id", principal.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create patient")
	}

	srv.log(ctx).Info("Patient registered", slog.Any("patient_id", patient.ID), slog.Any("manager_id", principal.UserID))

	return patient, nil
}

func (srv *patientService) ListOwnedBy(ctx context.Context, principal *entity.Principal) ([]*entity.Patient, error) {
	if err := authorize(ctx, srv.gate, principal, entity.OpListOwnPatients); err != nil {
		return nil, err
	}

	patients, err := srv.patientRepo.ListByOwner(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own patients")
	}

	return patients, nil
}

func (srv *patientService) CountOwnedBy(ctx context.Context, principal *entity.Principal) (int64, error) {
	if err := authorize(ctx, srv.gate, principal, entity.OpListOwnPatients); err != nil {
		return 0, err
	}

	count, err := srv.patientRepo.CountByOwner(ctx, principal.UserID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count own patients")
	}

	return count, nil
}

func (srv *patientService) ListAll(ctx context.Context, principal *entity.Principal) ([]*entity.Patient, error) {
	if err := authorize(ctx, srv.gate, principal, entity.OpListAllPatients); err != nil {
		return nil, err
	}

	patients, err := srv.patientRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}

	return patients, nil
}

// GetOwned hides other managers' patients behind the same not-found error as absent ones.
func (srv *patientService) GetOwned(ctx context.Context, principal *entity.Principal, patientID uuid.UUID) (*entity.PatientDetail, error) {
	if err := authorize(ctx, srv.gate, principal, entity.OpViewOwnPatientDetail); err != nil {
		return nil, err
	}

	patient, err := srv.patientRepo.FindOwned(ctx, principal.UserID, patientID)
	if err != nil {
		return nil, mapPatientErr(err)
	}

	visits, err := srv.visitRepo.ListByPatient(ctx, patient.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load patient visits")
	}

	return &entity.PatientDetail{Patient: patient, Visits: visits}, nil
}

func (srv *patientService) GetAny(ctx context.Context, patientID uuid.UUID) (*entity.Patient, error) {
	patient, err := srv.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		return nil, mapPatientErr(err)
	}

	return patient, nil
}

func (srv *patientService) DeleteOwned(ctx context.Context, principal *entity.Principal, patientID uuid.UUID) error {
	if err := authorize(ctx, srv.gate, principal, entity.OpDeleteOwnPatient); err != nil {
		return err
	}

	if err := srv.patientRepo.DeleteOwned(ctx, principal.UserID, patientID); err != nil {
		return mapPatientErr(err)
	}

	srv.log(ctx).Info("Patient deleted", slog.Any("patient_id", patientID), slog.Any("manager_id", principal.UserID))

	return nil
}

func mapPatientErr(err error) error {
	if errors.Is(err, repository.ErrPatientNotFound) {
		return domainerrors.ErrPatientNotFound
	}

	return errors.Wrap(err, "failed to load patient")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
