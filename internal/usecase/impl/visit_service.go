package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const nextVisitLayout = "2006-01-02"

// visitService implements the VisitUsecase interface.
type visitService struct {
	gate      usecase.AccessGate
	patients  usecase.PatientUsecase
	visitRepo repository.VisitRepository
	logger    *slog.Logger
	now       func() time.Time
}

// VisitServiceParams holds dependencies for VisitService, injected by Fx.
type VisitServiceParams struct {
	fx.In

	Gate      usecase.AccessGate
	Patients  usecase.PatientUsecase
	VisitRepo repository.VisitRepository
	Logger    *slog.Logger
}

// NewVisitService is the constructor for visitService.
func NewVisitService(params VisitServiceParams) usecase.VisitUsecase {
	return &visitService{
		gate:      params.Gate,
		patients:  params.Patients,
		visitRepo: params.VisitRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *visitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *visitService) AddVisit(ctx context.Context, principal *entity.Principal, patientID uuid.UUID, input *usecase.AddVisitInput) (*entity.Visit, error) {
	if err := authorize(ctx, srv.gate, principal, entity.OpCreateVisit); err != nil {
		return nil, err
	}

	cleaned := *input
	if err := usecase.Validate(&cleaned); err != nil {
		return nil, err
	}

	nextVisit, err := parseNextVisitDate(cleaned.NextVisitDate)
	if err != nil {
		return nil, err
	}

	patient, err := srv.patients.GetAny(ctx, patientID)
	if err != nil {
		return nil, err
	}

	visit := &entity.Visit{
		PatientID:          patient.ID,
		DoctorID:           principal.UserID,
		VisitDate:          srv.now().UTC(),
		Diagnosis:          cleaned.Diagnosis,
		Notes:              optional(cleaned.Notes),
		MedicinePrescribed: cleaned.MedicinePrescribed,
		NextVisitDate:      nextVisit,
	}

	if err := srv.visitRepo.Create(ctx, visit); err != nil {
		// The patient can be deleted between the lookup and the insert.
		if errors.Is(err, repository.ErrPatientNotFound) {
			return nil, domainerrors.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to create visit")
	}

	srv.log(ctx).Info("Visit recorded", slog.Any("visit_id", visit.ID), slog.Any("patient_id", patient.ID), slog.Any("doctor_id", principal.UserID))

	return visit, nil
}

func (srv *visitService) HistoryFor(ctx context.Context, principal *entity.Principal, patientID uuid.UUID) ([]*entity.Visit, error) {
	if err := authorize(ctx, srv.gate, principal, entity.OpViewPatientHistory); err != nil {
		return nil, err
	}

	if _, err := srv.patients.GetAny(ctx, patientID); err != nil {
		return nil, err
	}

	visits, err := srv.visitRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load visit history")
	}

	return visits, nil
}

func (srv *visitService) RecentFor(ctx context.Context, principal *entity.Principal, limit int) ([]*entity.Visit, error) {
	if err := authorize(ctx, srv.gate, principal, entity.OpViewOwnVisits); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = usecase.DefaultRecentVisits
	case limit > usecase.MaxRecentVisits:
		limit = usecase.MaxRecentVisits
	}

	visits, err := srv.visitRepo.ListRecentByDoctor(ctx, principal.UserID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent visits")
	}

	return visits, nil
}

// parseNextVisitDate returns nil for an empty value.
func parseNextVisitDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(nextVisitLayout, raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("next_visit_date must be a date in YYYY-MM-DD format")
	}

	return &parsed, nil
}
