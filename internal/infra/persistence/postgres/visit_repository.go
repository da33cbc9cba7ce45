package postgres

import (
	"context"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{db: db}
}

func (repo *visitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	visitM := fromVisitDomain(visit)

	if err := repo.db.WithContext(ctx).Omit("Patient", "Doctor").Create(visitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPatientNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required visit information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit")
	}

	visit.ID = visitM.ID
	visit.CreatedAt = visitM.CreatedAt

	return nil
}

func (repo *visitRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Visit, error) {
	var rows []*model.VisitModel
	err := repo.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("visit_date DESC").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list visits")
	}

	return toVisitsDomain(rows), nil
}

func (repo *visitRepository) ListRecentByDoctor(ctx context.Context, doctorID uuid.UUID, limit int) ([]*entity.Visit, error) {
	var rows []*model.VisitModel
	err := repo.db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("visit_date DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list recent visits")
	}

	return toVisitsDomain(rows), nil
}

func toVisitDomain(data *model.VisitModel) *entity.Visit {
	if data == nil {
		return nil
	}

	return &entity.Visit{
		ID:                 data.ID,
		PatientID:          data.PatientID,
		DoctorID:           data.DoctorID,
		VisitDate:          data.VisitDate,
		Diagnosis:          data.Diagnosis,
		Notes:              data.Notes,
		MedicinePrescribed: data.MedicinePrescribed,
		NextVisitDate:      data.NextVisitDate,
		CreatedAt:          data.CreatedAt,
		Patient:            toPatientDomain(data.Patient),
	}
}

func toVisitsDomain(rows []*model.VisitModel) []*entity.Visit {
	visits := make([]*entity.Visit, 0, len(rows))
	for _, row := range rows {
		visits = append(visits, toVisitDomain(row))
	}

	return visits
}

func fromVisitDomain(data *entity.Visit) *model.VisitModel {
	return &model.VisitModel{
		ID:                 data.ID,
		PatientID:          data.PatientID,
		DoctorID:           data.DoctorID,
		VisitDate:          data.VisitDate,
		Diagnosis:          data.Diagnosis,
		Notes:              data.Notes,
		MedicinePrescribed: data.MedicinePrescribed,
		NextVisitDate:      data.NextVisitDate,
	}
}
