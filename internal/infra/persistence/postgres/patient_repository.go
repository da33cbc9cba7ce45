package postgres

import (
	"context"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/errors"
	"clinic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (repo *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	if err := repo.db.WithContext(ctx).Omit("Creator").Create(patientM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("patient violates a table constraint")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create patient")
	}

	patient.ID = patientM.ID
	patient.CreatedAt = patientM.CreatedAt
	patient.UpdatedAt = patientM.UpdatedAt

	return nil
}

func (repo *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *patientRepository) FindOwned(ctx context.Context, owner, id uuid.UUID) (*entity.Patient, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("id = ? AND created_by = ?", id, owner))
}

func (repo *patientRepository) first(_ context.Context, query *gorm.DB) (*entity.Patient, error) {
	var patientM model.PatientModel
	if err := query.First(&patientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find patient")
	}

	return toPatientDomain(&patientM), nil
}

func (repo *patientRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.Patient, error) {
	var rows []*model.PatientModel
	err := repo.db.WithContext(ctx).
		Where("created_by = ?", owner).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list patients by owner")
	}

	return toPatientsDomain(rows), nil
}

func (repo *patientRepository) CountByOwner(ctx context.Context, owner uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PatientModel{}).
		Where("created_by = ?", owner).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count patients")
	}

	return count, nil
}

func (repo *patientRepository) ListAll(ctx context.Context) ([]*entity.Patient, error) {
	var rows []*model.PatientModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list patients")
	}

	return toPatientsDomain(rows), nil
}

// DeleteOwned relies on the visits foreign key cascade to remove the history.
func (repo *patientRepository) DeleteOwned(ctx context.Context, owner, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, owner).
		Delete(&model.PatientModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete patient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

func toPatientDomain(data *model.PatientModel) *entity.Patient {
	if data == nil {
		return nil
	}

	return &entity.Patient{
		ID:        data.ID,
		Name:      data.Name,
		Age:       data.Age,
		Gender:    entity.Gender(data.Gender),
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toPatientsDomain(rows []*model.PatientModel) []*entity.Patient {
	patients := make([]*entity.Patient, 0, len(rows))
	for _, row := range rows {
		patients = append(patients, toPatientDomain(row))
	}

	return patients
}

func fromPatientDomain(data *entity.Patient) *model.PatientModel {
	return &model.PatientModel{
		ID:        data.ID,
		Name:      data.Name,
		Age:       data.Age,
		Gender:    string(data.Gender),
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedBy: data.CreatedBy,
	}
}
