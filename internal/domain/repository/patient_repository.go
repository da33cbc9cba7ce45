package repository

import (
	"context"

	"clinic/internal/domain/entity"
	"clinic/internal/errors"

	"github.com/google/uuid"
)

// ErrPatientNotFound is returned when a patient is not found.
var ErrPatientNotFound = errors.New("patient not found")

// PatientRepository defines the interface for patient-related database operations.
type PatientRepository interface {
	// Create persists a new patient and fills in its generated ID and timestamps.
	Create(ctx context.Context, patient *entity.Patient) error

	// FindByID retrieves a patient regardless of owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)

	// FindOwned retrieves a patient only if created_by matches owner.
	// Returns ErrPatientNotFound both when it is absent and when it belongs to someone else.
	FindOwned(ctx context.Context, owner, id uuid.UUID) (*entity.Patient, error)

	// ListByOwner returns the owner's patients, newest first.
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.Patient, error)

	// CountByOwner returns the number of patients created by owner.
	CountByOwner(ctx context.Context, owner uuid.UUID) (int64, error)

	// ListAll returns every patient, newest first.
	ListAll(ctx context.Context) ([]*entity.Patient, error)

	// DeleteOwned removes an owned patient. Its visits go with it.
	DeleteOwned(ctx context.Context, owner, id uuid.UUID) error
}
