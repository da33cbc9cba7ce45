package repository

import (
	"context"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// VisitRepository defines the interface for visit-related database operations.
// There is no update or delete: visits are immutable.
type VisitRepository interface {
	// Create persists a new visit and fills in its generated ID and creation time.
	Create(ctx context.Context, visit *entity.Visit) error

	// ListByPatient returns the patient's visits ordered by visit date, newest first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Visit, error)

	// ListRecentByDoctor returns at most limit visits authored by doctorID, newest first,
	// each with its Patient populated.
	ListRecentByDoctor(ctx context.Context, doctorID uuid.UUID, limit int) ([]*entity.Visit, error)
}
