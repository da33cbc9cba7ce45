package entity

import (
	"time"

	"github.com/google/uuid"
)

// Visit is a single clinical encounter recorded by a doctor. It is immutable once created.
type Visit struct {
	ID                 uuid.UUID
	PatientID          uuid.UUID
	DoctorID           uuid.UUID
	VisitDate          time.Time
	Diagnosis          string
	Notes              *string
	MedicinePrescribed string
	NextVisitDate      *time.Time // date only, UTC midnight
	CreatedAt          time.Time

	// Patient is populated only by queries that join it, such as a doctor's recent visits.
	Patient *Patient
}
