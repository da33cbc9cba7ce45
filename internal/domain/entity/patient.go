package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender is the single-letter gender code stored on a patient.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// IsValid checks if the Gender is one of the known codes.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Patient is a person registered at the clinic by a manager.
type Patient struct {
	ID        uuid.UUID
	Name      string
	Age       int
	Gender    Gender
	Phone     *string
	Address   *string
	CreatedBy uuid.UUID // the owning manager
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PatientDetail is a patient together with its visit history, newest first.
type PatientDetail struct {
	Patient *Patient
	Visits  []*Visit
}
