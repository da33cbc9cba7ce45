package usecase

import (
	"context"
	"strings"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePatientInput is the data a manager submits to register a patient.
type CreatePatientInput struct {
	Name    string `json:"name" form:"name" validate:"required,max=100"`
	Age     *int   `json:"age" form:"age" validate:"required,gte=0"`
	Gender  string `json:"gender" form:"gender" validate:"required,oneof=M F O"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,max=32"`
	Address string `json:"address" form:"address"`
}

func (in *CreatePatientInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Gender = strings.ToUpper(strings.TrimSpace(in.Gender))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
}

// PatientUsecase is the patient registry.
type PatientUsecase interface {
	CreatePatient(ctx context.Context, principal *entity.Principal, input *CreatePatientInput) (*entity.Patient, error)

	// ListOwnedBy returns the principal's own patients, newest first.
	ListOwnedBy(ctx context.Context, principal *entity.Principal) ([]*entity.Patient, error)
	CountOwnedBy(ctx context.Context, principal *entity.Principal) (int64, error)

	// ListAll returns every patient, newest first.
	ListAll(ctx context.Context, principal *entity.Principal) ([]*entity.Patient, error)

	// GetOwned fails with ErrPatientNotFound when the patient is absent or owned by someone else.
	GetOwned(ctx context.Context, principal *entity.Principal, patientID uuid.UUID) (*entity.PatientDetail, error)

	// GetAny is ungated. Callers gate before using it.
	GetAny(ctx context.Context, patientID uuid.UUID) (*entity.Patient, error)

	// DeleteOwned removes an owned patient together with its visits.
	DeleteOwned(ctx context.Context, principal *entity.Principal, patientID uuid.UUID) error
}
