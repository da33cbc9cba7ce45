package usecase

import (
	"context"
	"strings"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// DefaultRecentVisits is the number of visits RecentFor returns when no limit is given.
const DefaultRecentVisits = 10

// MaxRecentVisits caps RecentFor.
const MaxRecentVisits = 100

// AddVisitInput is the data a doctor submits for a visit.
type AddVisitInput struct {
	Diagnosis          string `json:"diagnosis" form:"diagnosis" validate:"required"`
	MedicinePrescribed string `json:"medicine_prescribed" form:"medicine_prescribed" validate:"required"`
	Notes              string `json:"notes" form:"notes"`
	// NextVisitDate is YYYY-MM-DD or empty.
	NextVisitDate string `json:"next_visit_date" form:"next_visit_date" validate:"omitempty,datetime=2006-01-02"`
}

// Normalize trims every field; whitespace-only text counts as missing.
func (in *AddVisitInput) Normalize() {
	in.Diagnosis = strings.TrimSpace(in.Diagnosis)
	in.MedicinePrescribed = strings.TrimSpace(in.MedicinePrescribed)
	in.Notes = strings.TrimSpace(in.Notes)
	in.NextVisitDate = strings.TrimSpace(in.NextVisitDate)
}

// VisitUsecase is the visit ledger.
type VisitUsecase interface {
	AddVisit(ctx context.Context, principal *entity.Principal, patientID uuid.UUID, input *AddVisitInput) (*entity.Visit, error)

	// HistoryFor returns the patient's visits, newest visit date first.
	HistoryFor(ctx context.Context, principal *entity.Principal, patientID uuid.UUID) ([]*entity.Visit, error)

	// RecentFor returns the principal's own latest visits with their patients attached.
	RecentFor(ctx context.Context, principal *entity.Principal, limit int) ([]*entity.Visit, error)
}
