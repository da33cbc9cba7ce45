package usecase

import (
	"context"

	"clinic/internal/domain/entity"
)

// ManagerDashboard is the manager landing page.
type ManagerDashboard struct {
	Patients      []*entity.Patient
	TotalPatients int64
}

// DoctorDashboard is the doctor landing page.
type DoctorDashboard struct {
	Patients     []*entity.Patient
	RecentVisits []*entity.Visit
}

// DashboardUsecase composes the registry and ledger into per-role landing pages.
type DashboardUsecase interface {
	ManagerDashboard(ctx context.Context, principal *entity.Principal) (*ManagerDashboard, error)
	DoctorDashboard(ctx context.Context, principal *entity.Principal) (*DoctorDashboard, error)
}
