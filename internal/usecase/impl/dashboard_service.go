package impl

import (
	"context"

	"clinic/internal/domain/entity"
	"clinic/internal/usecase"

	"go.uber.org/fx"
)

type dashboardService struct {
	patients usecase.PatientUsecase
	visits   usecase.VisitUsecase
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	Patients usecase.PatientUsecase
	Visits   usecase.VisitUsecase
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		patients: params.Patients,
		visits:   params.Visits,
	}
}

func (srv *dashboardService) ManagerDashboard(ctx context.Context, principal *entity.Principal) (*usecase.ManagerDashboard, error) {
	patients, err := srv.patients.ListOwnedBy(ctx, principal)
	if err != nil {
		return nil, err
	}

	total, err := srv.patients.CountOwnedBy(ctx, principal)
	if err != nil {
		return nil, err
	}

	return &usecase.ManagerDashboard{Patients: patients, TotalPatients: total}, nil
}

func (srv *dashboardService) DoctorDashboard(ctx context.Context, principal *entity.Principal) (*usecase.DoctorDashboard, error) {
	patients, err := srv.patients.ListAll(ctx, principal)
	if err != nil {
		return nil, err
	}

	recent, err := srv.visits.RecentFor(ctx, principal, usecase.DefaultRecentVisits)
	if err != nil {
		return nil, err
	}

	return &usecase.DoctorDashboard{Patients: patients, RecentVisits: recent}, nil
}
