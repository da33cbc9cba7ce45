package main

import (
	"context"

	"clinic/config"
	"clinic/internal/delivery/api"
	"clinic/internal/delivery/api/middleware"
	"clinic/internal/delivery/api/router/handler"
	"clinic/internal/infra/auth"
	"clinic/internal/infra/authorize"
	logs "clinic/internal/infra/log"
	"clinic/internal/infra/persistence/postgres"
	"clinic/internal/infra/phone"
	"clinic/internal/usecase/impl"

	"go.uber.org/fx"
)

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewProfileRepository,
			postgres.NewSessionRepository,
			postgres.NewPatientRepository,
			postgres.NewVisitRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			authorize.NewCasbinPolicy,
			phone.NewNormalizer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewAccessGate,
			impl.NewPatientService,
			impl.NewVisitService,
			impl.NewAccountService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPageHandler,
			handler.NewAccountHandler,
			handler.NewManagerHandler,
			handler.NewDoctorHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}
