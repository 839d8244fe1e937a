package venture_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"founderkit/internal/repositories"
	"founderkit/internal/services"
	"founderkit/pkg/config"
)

var Module = fx.Provide(
	provideUserRepo, provideVentureRepo, provideVentureService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideVentureRepo(db *gorm.DB) repositories.VentureRepository {
	return repositories.NewVentureRepository(db)
}

func provideVentureService(
	ventureRepo repositories.VentureRepository,
	userRepo repositories.UserRepository,
	cfg config.Config,
	log *zap.Logger,
) services.VentureServiceInterface {
	demoUser := services.DemoUser{Email: cfg.DemoUserEmail, Name: cfg.DemoUserName}
	return services.NewVentureService(ventureRepo, userRepo, demoUser, log.Named("venture"))
}
