package artifact_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"founderkit/internal/repositories"
	"founderkit/internal/services"
	"founderkit/pkg/metrics"
)

var Module = fx.Provide(
	provideArtifactRepo, provideArtifactService)

func provideArtifactRepo(db *gorm.DB) repositories.ArtifactRepository {
	return repositories.NewArtifactRepository(db)
}

func provideArtifactService(
	artifactRepo repositories.ArtifactRepository,
	ventureService services.VentureServiceInterface,
	m *metrics.Metrics,
	log *zap.Logger,
) services.ArtifactServiceInterface {
	return services.NewArtifactService(artifactRepo, ventureService, m, log.Named("artifact"))
}
