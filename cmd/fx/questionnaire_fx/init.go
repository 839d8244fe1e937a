package questionnaire_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"founderkit/internal/repositories"
	"founderkit/internal/services"
	"founderkit/pkg/metrics"
)

var Module = fx.Provide(provideQuestionnaireService)

func provideQuestionnaireService(
	sessionRepo repositories.SessionRepository,
	artifactService services.ArtifactServiceInterface,
	ventureService services.VentureServiceInterface,
	m *metrics.Metrics,
	log *zap.Logger,
) services.QuestionnaireServiceInterface {
	return services.NewQuestionnaireService(sessionRepo, artifactService, ventureService, m, log.Named("questionnaire"))
}
