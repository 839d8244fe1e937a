package controllers_fx

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	backend "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"founderkit/internal/api"
	"founderkit/internal/api/controllers"
	"founderkit/pkg/config"
)

var Module = fx.Options(
	fx.Provide(controllers.NewQuestionnaireController),
	fx.Provide(controllers.NewArtifactController),
	fx.Provide(controllers.NewVentureController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(provideHealthController),
	fx.Provide(provideRouter))

func provideHealthController(db *gorm.DB, redis *backend.Client) *controllers.HealthController {
	checks := map[string]controllers.Pinger{
		"postgres": controllers.PingFunc(func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
	}
	if redis != nil {
		checks["redis"] = controllers.PingFunc(func(ctx context.Context) error {
			return redis.Ping(ctx).Err()
		})
	}
	return controllers.NewHealthController(checks)
}

type routerParams struct {
	fx.In

	Config         config.Config
	Logger         *zap.Logger
	MetricsHandler http.Handler
	Questionnaire  *controllers.QuestionnaireController
	Artifact       *controllers.ArtifactController
	Venture        *controllers.VentureController
	Chat           *controllers.ChatController
	Health         *controllers.HealthController
}

func provideRouter(p routerParams) *gin.Engine {
	gin.SetMode(p.Config.GinMode)
	return api.NewRouter(p.Logger.Named("http"), p.MetricsHandler, api.Controllers{
		Questionnaire: p.Questionnaire,
		Artifact:      p.Artifact,
		Venture:       p.Venture,
		Chat:          p.Chat,
		Health:        p.Health,
	})
}
