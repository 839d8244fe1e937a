package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"founderkit/internal/api/controllers"
	"founderkit/pkg/middleware"
)

type Controllers struct {
	Questionnaire *controllers.QuestionnaireController
	Artifact      *controllers.ArtifactController
	Venture       *controllers.VentureController
	Chat          *controllers.ChatController
	Health        *controllers.HealthController
}

func NewRouter(logger *zap.Logger, metricsHandler http.Handler, ctrls Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, ctrls)
	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	return r
}

func RegisterRoutes(r *gin.Engine, ctrls Controllers) {
	r.GET("/healthz", ctrls.Health.HealthHandler)

	questionnaireGroup := r.Group("/questionnaires")
	questionnaireGroup.GET("/:id/questions", ctrls.Questionnaire.ListQuestionsHandler)
	questionnaireGroup.POST("", ctrls.Questionnaire.StartHandler)
	questionnaireGroup.GET("/:id", ctrls.Questionnaire.GetHandler)
	questionnaireGroup.DELETE("/:id", ctrls.Questionnaire.DiscardHandler)
	questionnaireGroup.POST("/:id/answers", ctrls.Questionnaire.SubmitAnswerHandler)
	questionnaireGroup.POST("/:id/back", ctrls.Questionnaire.BackHandler)
	questionnaireGroup.POST("/:id/restart", ctrls.Questionnaire.RestartHandler)
	questionnaireGroup.POST("/:id/draft", ctrls.Questionnaire.SaveDraftHandler)

	artifactGroup := r.Group("/artifacts")
	artifactGroup.GET("", ctrls.Artifact.ListArtifactsHandler)
	artifactGroup.POST("", ctrls.Artifact.CreateArtifactHandler)
	artifactGroup.GET("/:id", ctrls.Artifact.GetArtifactHandler)
	artifactGroup.PUT("/:id", ctrls.Artifact.UpdateArtifactHandler)
	artifactGroup.DELETE("/:id", ctrls.Artifact.DeleteArtifactHandler)

	ventureGroup := r.Group("/ventures")
	ventureGroup.POST("", ctrls.Venture.CreateVentureHandler)
	ventureGroup.GET("/:id", ctrls.Venture.GetVentureHandler)
	ventureGroup.GET("/:id/modules", ctrls.Venture.VentureModulesHandler)
	r.GET("/modules", ctrls.Venture.ListModulesHandler)

	aiGroup := r.Group("/ai")
	aiGroup.POST("/chat", ctrls.Chat.ChatHandler)
	aiGroup.POST("/chat/save", ctrls.Chat.SaveConversationHandler)
	aiGroup.POST("/analyze", ctrls.Chat.AnalyzeHandler)
}
