package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"founderkit/internal/models/request_models"
	"founderkit/internal/services"
	"founderkit/pkg/utils"
)

type QuestionnaireController struct {
	questionnaireService services.QuestionnaireServiceInterface
}

func NewQuestionnaireController(questionnaireService services.QuestionnaireServiceInterface) *QuestionnaireController {
	return &QuestionnaireController{
		questionnaireService: questionnaireService,
	}
}

// GET /questionnaires/:id/questions, where :id is an artifact type. Gin
// needs one wildcard name per segment, shared with the session routes.
func (qc *QuestionnaireController) ListQuestionsHandler(c *gin.Context) {
	bank, err := qc.questionnaireService.ListQuestions(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bank, "Fetched questions successfully")
}

// POST /questionnaires
func (qc *QuestionnaireController) StartHandler(c *gin.Context) {
	var req request_models.StartQuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "artifact_type and venture_id are required")
		return
	}
	resp, err := qc.questionnaireService.Start(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, resp, "Questionnaire started")
}

// GET /questionnaires/:id
func (qc *QuestionnaireController) GetHandler(c *gin.Context) {
	resp, err := qc.questionnaireService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Fetched questionnaire successfully")
}

// POST /questionnaires/:id/answers
func (qc *QuestionnaireController) SubmitAnswerHandler(c *gin.Context) {
	var req request_models.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	resp, err := qc.questionnaireService.Submit(c.Request.Context(), c.Param("id"), req.Answer)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	message := "Answer accepted"
	if resp.IsComplete {
		message = "Questionnaire completed"
	}
	utils.RespondSuccess(c, resp, message)
}

// POST /questionnaires/:id/back
func (qc *QuestionnaireController) BackHandler(c *gin.Context) {
	resp, err := qc.questionnaireService.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Moved to previous question")
}

// POST /questionnaires/:id/restart
func (qc *QuestionnaireController) RestartHandler(c *gin.Context) {
	resp, err := qc.questionnaireService.Restart(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Questionnaire restarted")
}

// POST /questionnaires/:id/draft
func (qc *QuestionnaireController) SaveDraftHandler(c *gin.Context) {
	resp, err := qc.questionnaireService.SaveDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Draft saved")
}

// DELETE /questionnaires/:id
func (qc *QuestionnaireController) DiscardHandler(c *gin.Context) {
	if err := qc.questionnaireService.Discard(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Questionnaire discarded")
}
