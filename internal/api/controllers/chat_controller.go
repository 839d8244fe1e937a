package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"founderkit/internal/models/request_models"
	"founderkit/internal/services"
	"founderkit/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// POST /ai/chat
func (cc *ChatController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "messages are required")
		return
	}
	resp, err := cc.chatService.Reply(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Reply generated")
}

// POST /ai/analyze
func (cc *ChatController) AnalyzeHandler(c *gin.Context) {
	var req request_models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "problemStatement is required")
		return
	}
	resp, err := cc.chatService.Analyze(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Analysis generated")
}

// POST /ai/chat/save
func (cc *ChatController) SaveConversationHandler(c *gin.Context) {
	var req request_models.SaveConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ventureId and messages are required")
		return
	}
	artifact, err := cc.chatService.SaveConversation(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, artifact, "Problem statement saved")
}
