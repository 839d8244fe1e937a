package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"founderkit/internal/questionnaire"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service errors onto HTTP responses. Unexpected
// errors are logged through the request logger when one is attached.
func HandleServiceError(c *gin.Context, err error) {
	var validation *questionnaire.ValidationError

	switch {
	case errors.As(err, &validation):
		RespondError(c, http.StatusBadRequest, validation.Message)
	case errors.Is(err, questionnaire.ErrUnsupportedArtifactType):
		RespondError(c, http.StatusBadRequest, "Unsupported artifact type")
	case errors.Is(err, ErrInvalidArtifactID):
		RespondError(c, http.StatusBadRequest, "Invalid artifact id")
	case errors.Is(err, ErrInvalidStatus):
		RespondError(c, http.StatusBadRequest, "Status must be draft or complete")
	case errors.Is(err, ErrInvalidContent):
		RespondError(c, http.StatusBadRequest, "Content must be a JSON object")
	case errors.Is(err, ErrInvalidConversation):
		RespondError(c, http.StatusBadRequest, "The last message must come from the user")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Questionnaire session not found or expired")
	case errors.Is(err, ErrArtifactNotFound):
		RespondError(c, http.StatusNotFound, "Artifact not found")
	case errors.Is(err, ErrVentureNotFound):
		RespondError(c, http.StatusNotFound, "Venture not found")
	case errors.Is(err, questionnaire.ErrSessionCompleted):
		RespondError(c, http.StatusConflict, "This questionnaire is already complete")
	case errors.Is(err, questionnaire.ErrAtFirstQuestion):
		RespondError(c, http.StatusConflict, "Already at the first question")
	case errors.Is(err, ErrVentureExists):
		RespondError(c, http.StatusConflict, "Venture already exists")
	case errors.Is(err, ErrModuleLocked):
		RespondError(c, http.StatusForbidden, "Complete the Problem Statement module first")
	case errors.Is(err, ErrCollaboratorFailure):
		logError(c, "Artifact persistence failed", err)
		RespondError(c, http.StatusBadGateway, "Could not save your artifact. Your answers are kept, please try again.")
	case errors.Is(err, ErrCompletionNotConfigured):
		RespondError(c, http.StatusServiceUnavailable, "AI service not configured. Please set up your API key.")
	case errors.Is(err, ErrCompletionFailed):
		logError(c, "Completion failed", err)
		RespondError(c, http.StatusBadGateway, "Failed to get AI response. Please try again.")
	case errors.Is(err, ErrDatabaseError):
		logError(c, "Database error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logError(c, "Unknown error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

const loggerKey = "logger"

// SetLogger attaches a request scoped logger to the gin context.
func SetLogger(c *gin.Context, logger *zap.Logger) {
	c.Set(loggerKey, logger)
}

// Logger returns the request scoped logger, or a no-op logger.
func Logger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}

func logError(c *gin.Context, msg string, err error) {
	Logger(c).Error(msg, zap.Error(err))
}
