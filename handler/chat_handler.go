package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/edufund/scholarship-finder/dto"
	"github.com/edufund/scholarship-finder/service"
)

// ChatHandler serves the assistant endpoint.
type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{chatService: chatService, logger: logger}
}

// Chat handles POST /chatbot.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	response, err := h.chatService.Respond(c.Request.Context(), req.UserID, req.Query)
	if err != nil {
		if errors.Is(err, dto.ErrEmptyQuery) {
			h.sendError(c, http.StatusBadRequest, "No query provided", err)
			return
		}
		h.sendError(c, http.StatusInternalServerError, "Failed to generate response", err)
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{
		Success:  true,
		Query:    req.Query,
		Response: response,
	})
}

func (h *ChatHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		h.logger.Error(message, zap.Error(err))
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "CHAT_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
