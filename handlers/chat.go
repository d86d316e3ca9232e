package handlers

import (
	"net/http"

	"flawless/services/assistant"
	"flawless/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler exposes the salon assistant.
type ChatHandler struct {
	Svc assistant.AssistantService
}

func NewChatHandler(svc assistant.AssistantService) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// ChatHandler handles POST /api/chat. Anonymous visitors get a fresh session
// ID on first message and send it back on subsequent ones.
func (h *ChatHandler) Chat(c *gin.Context) {
	var body struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if body.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if body.SessionID == "" {
		body.SessionID = uuid.New().String()
	}

	reply, err := h.Svc.Chat(c, body.SessionID, body.Message)
	if err != nil {
		utils.GetLogger().Error("chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "the assistant is unavailable right now"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": body.SessionID, "reply": reply})
}
