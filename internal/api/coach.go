package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jruth44/kaizen-nutrition/internal/models"
	"github.com/Jruth44/kaizen-nutrition/internal/service"
	"github.com/Jruth44/kaizen-nutrition/internal/store"
)

// CoachHandler manages the coach chat.
type CoachHandler struct {
	store *store.UserStore
	coach *service.CoachService
}

// NewCoachHandler creates a new CoachHandler instance.
func NewCoachHandler(userStore *store.UserStore, coach *service.CoachService) *CoachHandler {
	return &CoachHandler{store: userStore, coach: coach}
}

// RegisterRoutes registers the coach chat routes.
func (h *CoachHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/:id/coach", h.SendMessage)
		users.GET("/:id/coach", h.GetHistory)
	}
}

// SendMessage forwards one message to the coach and appends both turns
// to the stored history. The history is kept for display only; it is
// not replayed to the model.
func (h *CoachHandler) SendMessage(c *gin.Context) {
	id, record, ok := lookupUser(c, h.store)
	if !ok {
		return
	}

	var req CoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reply := h.coach.CoachReply(c.Request.Context(), record.Profile, req.Message)

	record.CoachChat = append(record.CoachChat,
		models.ChatTurn{Role: "user", Content: req.Message},
		models.ChatTurn{Role: "assistant", Content: reply},
	)

	if err := h.store.Put(id, record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save chat history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// GetHistory returns the stored chat turns.
func (h *CoachHandler) GetHistory(c *gin.Context) {
	_, record, ok := lookupUser(c, h.store)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"coach_chat": record.CoachChat})
}
