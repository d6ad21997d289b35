package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jruth44/kaizen-nutrition/internal/models"
	"github.com/Jruth44/kaizen-nutrition/internal/service"
	"github.com/Jruth44/kaizen-nutrition/internal/store"
)

// TrackerHandler manages the food log and the per-entry analysis.
type TrackerHandler struct {
	store *store.UserStore
	coach *service.CoachService
}

// NewTrackerHandler creates a new TrackerHandler instance.
func NewTrackerHandler(userStore *store.UserStore, coach *service.CoachService) *TrackerHandler {
	return &TrackerHandler{store: userStore, coach: coach}
}

// RegisterRoutes registers the food log routes.
func (h *TrackerHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/:id/foodlog", h.LogFood)
		users.GET("/:id/foodlog", h.GetFoodLog)
	}
}

// LogFood appends one entry to the food log and returns the model's
// analysis of it. Analysis failure degrades to the fallback value; the
// entry is logged either way.
func (h *TrackerHandler) LogFood(c *gin.Context) {
	id, record, ok := lookupUser(c, h.store)
	if !ok {
		return
	}

	var req FoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry := models.FoodLogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		FoodItem:  req.FoodItem,
		Calories:  req.Calories,
		Protein:   req.Protein,
		Fat:       req.Fat,
		Carbs:     req.Carbs,
		Quantity:  req.Quantity,
	}
	record.FoodLog = append(record.FoodLog, entry)

	analysis := h.coach.AnalyzeFoodEntry(c.Request.Context(), record.Profile, req.FoodItem)

	if err := h.store.Put(id, record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save food log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry, "analysis": analysis})
}

// GetFoodLog returns the append-only food log.
func (h *TrackerHandler) GetFoodLog(c *gin.Context) {
	_, record, ok := lookupUser(c, h.store)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"food_log": record.FoodLog})
}
