package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jruth44/kaizen-nutrition/internal/models"
	"github.com/Jruth44/kaizen-nutrition/internal/service"
	"github.com/Jruth44/kaizen-nutrition/internal/store"
)

// MealPlanHandler generates and serves meal plans.
type MealPlanHandler struct {
	store   *store.UserStore
	planner *service.PlannerService
}

// NewMealPlanHandler creates a new MealPlanHandler instance.
func NewMealPlanHandler(userStore *store.UserStore, planner *service.PlannerService) *MealPlanHandler {
	return &MealPlanHandler{store: userStore, planner: planner}
}

// RegisterRoutes registers the meal plan routes.
func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/:id/mealplan", h.GenerateMealPlan)
		users.GET("/:id/mealplan", h.GetMealPlan)
	}
}

// GenerateMealPlan runs the generation pipeline and replaces the
// stored plan wholesale. Failed slots come back as placeholders inside
// an otherwise valid plan, so this endpoint never fails on transport
// problems.
func (h *MealPlanHandler) GenerateMealPlan(c *gin.Context) {
	id, record, ok := lookupUser(c, h.store)
	if !ok {
		return
	}

	var req MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if record.Targets == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "complete your profile and calculate targets first"})
		return
	}

	plan := h.planner.GenerateMealPlan(c.Request.Context(), record.Profile, *record.Targets, req.NumDays, req.MealPrep)

	record.Meals = plan
	record.MealPlanSettings = &models.MealPlanSettings{
		StartDate:     req.StartDate,
		NumDays:       req.NumDays,
		MealPrepLunch: req.MealPrep,
	}

	if err := h.store.Put(id, record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save meal plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": plan, "meal_plan_settings": record.MealPlanSettings})
}

// GetMealPlan returns the stored plan.
func (h *MealPlanHandler) GetMealPlan(c *gin.Context) {
	_, record, ok := lookupUser(c, h.store)
	if !ok {
		return
	}

	if record.Meals == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no meal plan generated yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": record.Meals, "meal_plan_settings": record.MealPlanSettings})
}
