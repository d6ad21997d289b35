package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Jruth44/kaizen-nutrition/internal/models"
	"github.com/Jruth44/kaizen-nutrition/internal/nutrition"
	"github.com/Jruth44/kaizen-nutrition/internal/store"
)

// UserHandler manages user records, profiles and derived targets.
type UserHandler struct {
	store *store.UserStore
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userStore *store.UserStore) *UserHandler {
	return &UserHandler{store: userStore}
}

// RegisterRoutes registers the user routes.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("/:id/profile", h.GetProfile)
		users.PUT("/:id/profile", h.SaveProfile)
		users.GET("/:id/targets", h.GetTargets)
	}
}

// CreateUser allocates an empty record under a fresh ID.
func (h *UserHandler) CreateUser(c *gin.Context) {
	id := uuid.New().String()

	if err := h.store.Put(id, models.NewUserRecord()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user_id": id})
}

// GetProfile returns the stored profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	_, record, ok := lookupUser(c, h.store)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, record.Profile)
}

// SaveProfile replaces the profile wholesale and recomputes the
// targets in full. Targets are never updated incrementally.
func (h *UserHandler) SaveProfile(c *gin.Context) {
	id, record, ok := lookupUser(c, h.store)
	if !ok {
		return
	}

	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	profile.Normalize()

	targets := nutrition.CalculateTargets(profile)
	record.Profile = profile
	record.Targets = &targets

	if err := h.store.Put(id, record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile, "targets": targets})
}

// GetTargets returns the derived targets, or 404 until the profile has
// been saved at least once.
func (h *UserHandler) GetTargets(c *gin.Context) {
	_, record, ok := lookupUser(c, h.store)
	if !ok {
		return
	}

	if record.Targets == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "targets not computed yet"})
		return
	}

	c.JSON(http.StatusOK, record.Targets)
}
