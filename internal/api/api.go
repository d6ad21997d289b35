// Package api exposes the nutrition-coaching pipeline over HTTP. The
// handlers collect structured input and delegate to the services; they
// hold no nutrition logic of their own.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jruth44/kaizen-nutrition/internal/models"
	"github.com/Jruth44/kaizen-nutrition/internal/service"
	"github.com/Jruth44/kaizen-nutrition/internal/store"
)

// SetupAPI wires the services and registers all routes under /api/v1.
func SetupAPI(router *gin.Engine, userStore *store.UserStore, llm service.LLMClient) {
	planner := service.NewPlannerService(llm)
	coach := service.NewCoachService(llm)

	v1 := router.Group("/api/v1")
	{
		NewUserHandler(userStore).RegisterRoutes(v1)
		NewMealPlanHandler(userStore, planner).RegisterRoutes(v1)
		NewTrackerHandler(userStore, coach).RegisterRoutes(v1)
		NewCoachHandler(userStore, coach).RegisterRoutes(v1)
	}
}

// lookupUser fetches the record for the :id path parameter, writing a
// 404 and returning ok=false when the user does not exist.
func lookupUser(c *gin.Context, userStore *store.UserStore) (string, models.UserRecord, bool) {
	id := c.Param("id")
	record, ok := userStore.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return id, models.UserRecord{}, false
	}
	return id, record, true
}
