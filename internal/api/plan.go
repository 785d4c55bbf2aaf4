package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/mealprep/backend/internal/service"
	"github.com/pageza/mealprep/backend/internal/types"
)

type PlanHandler struct {
	plans  service.IPlanService
	logger *zap.Logger
}

func NewPlanHandler(plans service.IPlanService, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{plans: plans, logger: logger}
}

// ListPlans serves GET /plans?from=&to=.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	plans, err := h.plans.ListPlans(c.Request.Context(), userID, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *PlanHandler) PlansForDay(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	day, plans, err := h.plans.PlansForDay(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": day, "plans": plans})
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	plan, err := h.plans.CreatePlan(c.Request.Context(), userID, req.MealID, req.PlannedDate)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	planID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.plans.DeletePlan(c.Request.Context(), userID, planID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
