package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gezi/internal/models/request_models"
	"gezi/internal/services"
	"gezi/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// POST /plans/generate
func (p *PlanController) GeneratePlanHandler(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Days < 0 {
		utils.RespondError(c, http.StatusBadRequest, "days must not be negative")
		return
	}

	plan, err := p.planService.GeneratePlan(c.Request.Context(), req.Prompt, req.Days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Travel plan created successfully")
}
