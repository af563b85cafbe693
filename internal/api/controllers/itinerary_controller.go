package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gezi/internal/models/request_models"
	"gezi/internal/services"
	"gezi/pkg/utils"
)

type ItineraryController struct {
	scheduleService services.ScheduleServiceInterface
}

func NewItineraryController(scheduleService services.ScheduleServiceInterface) *ItineraryController {
	return &ItineraryController{
		scheduleService: scheduleService,
	}
}

// GET /itinerary/latest?chat_id=
func (i *ItineraryController) LoadLatestHandler(c *gin.Context) {
	resp, err := i.scheduleService.LoadLatest(c.Request.Context(), c.Query("chat_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Itinerary loaded successfully")
}

// POST /itinerary/parse
func (i *ItineraryController) ParseHandler(c *gin.Context) {
	var req request_models.ParsePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "plan is required")
		return
	}

	resp, err := i.scheduleService.Parse(c.Request.Context(), req.Plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Plan parsed successfully")
}

func (i *ItineraryController) GetHandler(c *gin.Context) {
	resp, err := i.scheduleService.Get(c.Request.Context(), c.Param("chatId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

// PATCH /itinerary/:chatId/days/:dayIndex/activities/:activityIndex/lock
func (i *ItineraryController) ToggleLockHandler(c *gin.Context) {
	var req request_models.ToggleLockRequest
	if err := c.ShouldBindUri(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "dayIndex and activityIndex must be integers")
		return
	}

	resp, err := i.scheduleService.ToggleLock(c.Request.Context(), req.ChatID, req.DayIndex, req.ActivityIndex)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Lock toggled")
}
