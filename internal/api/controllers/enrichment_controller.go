package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gezi/internal/services"
	"gezi/pkg/utils"
)

type EnrichmentController struct {
	enrichmentService services.EnrichmentServiceInterface
}

func NewEnrichmentController(enrichmentService services.EnrichmentServiceInterface) *EnrichmentController {
	return &EnrichmentController{
		enrichmentService: enrichmentService,
	}
}

// GET /enrichment/airline?text=
func (e *EnrichmentController) AirlineHandler(c *gin.Context) {
	utils.RespondSuccess(c, e.enrichmentService.Airline(c.Query("text")), "")
}

// GET /enrichment/city-image?title=&location=
func (e *EnrichmentController) CityImageHandler(c *gin.Context) {
	title, location := c.Query("title"), c.Query("location")
	if title == "" && location == "" {
		utils.RespondError(c, http.StatusBadRequest, "title or location is required")
		return
	}
	utils.RespondSuccess(c, e.enrichmentService.CityImage(title, location), "")
}
