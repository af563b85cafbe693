package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gezi/internal/models/response_models"
	"gezi/internal/services"
	"gezi/pkg/utils"
)

const formatCalendar = "calendar"

type ExportController struct {
	exportService services.ExportServiceInterface
}

func NewExportController(exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// GET /itinerary/:chatId/export/:format
func (e *ExportController) ExportHandler(c *gin.Context) {
	chatID := c.Param("chatId")
	format := c.Param("format")

	if format == formatCalendar {
		link, err := e.exportService.CalendarLink(c.Request.Context(), chatID, c.Query("start"))
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, response_models.CalendarLinkResponse{URL: link}, "Calendar link created")
		return
	}

	file, err := e.exportService.Export(c.Request.Context(), chatID, format)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	disposition := "attachment"
	if file.Inline {
		disposition = "inline"
	}
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
