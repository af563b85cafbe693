package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// TraceID returns the request trace id set by the trace middleware, or "".
func TraceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: TraceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: TraceID(c),
	})
}

var serviceErrors = []struct {
	err     error
	code    int
	message string
}{
	{ErrScheduleNotFound, http.StatusNotFound, "No itinerary loaded for this chat"},
	{ErrActivityNotFound, http.StatusNotFound, "Activity not found"},
	{ErrChatNotFound, http.StatusNotFound, "Chat not found"},
	{ErrInvalidInput, http.StatusBadRequest, "Invalid input"},
	{ErrUnsupportedExportFormat, http.StatusBadRequest, "Unsupported export format"},
	{ErrEmptySchedule, http.StatusUnprocessableEntity, "Itinerary has no activities"},
	{ErrGeneratorUnavailable, http.StatusServiceUnavailable, "Plan generation is not configured"},
	{ErrBackendUnavailable, http.StatusBadGateway, "Planner backend unavailable"},
	{ErrUnexpectedBehaviorOfAI, http.StatusBadGateway, "Plan generator returned an unusable plan"},
}

func HandleServiceError(c *gin.Context, err error) {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			if se.code >= http.StatusInternalServerError {
				zap.L().Warn("service error", zap.Error(err), zap.String("trace_id", TraceID(c)))
			}
			RespondError(c, se.code, se.message)
			return
		}
	}

	if errors.Is(err, ErrDatabaseError) {
		zap.L().Error("database error", zap.Error(err), zap.String("trace_id", TraceID(c)))
	} else {
		zap.L().Error("unknown error", zap.Error(err), zap.String("trace_id", TraceID(c)))
	}
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
