package request_models

import "encoding/json"

// ParsePlanRequest carries a plan the way the backend sends it: a string or
// a list of day records.
type ParsePlanRequest struct {
	Plan json.RawMessage `json:"plan" binding:"required"`
}

type GeneratePlanRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	// Zero means "infer from the prompt".
	Days int `json:"days"`
}

type ToggleLockRequest struct {
	ChatID        string `uri:"chatId" binding:"required"`
	DayIndex      int    `uri:"dayIndex"`
	ActivityIndex int    `uri:"activityIndex"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
