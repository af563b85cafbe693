package itinerary

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

const (
	defaultStructuredHour  = MorningTime
	defaultStructuredTitle = "Activity"
)

// StructuredPlanItem is one record of a plan the backend already split into
// days and activities.
type StructuredPlanItem struct {
	DayNumber       int    `json:"day_number"`
	Hour            string `json:"hour,omitempty"`
	ActivityTitle   string `json:"activity_title,omitempty"`
	ActivityContent string `json:"activity_content,omitempty"`
}

// UnmarshalJSON is lenient: day_number may be a number or a numeric string
// and defaults to 1; text fields that are not strings are treated as absent.
func (i *StructuredPlanItem) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("structured plan item must be an object: %w", err)
	}
	if fields == nil {
		return fmt.Errorf("structured plan item must be an object")
	}

	*i = StructuredPlanItem{
		DayNumber:       dayNumberField(fields["day_number"]),
		Hour:            stringField(fields["hour"]),
		ActivityTitle:   stringField(fields["activity_title"]),
		ActivityContent: stringField(fields["activity_content"]),
	}
	return nil
}

func dayNumberField(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 1
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n >= 1 && n <= math.MaxInt32 {
			return int(n)
		}
		return 1
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && v >= 1 {
			return v
		}
	}
	return 1
}

func stringField(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// ParseStructuredPlan groups items by day number. Days come out in ascending
// day_number order and keep day_number as their Day value; activities keep
// input order within a day.
func ParseStructuredPlan(items []StructuredPlanItem) []ScheduleDay {
	groups := make(map[int][]Activity)
	for _, item := range items {
		day := item.DayNumber
		if day < 1 {
			day = 1
		}
		groups[day] = append(groups[day], structuredActivity(item))
	}

	days := make([]ScheduleDay, 0, len(groups))
	for _, day := range slices.Sorted(maps.Keys(groups)) {
		days = append(days, ScheduleDay{Day: day, Activities: groups[day]})
	}
	return days
}

// ScheduleFromItems is ParseStructuredPlan with the example-schedule fallback.
func ScheduleFromItems(items []StructuredPlanItem) Result {
	return withFallback(ParseStructuredPlan(items), SourceStructured)
}

func structuredActivity(item StructuredPlanItem) Activity {
	a := Activity{
		Time:     item.Hour,
		Name:     item.ActivityTitle,
		Location: item.ActivityContent,
		Locked:   false,
	}
	if a.Time == "" {
		a.Time = defaultStructuredHour
	}
	if a.Name == "" {
		a.Name = defaultStructuredTitle
	}
	return a
}
