package itinerary

import (
	"bytes"
	"encoding/json"
)

// ParseRawPlan accepts the "plan" field of a chat message as it came over the
// wire. A JSON string goes through the text parser and a JSON array through
// the structured adapter. Anything else yields the example schedule.
func ParseRawPlan(raw json.RawMessage) Result {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return withFallback(nil, SourceMock)
	}

	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return withFallback(nil, SourceMock)
		}
		return ScheduleFromText(text)
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return withFallback(nil, SourceMock)
		}
		items := make([]StructuredPlanItem, 0, len(elems))
		for _, elem := range elems {
			var item StructuredPlanItem
			if err := json.Unmarshal(elem, &item); err != nil {
				continue
			}
			items = append(items, item)
		}
		return ScheduleFromItems(items)
	default:
		return withFallback(nil, SourceMock)
	}
}

// ParseInput detects the input kind of a plan read from a file or stdin.
// JSON strings and arrays are decoded, everything else is plan text.
func ParseInput(data []byte) Result {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '"') && json.Valid(trimmed) {
		return ParseRawPlan(trimmed)
	}
	return ScheduleFromText(string(data))
}
