package itinerary

import (
	"regexp"
	"strings"
)

// DefaultLocation is used when no location pattern matches an activity.
const DefaultLocation = "Various locations"

// Patterns are tried in order and the first match wins.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bat\s+(\p{Lu}[^,]+)`),
	regexp.MustCompile(`\bin\s+(\p{Lu}[^,]+)`),
	regexp.MustCompile(`\bto\s+(\p{Lu}[^,]+)`),
	regexp.MustCompile(`(\p{Lu}\p{Ll}+\s+\p{Lu}\p{Ll}+)`),
}

// ParsePlanText turns a Markdown-ish plan into schedule days. The result is
// empty when no day header is found; callers that need something to render
// should use ScheduleFromText.
func ParsePlanText(text string) []ScheduleDay {
	var (
		days    []ScheduleDay
		current *ScheduleDay
		slot    string
		counter = 1
	)

	flush := func() {
		if current != nil && len(current.Activities) > 0 {
			days = append(days, *current)
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if isDayHeader(line) {
			flush()
			current = &ScheduleDay{Day: counter}
			counter++
			slot = ""
		}
		if current == nil {
			continue
		}

		label, isSlotHeader := matchSlotHeader(line)
		if isSlotHeader {
			slot = label
			continue
		}

		if slot == "" || !strings.HasPrefix(line, "- ") {
			continue
		}
		if activity, ok := parseActivity(line[2:], slot); ok {
			current.Activities = append(current.Activities, activity)
		}
	}
	flush()

	return days
}

// ScheduleFromText parses plan text and falls back to the example schedule
// when nothing could be extracted.
func ScheduleFromText(text string) Result {
	return withFallback(ParsePlanText(text), SourceText)
}

func parseActivity(text, slot string) (Activity, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Activity{}, false
	}

	name := text
	if i := strings.Index(text, "."); i >= 0 {
		name = strings.TrimSpace(text[:i])
	}
	if name == "" {
		name = text
	}

	return Activity{
		Time:     SlotTime(slot),
		Name:     name,
		Location: ExtractLocation(text),
		Locked:   false,
	}, true
}

// ExtractLocation runs the location patterns against an activity line and
// returns the first capture, or DefaultLocation.
func ExtractLocation(text string) string {
	for _, p := range locationPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if loc := strings.TrimSpace(m[1]); loc != "" {
				return loc
			}
		}
	}
	return DefaultLocation
}
