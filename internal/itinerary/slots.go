package itinerary

import (
	"regexp"
	"strings"
)

// Canonical clock times for the three time-of-day buckets.
const (
	MorningTime   = "09:00"
	AfternoonTime = "14:00"
	EveningTime   = "19:00"
)

const slotLabels = `Morning|Afternoon|Evening|Sabah|Öğlen|Öğle|Akşam`

var (
	boldSlotPattern   = regexp.MustCompile(`^\*\*(` + slotLabels + `):\*\*`)
	bulletSlotPattern = regexp.MustCompile(`^- (` + slotLabels + `):`)
)

var dayHeaderPrefixes = []string{"Day ", "## Day ", "### "}

// isDayHeader reports whether a trimmed line opens a new day block.
// "### " covers localized date headings such as "### 13 Ekim (Pazartesi)".
func isDayHeader(line string) bool {
	for _, p := range dayHeaderPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// matchSlotHeader returns the slot label of a time-slot header line.
func matchSlotHeader(line string) (string, bool) {
	if m := boldSlotPattern.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	if m := bulletSlotPattern.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	return "", false
}

// SlotTime maps a slot label to its canonical clock time. Unknown labels
// fall into the evening bucket.
func SlotTime(label string) string {
	switch label {
	case "Morning", "Sabah":
		return MorningTime
	case "Afternoon", "Öğlen", "Öğle":
		return AfternoonTime
	default:
		return EveningTime
	}
}
