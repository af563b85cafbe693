package itinerary

// Activity is one entry of a day's schedule. Locked is the only field that
// changes after creation, and only through the UI lock toggle.
type Activity struct {
	Time     string `json:"time"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Locked   bool   `json:"locked"`
}

// ScheduleDay groups the activities of a single day. Day is 1-based.
type ScheduleDay struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

// Source tells which entry point produced a schedule.
type Source string

const (
	SourceText       Source = "text"
	SourceStructured Source = "structured"
	SourceMock       Source = "mock"
)

// Result is a schedule ready for rendering. Fallback is set when the input
// produced no days and Days holds the example schedule instead.
type Result struct {
	Days     []ScheduleDay `json:"days"`
	Source   Source        `json:"source"`
	Fallback bool          `json:"fallback"`
}

// CloneSchedule returns a deep copy so callers can toggle locks without
// touching shared state.
func CloneSchedule(days []ScheduleDay) []ScheduleDay {
	if days == nil {
		return nil
	}
	out := make([]ScheduleDay, len(days))
	for i, d := range days {
		out[i] = ScheduleDay{
			Day:        d.Day,
			Activities: append([]Activity(nil), d.Activities...),
		}
	}
	return out
}

// ActivityCount is the total number of activities across all days.
func ActivityCount(days []ScheduleDay) int {
	n := 0
	for _, d := range days {
		n += len(d.Activities)
	}
	return n
}

func withFallback(days []ScheduleDay, source Source) Result {
	if len(days) == 0 {
		return Result{Days: MockSchedule(), Source: source, Fallback: true}
	}
	return Result{Days: days, Source: source}
}
