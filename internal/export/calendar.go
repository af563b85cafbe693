package export

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"gezi/internal/itinerary"
)

var ErrEmptySchedule = errors.New("schedule has no activities")

const (
	calendarBaseURL    = "https://calendar.google.com/calendar/render"
	calendarTimeLayout = "20060102T150405"
	eventDuration      = time.Hour
)

// GoogleCalendarLink builds a calendar template link for the first activity
// of the schedule. The event date is tripStart plus day-1 days, at the
// activity's clock time in tripStart's location.
func GoogleCalendarLink(days []itinerary.ScheduleDay, tripStart time.Time) (string, error) {
	day, activity, ok := firstActivity(days)
	if !ok {
		return "", ErrEmptySchedule
	}

	hour, minute := clock(activity.Time)
	loc := tripStart.Location()
	start := time.Date(tripStart.Year(), tripStart.Month(), tripStart.Day()+day-1, hour, minute, 0, 0, loc)
	end := start.Add(eventDuration)

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", activity.Name)
	q.Set("dates", start.Format(calendarTimeLayout)+"/"+end.Format(calendarTimeLayout))
	q.Set("details", fmt.Sprintf("Day %d: %s", day, activity.Name))
	if activity.Location != "" {
		q.Set("location", activity.Location)
	}
	if name := loc.String(); name != "" && name != "Local" {
		q.Set("ctz", name)
	}

	return calendarBaseURL + "?" + q.Encode(), nil
}

func firstActivity(days []itinerary.ScheduleDay) (int, itinerary.Activity, bool) {
	for _, d := range days {
		if len(d.Activities) > 0 {
			return d.Day, d.Activities[0], true
		}
	}
	return 0, itinerary.Activity{}, false
}

// clock reads "HH:MM", falling back to the morning slot.
func clock(s string) (int, int) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		t, _ = time.Parse("15:04", itinerary.MorningTime)
	}
	return t.Hour(), t.Minute()
}
