package export

import (
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"gezi/internal/itinerary"
)

func TestGoogleCalendarLink(t *testing.T) {
	start := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	link, err := GoogleCalendarLink(itinerary.MockSchedule(), start)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(link, calendarBaseURL+"?") {
		t.Fatalf("Unexpected link %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("Invalid URL: %v", err)
	}
	q := u.Query()
	want := map[string]string{
		"action":   "TEMPLATE",
		"text":     "Arrive at Airport",
		"dates":    "20261020T090000/20261020T100000",
		"location": "Bangkok Airport",
		"details":  "Day 1: Arrive at Airport",
		"ctz":      "UTC",
	}
	for k, v := range want {
		if got := q.Get(k); got != v {
			t.Errorf("Expected %s=%q, got %q", k, v, got)
		}
	}
}

func TestGoogleCalendarLink_DayOffset(t *testing.T) {
	days := []itinerary.ScheduleDay{{Day: 3, Activities: []itinerary.Activity{
		{Time: "22:30", Name: "Night bazaar"},
	}}}
	start := time.Date(2026, 10, 30, 15, 0, 0, 0, time.UTC)

	link, err := GoogleCalendarLink(days, start)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	u, _ := url.Parse(link)
	if got := u.Query().Get("dates"); got != "20261101T223000/20261101T233000" {
		t.Errorf("Unexpected dates %s", got)
	}
	if u.Query().Has("location") {
		t.Error("Expected empty location to be omitted")
	}
}

func TestGoogleCalendarLink_BadTimeUsesMorning(t *testing.T) {
	days := []itinerary.ScheduleDay{{Day: 1, Activities: []itinerary.Activity{{Time: "noon", Name: "Lunch"}}}}
	link, err := GoogleCalendarLink(days, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	u, _ := url.Parse(link)
	if got := u.Query().Get("dates"); got != "20260105T090000/20260105T100000" {
		t.Errorf("Unexpected dates %s", got)
	}
}

func TestGoogleCalendarLink_Empty(t *testing.T) {
	for _, days := range [][]itinerary.ScheduleDay{nil, {{Day: 1}}} {
		if _, err := GoogleCalendarLink(days, time.Now()); !errors.Is(err, ErrEmptySchedule) {
			t.Errorf("Expected ErrEmptySchedule, got %v", err)
		}
	}
}
