package export

import (
	"strconv"

	"gezi/internal/itinerary"
)

const (
	StatusLocked   = "Locked"
	StatusFlexible = "Flexible"
)

// Header is the column order shared by the spreadsheet and CSV exports.
var Header = []string{"Day", "Time", "Activity", "Location", "Status"}

// Row is one flattened activity.
type Row struct {
	Day      int    `json:"day"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

func StatusFromLocked(locked bool) string {
	if locked {
		return StatusLocked
	}
	return StatusFlexible
}

func LockedFromStatus(status string) bool {
	return status == StatusLocked
}

// Rows flattens a schedule in day then activity order.
func Rows(days []itinerary.ScheduleDay) []Row {
	rows := make([]Row, 0, itinerary.ActivityCount(days))
	for _, d := range days {
		for _, a := range d.Activities {
			rows = append(rows, Row{
				Day:      d.Day,
				Time:     a.Time,
				Activity: a.Name,
				Location: a.Location,
				Status:   StatusFromLocked(a.Locked),
			})
		}
	}
	return rows
}

// ScheduleFromRows rebuilds a schedule from exported rows. Consecutive rows
// with the same day are grouped together.
func ScheduleFromRows(rows []Row) []itinerary.ScheduleDay {
	var days []itinerary.ScheduleDay
	for _, r := range rows {
		if len(days) == 0 || days[len(days)-1].Day != r.Day {
			days = append(days, itinerary.ScheduleDay{Day: r.Day})
		}
		last := &days[len(days)-1]
		last.Activities = append(last.Activities, itinerary.Activity{
			Time:     r.Time,
			Name:     r.Activity,
			Location: r.Location,
			Locked:   LockedFromStatus(r.Status),
		})
	}
	return days
}

func (r Row) values() []string {
	return []string{strconv.Itoa(r.Day), r.Time, r.Activity, r.Location, r.Status}
}
