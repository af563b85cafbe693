package export

import (
	"encoding/csv"
	"io"

	"gezi/internal/itinerary"
)

// WriteCSV writes the same columns as WriteXLSX.
func WriteCSV(w io.Writer, days []itinerary.ScheduleDay) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range Rows(days) {
		if err := cw.Write(r.values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
