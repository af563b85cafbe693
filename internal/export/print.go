package export

import (
	"html/template"
	"io"

	"gezi/internal/itinerary"
)

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 24px; color: #222; }
h1 { font-size: 22px; }
section.day { page-break-inside: avoid; margin-bottom: 24px; }
table { width: 100%; border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 6px 8px; text-align: left; font-size: 13px; }
td.status-locked { font-weight: bold; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Days}}<section class="day" data-day="{{.Day}}">
<h2>Day {{.Day}}</h2>
<table>
<thead><tr><th>Time</th><th>Activity</th><th>Location</th><th>Status</th></tr></thead>
<tbody>
{{range .Activities}}<tr>
<td class="time">{{.Time}}</td>
<td class="activity">{{.Name}}</td>
<td class="location">{{.Location}}</td>
{{if .Locked}}<td class="status status-locked">Locked</td>{{else}}<td class="status">Flexible</td>{{end}}
</tr>
{{end}}</tbody>
</table>
</section>
{{end}}</body>
</html>
`))

const defaultPrintTitle = "Travel Itinerary"

// RenderPrintHTML renders a print-ready document, one section per day.
func RenderPrintHTML(w io.Writer, title string, days []itinerary.ScheduleDay) error {
	if title == "" {
		title = defaultPrintTitle
	}
	return printTemplate.Execute(w, struct {
		Title string
		Days  []itinerary.ScheduleDay
	}{title, days})
}
