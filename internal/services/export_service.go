package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"gezi/internal/export"
	"gezi/pkg/utils"
)

// Export formats served over HTTP. "pdf" is a print-ready HTML page that the
// browser turns into a PDF.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

const printTitle = "Travel Itinerary"

type ExportedFile struct {
	FileName    string
	ContentType string
	Inline      bool
	Data        []byte
}

type ExportServiceInterface interface {
	Export(ctx context.Context, chatID, format string) (*ExportedFile, error)
	// CalendarLink builds the first-event link. An empty start means
	// tomorrow in the configured time zone.
	CalendarLink(ctx context.Context, chatID, start string) (string, error)
}

func NewExportService(schedules ScheduleServiceInterface, loc *time.Location) ExportServiceInterface {
	return &ExportService{
		schedules: schedules,
		loc:       loc,
		now:       time.Now,
	}
}

type ExportService struct {
	schedules ScheduleServiceInterface
	loc       *time.Location
	now       func() time.Time
}

func (e *ExportService) Export(ctx context.Context, chatID, format string) (*ExportedFile, error) {
	days, err := e.schedules.Days(chatID)
	if err != nil {
		return nil, err
	}

	base := "itinerary-" + safeFileName(chatID)
	var buf bytes.Buffer
	switch strings.ToLower(format) {
	case FormatXLSX:
		if err := export.WriteXLSX(&buf, days); err != nil {
			return nil, fmt.Errorf("write xlsx: %w", err)
		}
		return &ExportedFile{
			FileName:    base + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        buf.Bytes(),
		}, nil
	case FormatCSV:
		if err := export.WriteCSV(&buf, days); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
		return &ExportedFile{FileName: base + ".csv", ContentType: "text/csv; charset=utf-8", Data: buf.Bytes()}, nil
	case FormatPDF:
		if err := export.RenderPrintHTML(&buf, printTitle, days); err != nil {
			return nil, fmt.Errorf("render print html: %w", err)
		}
		return &ExportedFile{FileName: base + ".html", ContentType: "text/html; charset=utf-8", Inline: true, Data: buf.Bytes()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", utils.ErrUnsupportedExportFormat, format)
	}
}

func (e *ExportService) CalendarLink(ctx context.Context, chatID, start string) (string, error) {
	days, err := e.schedules.Days(chatID)
	if err != nil {
		return "", err
	}

	tripStart := utils.DefaultTripStart(e.now(), e.loc)
	if start != "" {
		if tripStart, err = utils.ParseTripStart(start, e.loc); err != nil {
			return "", err
		}
	}

	link, err := export.GoogleCalendarLink(days, tripStart)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrEmptySchedule, err)
	}
	return link, nil
}

func safeFileName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
