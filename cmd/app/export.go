package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gezi/internal/export"
	"gezi/internal/itinerary"
	"gezi/pkg/utils"
)

type exportOptions struct {
	format   string
	out      string
	start    string
	timezone string
	title    string
}

func newExportCmd() *cobra.Command {
	opts := exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a plan as xlsx, csv, html or a calendar link",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return runExport(cmd, itinerary.ParseInput(data).Days, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "csv", "xlsx, csv, html or calendar")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.start, "start", "", "trip start date YYYY-MM-DD for calendar links (default tomorrow)")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "Europe/Istanbul", "time zone of the trip")
	cmd.Flags().StringVar(&opts.title, "title", "Travel Itinerary", "title of the html page")
	return cmd
}

func runExport(cmd *cobra.Command, days []itinerary.ScheduleDay, opts exportOptions) (err error) {
	write, err := exportWriter(days, opts)
	if err != nil {
		return err
	}
	if opts.out == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.out, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", opts.out, cerr)
		}
	}()
	return write(f)
}

// exportWriter resolves the format and its flags without writing anything.
func exportWriter(days []itinerary.ScheduleDay, opts exportOptions) (func(io.Writer) error, error) {
	switch opts.format {
	case "xlsx":
		return func(w io.Writer) error { return export.WriteXLSX(w, days) }, nil
	case "csv":
		return func(w io.Writer) error { return export.WriteCSV(w, days) }, nil
	case "html":
		return func(w io.Writer) error { return export.RenderPrintHTML(w, opts.title, days) }, nil
	case "calendar":
		loc := utils.LoadLocation(opts.timezone)
		start := utils.DefaultTripStart(time.Now(), loc)
		if opts.start != "" {
			var err error
			if start, err = utils.ParseTripStart(opts.start, loc); err != nil {
				return nil, err
			}
		}
		link, err := export.GoogleCalendarLink(days, start)
		if err != nil {
			return nil, err
		}
		return func(w io.Writer) error {
			_, err := fmt.Fprintln(w, link)
			return err
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q (use xlsx, csv, html or calendar)", utils.ErrUnsupportedExportFormat, opts.format)
	}
}
