package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"gezi/internal/itinerary"
)

func TestRenderPrintHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPrintHTML(&buf, "Bangkok <Trip>", itinerary.MockSchedule()); err != nil {
		t.Fatalf("RenderPrintHTML failed: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}

	if got := doc.Find("h1").Text(); got != "Bangkok <Trip>" {
		t.Errorf("Expected escaped title to read back, got %q", got)
	}
	if n := doc.Find("section.day").Length(); n != 2 {
		t.Errorf("Expected 2 day sections, got %d", n)
	}
	if n := doc.Find("tbody tr").Length(); n != 8 {
		t.Errorf("Expected 8 activity rows, got %d", n)
	}
	if n := doc.Find("td.status-locked").Length(); n != 3 {
		t.Errorf("Expected 3 locked rows, got %d", n)
	}

	second := doc.Find("section.day").Eq(1)
	if day, _ := second.Attr("data-day"); day != "2" {
		t.Errorf("Expected data-day 2, got %q", day)
	}
	if got := strings.TrimSpace(second.Find("td.activity").First().Text()); got != "Floating Market" {
		t.Errorf("Unexpected first activity of day 2: %q", got)
	}
}

func TestRenderPrintHTML_DefaultTitle(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPrintHTML(&buf, "", nil); err != nil {
		t.Fatalf("RenderPrintHTML failed: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	if got := doc.Find("title").Text(); got != defaultPrintTitle {
		t.Errorf("Expected default title, got %q", got)
	}
	if n := doc.Find("section.day").Length(); n != 0 {
		t.Errorf("Expected no sections, got %d", n)
	}
}
