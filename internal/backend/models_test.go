package backend

import (
	"encoding/json"
	"testing"
)

func TestMessage_HasPlan(t *testing.T) {
	tests := map[string]bool{
		``:                   false,
		`null`:               false,
		`""`:                 false,
		`"## Day 1"`:         true,
		`[]`:                 true,
		`[{"day_number":1}]`: true,
	}
	for plan, want := range tests {
		m := Message{Plan: json.RawMessage(plan)}
		if got := m.HasPlan(); got != want {
			t.Errorf("HasPlan(%q) = %v, want %v", plan, got, want)
		}
	}
}

func TestMessage_Blurbs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"array", `[{"text":"a"},{"text":"b","link":"x"}]`, 2},
		{"encoded array", `"[{\"text\":\"a\"},{\"text\":\"b\"},{\"text\":\"c\"},{\"text\":\"d\"}]"`, 4},
		{"plain string", `"plan me a trip"`, 0},
		{"object", `{"text":"a"}`, 0},
		{"empty", ``, 0},
		{"bad element", `[{"text":1},{"text":"ok"}]`, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Message{Content: json.RawMessage(tt.content)}
			if got := len(m.Blurbs()); got != tt.want {
				t.Errorf("Expected %d blurbs, got %d", tt.want, got)
			}
		})
	}
}

func TestMessage_TravelBlurbsPartial(t *testing.T) {
	m := Message{Content: json.RawMessage(`[{"text":"Pegasus PC1"}]`)}
	travel := m.TravelBlurbs()
	if travel.Flight.Text != "Pegasus PC1" || travel.Hotel.Text != "" || travel.CarRental.Text != "" {
		t.Errorf("Unexpected travel blurbs %+v", travel)
	}
}

func TestChat_LatestMessageWithPlan(t *testing.T) {
	chat := Chat{Messages: []Message{
		{Role: "assistant", Plan: json.RawMessage(`"## Day 1"`)},
		{Role: "user", Content: json.RawMessage(`"thanks"`)},
	}}
	if _, ok := chat.LatestMessageWithPlan(); ok {
		t.Error("Expected only the last message to be considered")
	}
	if _, ok := (&Chat{}).LatestMessageWithPlan(); ok {
		t.Error("Expected no message for an empty chat")
	}
}

func TestMessage_Text(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain string", `"Here is your plan"`, "Here is your plan"},
		{"blurb array", `[{"text":"a"}]`, ""},
		{"encoded array", `"[{\"text\":\"a\"}]"`, ""},
		{"bracketed prose", `"[draft] three days"`, "[draft] three days"},
		{"empty", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Message{Content: json.RawMessage(tt.content)}
			if got := m.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}
