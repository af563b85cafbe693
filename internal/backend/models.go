package backend

import (
	"bytes"
	"encoding/json"
)

// Chat is a conversation stored by the planner backend.
type Chat struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// Message is one chat turn. User messages carry a plain string in Content.
// Assistant messages carry a list of blurbs, sometimes JSON-encoded into a
// string, and optionally a plan.
type Message struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content,omitempty"`
	Plan    json.RawMessage `json:"plan,omitempty"`
	ChatID  string          `json:"chat_id,omitempty"`
}

// Blurb is a short text with an optional link, as rendered on travel cards.
type Blurb struct {
	Text string `json:"text"`
	Link string `json:"link,omitempty"`
}

// TravelBlurbs are the first three content blurbs of a plan message.
type TravelBlurbs struct {
	Flight    Blurb `json:"flight"`
	Hotel     Blurb `json:"hotel"`
	CarRental Blurb `json:"car_rental"`
}

// HasPlan reports whether the message carries a non-empty plan value.
func (m Message) HasPlan() bool {
	p := bytes.TrimSpace(m.Plan)
	return len(p) > 0 && !bytes.Equal(p, []byte("null")) && !bytes.Equal(p, []byte(`""`))
}

// Blurbs decodes Content as a list of blurbs. Content that is a string
// holding a JSON list is decoded too; any other content yields nil.
func (m Message) Blurbs() []Blurb {
	raw := bytes.TrimSpace(m.Content)
	if len(raw) == 0 {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		raw = bytes.TrimSpace([]byte(s))
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}
	blurbs := make([]Blurb, 0, len(elems))
	for _, elem := range elems {
		var b Blurb
		if err := json.Unmarshal(elem, &b); err != nil {
			b = Blurb{}
		}
		blurbs = append(blurbs, b)
	}
	return blurbs
}

// Text returns Content when it is a plain string and not an encoded list of
// blurbs.
func (m Message) Text() string {
	var s string
	if json.Unmarshal(m.Content, &s) != nil {
		return ""
	}
	if t := bytes.TrimSpace([]byte(s)); len(t) > 0 && t[0] == '[' && json.Valid(t) {
		return ""
	}
	return s
}

// TravelBlurbs maps content positions 0, 1 and 2 to flight, hotel and car
// rental. Missing positions are left empty.
func (m Message) TravelBlurbs() TravelBlurbs {
	var t TravelBlurbs
	slots := []*Blurb{&t.Flight, &t.Hotel, &t.CarRental}
	for i, b := range m.Blurbs() {
		if i >= len(slots) {
			break
		}
		*slots[i] = b
	}
	return t
}

// LatestMessageWithPlan returns the last message of the chat when it carries
// a plan. Earlier plans are not considered.
func (c *Chat) LatestMessageWithPlan() (*Message, bool) {
	if len(c.Messages) == 0 {
		return nil, false
	}
	last := c.Messages[len(c.Messages)-1]
	if !last.HasPlan() {
		return nil, false
	}
	return &last, true
}
