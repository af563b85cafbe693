package response_models

import (
	"gezi/internal/enrichment"
	"gezi/internal/itinerary"
)

type ActivityView struct {
	itinerary.Activity
	ImageURL string `json:"image_url,omitempty"`
}

type DayView struct {
	Day        int            `json:"day"`
	Activities []ActivityView `json:"activities"`
}

type TravelCard struct {
	Text    string                   `json:"text"`
	Link    string                   `json:"link,omitempty"`
	Brand   *enrichment.AirlineBrand `json:"brand,omitempty"`
	LogoURL string                   `json:"logo_url,omitempty"`
}

type TravelCards struct {
	Flight    *TravelCard `json:"flight,omitempty"`
	Hotel     *TravelCard `json:"hotel,omitempty"`
	CarRental *TravelCard `json:"car_rental,omitempty"`
}

type ItineraryResponse struct {
	ChatID   string       `json:"chat_id,omitempty"`
	Source   string       `json:"source"`
	Fallback bool         `json:"fallback"`
	Days     []DayView    `json:"days"`
	Travel   *TravelCards `json:"travel,omitempty"`
	LoadedAt string       `json:"loaded_at,omitempty"`
}

type AirlineResponse struct {
	Brand   *enrichment.AirlineBrand `json:"brand"`
	LogoURL string                   `json:"logo_url,omitempty"`
}

type CityImageResponse struct {
	Found    bool   `json:"found"`
	AssetKey string `json:"asset_key,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type CalendarLinkResponse struct {
	URL string `json:"url"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

type ChatResponse struct {
	ID           string `json:"id"`
	MessageCount int    `json:"message_count"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// ChatReplyResponse is the assistant reply to a chat message. Itinerary is
// set only when the reply carried a plan.
type ChatReplyResponse struct {
	ChatID    string             `json:"chat_id"`
	Role      string             `json:"role"`
	Text      string             `json:"text,omitempty"`
	Itinerary *ItineraryResponse `json:"itinerary,omitempty"`
}
