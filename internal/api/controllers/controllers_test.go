package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gezi/internal/backend"
	"gezi/internal/enrichment"
	"gezi/internal/services"
	mem "gezi/pkg/memcache"
	"gezi/pkg/utils"
)

const structuredPlan = `[
	{"day_number": 1, "hour": "10:00", "activity_title": "Hagia Sophia", "activity_content": "Sultanahmet"},
	{"day_number": 2, "hour": "09:00", "activity_title": "Bosphorus cruise", "activity_content": "Eminönü"}
]`

type stubBackend struct {
	chats     []backend.Chat
	healthErr error
}

func (s *stubBackend) Health(ctx context.Context) error { return s.healthErr }

func (s *stubBackend) ListChats(ctx context.Context) ([]backend.Chat, error) { return s.chats, nil }

func (s *stubBackend) GetChat(ctx context.Context, chatID string) (*backend.Chat, error) {
	for i := range s.chats {
		if s.chats[i].ID == chatID {
			return &s.chats[i], nil
		}
	}
	return nil, backend.ErrChatNotFound
}

func (s *stubBackend) CreateChat(ctx context.Context) (*backend.Chat, error) {
	chat := backend.Chat{ID: "chat-2"}
	s.chats = append(s.chats, chat)
	return &chat, nil
}

func (s *stubBackend) SendMessage(ctx context.Context, chatID, content string) (*backend.Message, error) {
	if _, err := s.GetChat(ctx, chatID); err != nil {
		return nil, err
	}
	return &backend.Message{
		Role:    "assistant",
		Content: json.RawMessage(`"Your plan is ready"`),
		Plan:    json.RawMessage(`"## Day 1\n**Evening:**\n- Dinner at Karaköy"`),
	}, nil
}

func (s *stubBackend) DeleteChat(ctx context.Context, chatID string) error {
	for i := range s.chats {
		if s.chats[i].ID == chatID {
			s.chats = append(s.chats[:i], s.chats[i+1:]...)
			return nil
		}
	}
	return backend.ErrChatNotFound
}

type stubGenerator struct{ text string }

func (s stubGenerator) Generate(context.Context, string, string) (string, error) { return s.text, nil }

func (s stubGenerator) Close() error { return nil }

func newTestRouter(client *stubBackend, generator utils.TextGeneratorInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	enrich := services.NewEnrichmentService(
		enrichment.NewCityImageDetector(enrichment.DefaultCityAliases()), "/images/cities", "/images/airlines")
	schedules := services.NewScheduleService(client, enrich,
		mem.NewTTLStore(services.CloneCachedSchedule), time.Hour, time.UTC, logger)

	itineraries := NewItineraryController(schedules)
	exports := NewExportController(services.NewExportService(schedules, time.UTC))
	enrichments := NewEnrichmentController(enrich)
	plans := NewPlanController(services.NewPlanService(generator, schedules, logger))
	health := NewHealthController(client, logger)
	chats := NewChatController(services.NewChatService(client, schedules, logger))

	r := gin.New()
	r.GET("/health", health.HealthHandler)
	g := r.Group("/itinerary")
	g.GET("/latest", itineraries.LoadLatestHandler)
	g.POST("/parse", itineraries.ParseHandler)
	g.GET("/:chatId", itineraries.GetHandler)
	g.PATCH("/:chatId/days/:dayIndex/activities/:activityIndex/lock", itineraries.ToggleLockHandler)
	g.GET("/:chatId/export/:format", exports.ExportHandler)
	r.GET("/enrichment/airline", enrichments.AirlineHandler)
	r.GET("/enrichment/city-image", enrichments.CityImageHandler)
	r.POST("/plans/generate", plans.GeneratePlanHandler)
	r.POST("/chats", chats.CreateChatHandler)
	r.POST("/chats/:chatId/messages", chats.SendMessageHandler)
	r.DELETE("/chats/:chatId", chats.DeleteChatHandler)
	return r
}

func defaultBackend() *stubBackend {
	return &stubBackend{chats: []backend.Chat{{
		ID: "chat-1",
		Messages: []backend.Message{{
			Role:    "assistant",
			Content: json.RawMessage(`"[{\"text\":\"Pegasus PC 1170\"}]"`),
			Plan:    json.RawMessage(structuredPlan),
		}},
	}}}
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("Invalid JSON response: %v: %s", err, w.Body.String())
		}
	}
	return w, env
}

type itineraryData struct {
	ChatID   string `json:"chat_id"`
	Source   string `json:"source"`
	Fallback bool   `json:"fallback"`
	Days     []struct {
		Day        int `json:"day"`
		Activities []struct {
			Name     string `json:"name"`
			Locked   bool   `json:"locked"`
			ImageURL string `json:"image_url"`
		} `json:"activities"`
	} `json:"days"`
	Travel *struct {
		Flight *struct {
			Text  string `json:"text"`
			Brand *struct {
				ID string `json:"id"`
			} `json:"brand"`
			LogoURL string `json:"logo_url"`
		} `json:"flight"`
	} `json:"travel"`
}

func decodeItinerary(t *testing.T, env envelope) itineraryData {
	t.Helper()
	var data itineraryData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("Invalid itinerary data: %v", err)
	}
	return data
}

func TestItineraryFlow(t *testing.T) {
	r := newTestRouter(defaultBackend(), utils.DisabledGenerator{})

	w, env := do(t, r, http.MethodGet, "/itinerary/latest", "")
	if w.Code != http.StatusOK || env.Status != "success" {
		t.Fatalf("Expected 200 success, got %d: %s", w.Code, w.Body.String())
	}
	data := decodeItinerary(t, env)
	if data.ChatID != "chat-1" || data.Source != "structured" || len(data.Days) != 2 {
		t.Fatalf("Unexpected itinerary %+v", data)
	}
	if data.Days[0].Activities[0].ImageURL != "/images/cities/istanbul.jpg" {
		t.Errorf("Unexpected image url %q", data.Days[0].Activities[0].ImageURL)
	}
	if data.Travel == nil || data.Travel.Flight == nil || data.Travel.Flight.Brand == nil ||
		data.Travel.Flight.Brand.ID != "pegasus" || data.Travel.Flight.LogoURL != "/images/airlines/pegasus.png" {
		t.Errorf("Expected pegasus flight card, got %+v", data.Travel)
	}

	w, env = do(t, r, http.MethodPatch, "/itinerary/chat-1/days/1/activities/0/lock", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !decodeItinerary(t, env).Days[1].Activities[0].Locked {
		t.Errorf("Expected activity to be locked")
	}

	w, env = do(t, r, http.MethodGet, "/itinerary/chat-1", "")
	if w.Code != http.StatusOK || !decodeItinerary(t, env).Days[1].Activities[0].Locked {
		t.Errorf("Expected cached lock, got %d: %s", w.Code, w.Body.String())
	}
}

func TestItineraryErrors(t *testing.T) {
	r := newTestRouter(defaultBackend(), utils.DisabledGenerator{})
	do(t, r, http.MethodGet, "/itinerary/latest?chat_id=chat-1", "")

	tests := []struct {
		name   string
		method string
		path   string
		code   int
	}{
		{"unknown chat", http.MethodGet, "/itinerary/latest?chat_id=nope", http.StatusNotFound},
		{"not loaded", http.MethodGet, "/itinerary/other", http.StatusNotFound},
		{"bad index", http.MethodPatch, "/itinerary/chat-1/days/x/activities/0/lock", http.StatusBadRequest},
		{"out of range", http.MethodPatch, "/itinerary/chat-1/days/5/activities/0/lock", http.StatusNotFound},
		{"bad format", http.MethodGet, "/itinerary/chat-1/export/docx", http.StatusBadRequest},
		{"bad start", http.MethodGet, "/itinerary/chat-1/export/calendar?start=tomorrow", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, r, tt.method, tt.path, "")
			if w.Code != tt.code || env.Code != tt.code || env.Status != "error" {
				t.Errorf("Expected %d error, got %d: %s", tt.code, w.Code, w.Body.String())
			}
		})
	}
}

func TestChatHandlers(t *testing.T) {
	r := newTestRouter(defaultBackend(), utils.DisabledGenerator{})

	w, env := do(t, r, http.MethodPost, "/chats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var chat struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &chat); err != nil || chat.ID != "chat-2" {
		t.Errorf("Unexpected created chat %s (%v)", env.Data, err)
	}

	// The structured plan is cached first so the reply has something to replace.
	do(t, r, http.MethodGet, "/itinerary/latest?chat_id=chat-1", "")
	do(t, r, http.MethodPatch, "/itinerary/chat-1/days/0/activities/0/lock", "")

	w, env = do(t, r, http.MethodPost, "/chats/chat-1/messages", `{"content":"just one evening"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var reply struct {
		Role      string          `json:"role"`
		Text      string          `json:"text"`
		Itinerary json.RawMessage `json:"itinerary"`
	}
	if err := json.Unmarshal(env.Data, &reply); err != nil {
		t.Fatalf("Invalid reply data: %v", err)
	}
	if reply.Role != "assistant" || reply.Text != "Your plan is ready" {
		t.Errorf("Unexpected reply %+v", reply)
	}

	_, env = do(t, r, http.MethodGet, "/itinerary/chat-1", "")
	data := decodeItinerary(t, env)
	if data.Source != "text" || len(data.Days) != 1 || data.Days[0].Activities[0].Name != "Dinner at Karaköy" {
		t.Fatalf("Expected the reply plan to replace the cache, got %+v", data)
	}
	if data.Days[0].Activities[0].Locked {
		t.Errorf("Expected locks to be dropped with the old plan")
	}

	w, _ = do(t, r, http.MethodDelete, "/chats/chat-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w, _ = do(t, r, http.MethodGet, "/itinerary/chat-1", ""); w.Code != http.StatusNotFound {
		t.Errorf("Expected deleted chat to drop its itinerary, got %d", w.Code)
	}

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
	}{
		{"missing content", http.MethodPost, "/chats/chat-2/messages", `{}`, http.StatusBadRequest},
		{"blank content", http.MethodPost, "/chats/chat-2/messages", `{"content":"  "}`, http.StatusBadRequest},
		{"unknown chat", http.MethodPost, "/chats/chat-1/messages", `{"content":"hi"}`, http.StatusNotFound},
		{"delete twice", http.MethodDelete, "/chats/chat-1", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, r, tt.method, tt.path, tt.body)
			if w.Code != tt.code || env.Status != "error" {
				t.Errorf("Expected %d error, got %d: %s", tt.code, w.Code, w.Body.String())
			}
		})
	}
}

func TestParseHandler(t *testing.T) {
	r := newTestRouter(defaultBackend(), utils.DisabledGenerator{})

	body, _ := json.Marshal(map[string]string{"plan": "## Day 1\n**Morning:**\n- Walk in Paris"})
	w, env := do(t, r, http.MethodPost, "/itinerary/parse", string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := decodeItinerary(t, env)
	if data.Source != "text" || data.Fallback || len(data.Days) != 1 {
		t.Errorf("Unexpected parse result %+v", data)
	}

	w, env = do(t, r, http.MethodPost, "/itinerary/parse", `{"plan": 42}`)
	if w.Code != http.StatusOK || !decodeItinerary(t, env).Fallback {
		t.Errorf("Expected mock fallback for a numeric plan, got %d: %s", w.Code, w.Body.String())
	}

	if w, _ := do(t, r, http.MethodPost, "/itinerary/parse", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing plan, got %d", w.Code)
	}
}

func TestExportHandler(t *testing.T) {
	r := newTestRouter(defaultBackend(), utils.DisabledGenerator{})
	do(t, r, http.MethodGet, "/itinerary/latest", "")

	w, _ := do(t, r, http.MethodGet, "/itinerary/chat-1/export/csv", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="itinerary-chat-1.csv"` {
		t.Errorf("Unexpected disposition %q", got)
	}
	if !strings.Contains(w.Body.String(), "Hagia Sophia") {
		t.Errorf("CSV misses activities: %s", w.Body.String())
	}

	w, _ = do(t, r, http.MethodGet, "/itinerary/chat-1/export/pdf", "")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Disposition"), "inline") {
		t.Errorf("Expected inline print page, got %d %q", w.Code, w.Header().Get("Content-Disposition"))
	}

	w, env := do(t, r, http.MethodGet, "/itinerary/chat-1/export/calendar?start=2026-03-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var link struct {
		URL string `json:"url"`
	}
	json.Unmarshal(env.Data, &link)
	if !strings.Contains(link.URL, "dates=20260301T100000%2F20260301T110000") {
		t.Errorf("Unexpected calendar link %q", link.URL)
	}
}

func TestEnrichmentHandlers(t *testing.T) {
	r := newTestRouter(defaultBackend(), utils.DisabledGenerator{})

	w, env := do(t, r, http.MethodGet, "/enrichment/airline?text=ajet%20VF%20123", "")
	if w.Code != http.StatusOK || !strings.Contains(string(env.Data), `"id":"ajet"`) {
		t.Errorf("Unexpected airline response %d: %s", w.Code, w.Body.String())
	}

	w, env = do(t, r, http.MethodGet, "/enrichment/city-image?title=Barcalone%20tapas", "")
	if w.Code != http.StatusOK || !strings.Contains(string(env.Data), `"asset_key":"barcelona"`) {
		t.Errorf("Unexpected city image response %d: %s", w.Code, w.Body.String())
	}

	if w, _ := do(t, r, http.MethodGet, "/enrichment/city-image", ""); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without title and location, got %d", w.Code)
	}
}

func TestGeneratePlanHandler(t *testing.T) {
	gen := stubGenerator{text: "## Day 1\n**Morning:**\n- Coffee in Kadıköy\n## Day 2\n**Evening:**\n- Dinner at Galata"}
	r := newTestRouter(defaultBackend(), gen)

	w, env := do(t, r, http.MethodPost, "/plans/generate", `{"prompt":"2 days in Istanbul"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := decodeItinerary(t, env)
	if !strings.HasPrefix(data.ChatID, "gen-") || len(data.Days) != 2 {
		t.Fatalf("Unexpected plan %+v", data)
	}

	if w, _ := do(t, r, http.MethodGet, "/itinerary/"+data.ChatID+"/export/xlsx", ""); w.Code != http.StatusOK {
		t.Errorf("Generated plan should be exportable, got %d", w.Code)
	}
	if w, _ := do(t, r, http.MethodPost, "/plans/generate", `{"days":2}`); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without prompt, got %d", w.Code)
	}
	if w, _ := do(t, r, http.MethodPost, "/plans/generate", `{"prompt":"x","days":-1}`); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for negative days, got %d", w.Code)
	}

	r = newTestRouter(defaultBackend(), utils.DisabledGenerator{})
	if w, _ := do(t, r, http.MethodPost, "/plans/generate", `{"prompt":"Rome"}`); w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 without a provider, got %d", w.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	client := defaultBackend()
	r := newTestRouter(client, utils.DisabledGenerator{})

	_, env := do(t, r, http.MethodGet, "/health", "")
	if !strings.Contains(string(env.Data), `"backend":"ok"`) {
		t.Errorf("Expected backend ok, got %s", env.Data)
	}

	client.healthErr = errors.New("refused")
	w, env := do(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK || !strings.Contains(string(env.Data), `"backend":"unavailable"`) {
		t.Errorf("Expected backend unavailable, got %d %s", w.Code, env.Data)
	}
}
