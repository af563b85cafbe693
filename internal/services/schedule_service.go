package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gezi/internal/backend"
	"gezi/internal/itinerary"
	"gezi/internal/models/response_models"
	mem "gezi/pkg/memcache"
	"gezi/pkg/utils"
)

// CachedSchedule is what the service keeps per chat between requests.
type CachedSchedule struct {
	ChatID   string
	Result   itinerary.Result
	Travel   backend.TravelBlurbs
	LoadedAt time.Time
}

// CloneCachedSchedule deep-copies the schedule days.
func CloneCachedSchedule(c CachedSchedule) CachedSchedule {
	c.Result.Days = itinerary.CloneSchedule(c.Result.Days)
	return c
}

type ScheduleServiceInterface interface {
	// LoadLatest fetches the chat (the most recent one when chatID is empty),
	// parses its latest plan and replaces the cached schedule.
	LoadLatest(ctx context.Context, chatID string) (*response_models.ItineraryResponse, error)
	Get(ctx context.Context, chatID string) (*response_models.ItineraryResponse, error)
	ToggleLock(ctx context.Context, chatID string, dayIndex, activityIndex int) (*response_models.ItineraryResponse, error)
	Parse(ctx context.Context, raw json.RawMessage) (*response_models.ItineraryResponse, error)
	Put(chatID string, result itinerary.Result, travel backend.TravelBlurbs) *response_models.ItineraryResponse
	Days(chatID string) ([]itinerary.ScheduleDay, error)
	// Forget drops the cached schedule of chatID, if any.
	Forget(chatID string)
}

type ScheduleService struct {
	backend    backend.Client
	enrichment EnrichmentServiceInterface
	store      mem.Store[CachedSchedule]
	ttl        time.Duration
	loc        *time.Location
	logger     *zap.Logger
	now        func() time.Time
}

func NewScheduleService(
	client backend.Client,
	enrichmentService EnrichmentServiceInterface,
	store mem.Store[CachedSchedule],
	ttl time.Duration,
	loc *time.Location,
	logger *zap.Logger,
) ScheduleServiceInterface {
	return &ScheduleService{
		backend:    client,
		enrichment: enrichmentService,
		store:      store,
		ttl:        ttl,
		loc:        loc,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *ScheduleService) LoadLatest(ctx context.Context, chatID string) (*response_models.ItineraryResponse, error) {
	if chatID == "" {
		chats, err := s.backend.ListChats(ctx)
		if err != nil {
			return nil, backendError(err, "")
		}
		if len(chats) == 0 {
			return nil, fmt.Errorf("%w: backend has no chats", utils.ErrChatNotFound)
		}
		chatID = chats[len(chats)-1].ID
	}

	chat, err := s.backend.GetChat(ctx, chatID)
	if err != nil {
		return nil, backendError(err, chatID)
	}

	var (
		result itinerary.Result
		travel backend.TravelBlurbs
	)
	if msg, ok := chat.LatestMessageWithPlan(); ok {
		result = itinerary.ParseRawPlan(msg.Plan)
		travel = msg.TravelBlurbs()
	} else {
		result = itinerary.Result{Days: itinerary.MockSchedule(), Source: itinerary.SourceMock, Fallback: true}
	}

	s.logger.Info("Loaded itinerary",
		zap.String("chat_id", chatID),
		zap.String("source", string(result.Source)),
		zap.Bool("fallback", result.Fallback),
		zap.Int("days", len(result.Days)),
		zap.Int("activities", itinerary.ActivityCount(result.Days)))

	return s.Put(chatID, result, travel), nil
}

// Put replaces the cached schedule of chatID wholesale.
func (s *ScheduleService) Put(chatID string, result itinerary.Result, travel backend.TravelBlurbs) *response_models.ItineraryResponse {
	entry := CachedSchedule{
		ChatID:   chatID,
		Result:   result,
		Travel:   travel,
		LoadedAt: s.now(),
	}
	s.store.Set(chatID, entry, s.ttl)
	return s.view(entry)
}

func (s *ScheduleService) Get(ctx context.Context, chatID string) (*response_models.ItineraryResponse, error) {
	entry, ok := s.store.Get(chatID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrScheduleNotFound, chatID)
	}
	return s.view(entry), nil
}

func (s *ScheduleService) ToggleLock(ctx context.Context, chatID string, dayIndex, activityIndex int) (*response_models.ItineraryResponse, error) {
	var updated CachedSchedule
	err := s.store.Update(chatID, func(entry *CachedSchedule) error {
		days := entry.Result.Days
		if dayIndex < 0 || dayIndex >= len(days) {
			return fmt.Errorf("%w: day index %d", utils.ErrActivityNotFound, dayIndex)
		}
		acts := days[dayIndex].Activities
		if activityIndex < 0 || activityIndex >= len(acts) {
			return fmt.Errorf("%w: activity index %d", utils.ErrActivityNotFound, activityIndex)
		}
		acts[activityIndex].Locked = !acts[activityIndex].Locked
		updated = CloneCachedSchedule(*entry)
		return nil
	})
	if errors.Is(err, mem.ErrMissing) {
		return nil, fmt.Errorf("%w: %s", utils.ErrScheduleNotFound, chatID)
	}
	if err != nil {
		return nil, err
	}
	return s.view(updated), nil
}

func (s *ScheduleService) Parse(ctx context.Context, raw json.RawMessage) (*response_models.ItineraryResponse, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: plan is required", utils.ErrInvalidInput)
	}
	result := itinerary.ParseRawPlan(raw)
	return s.view(CachedSchedule{Result: result}), nil
}

func (s *ScheduleService) Days(chatID string) ([]itinerary.ScheduleDay, error) {
	entry, ok := s.store.Get(chatID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrScheduleNotFound, chatID)
	}
	return entry.Result.Days, nil
}

func (s *ScheduleService) Forget(chatID string) {
	s.store.Delete(chatID)
}

func (s *ScheduleService) view(entry CachedSchedule) *response_models.ItineraryResponse {
	resp := &response_models.ItineraryResponse{
		ChatID:   entry.ChatID,
		Source:   string(entry.Result.Source),
		Fallback: entry.Result.Fallback,
		Days:     s.enrichment.EnrichDays(entry.Result.Days),
		Travel:   s.enrichment.TravelCards(entry.Travel),
	}
	if !entry.LoadedAt.IsZero() {
		resp.LoadedAt = utils.FormatRFC3339In(entry.LoadedAt, s.loc)
	}
	return resp
}

func backendError(err error, chatID string) error {
	if errors.Is(err, backend.ErrChatNotFound) {
		return fmt.Errorf("%w: %s", utils.ErrChatNotFound, chatID)
	}
	return fmt.Errorf("%w: %v", utils.ErrBackendUnavailable, err)
}
