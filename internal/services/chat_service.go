package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"gezi/internal/backend"
	"gezi/internal/itinerary"
	"gezi/internal/models/response_models"
	"gezi/pkg/utils"
)

type ChatServiceInterface interface {
	CreateChat(ctx context.Context) (*response_models.ChatResponse, error)
	// SendMessage relays a user message to the planner. When the reply
	// carries a plan it replaces the cached schedule of the chat.
	SendMessage(ctx context.Context, chatID, content string) (*response_models.ChatReplyResponse, error)
	DeleteChat(ctx context.Context, chatID string) error
}

func NewChatService(client backend.Client, schedules ScheduleServiceInterface, logger *zap.Logger) ChatServiceInterface {
	return &ChatService{
		backend:   client,
		schedules: schedules,
		logger:    logger,
	}
}

type ChatService struct {
	backend   backend.Client
	schedules ScheduleServiceInterface
	logger    *zap.Logger
}

func (s *ChatService) CreateChat(ctx context.Context) (*response_models.ChatResponse, error) {
	chat, err := s.backend.CreateChat(ctx)
	if err != nil {
		return nil, backendError(err, "")
	}
	s.logger.Info("Created chat", zap.String("chat_id", chat.ID))
	return &response_models.ChatResponse{
		ID:           chat.ID,
		MessageCount: len(chat.Messages),
		CreatedAt:    chat.CreatedAt,
		UpdatedAt:    chat.UpdatedAt,
	}, nil
}

func (s *ChatService) SendMessage(ctx context.Context, chatID, content string) (*response_models.ChatReplyResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: message content cannot be empty", utils.ErrInvalidInput)
	}

	msg, err := s.backend.SendMessage(ctx, chatID, content)
	if err != nil {
		return nil, backendError(err, chatID)
	}

	resp := &response_models.ChatReplyResponse{
		ChatID: chatID,
		Role:   msg.Role,
		Text:   msg.Text(),
	}
	if msg.HasPlan() {
		result := itinerary.ParseRawPlan(msg.Plan)
		resp.Itinerary = s.schedules.Put(chatID, result, msg.TravelBlurbs())
		s.logger.Info("Chat reply replaced itinerary",
			zap.String("chat_id", chatID),
			zap.String("source", string(result.Source)),
			zap.Bool("fallback", result.Fallback),
			zap.Int("days", len(result.Days)))
	}
	return resp, nil
}

func (s *ChatService) DeleteChat(ctx context.Context, chatID string) error {
	if err := s.backend.DeleteChat(ctx, chatID); err != nil {
		return backendError(err, chatID)
	}
	s.schedules.Forget(chatID)
	s.logger.Info("Deleted chat", zap.String("chat_id", chatID))
	return nil
}
