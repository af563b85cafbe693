package services

import (
	"context"
	"errors"
	"sync"

	"gezi/internal/backend"
	"gezi/internal/models/db_models"
)

type fakeBackend struct {
	chats     []backend.Chat
	listErr   error
	getErr    error
	healthErr error

	reply    *backend.Message
	writeErr error
	sent     []string
	deleted  []string
}

func (f *fakeBackend) Health(ctx context.Context) error { return f.healthErr }

func (f *fakeBackend) ListChats(ctx context.Context) ([]backend.Chat, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.chats, nil
}

func (f *fakeBackend) GetChat(ctx context.Context, chatID string) (*backend.Chat, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.chats {
		if f.chats[i].ID == chatID {
			c := f.chats[i]
			return &c, nil
		}
	}
	return nil, backend.ErrChatNotFound
}

func (f *fakeBackend) CreateChat(ctx context.Context) (*backend.Chat, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	chat := backend.Chat{ID: "created", CreatedAt: "2026-10-14T09:00:00", UpdatedAt: "2026-10-14T09:00:00"}
	f.chats = append(f.chats, chat)
	return &chat, nil
}

func (f *fakeBackend) SendMessage(ctx context.Context, chatID, content string) (*backend.Message, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	f.sent = append(f.sent, content)
	if f.reply == nil {
		return &backend.Message{Role: "assistant", ChatID: chatID}, nil
	}
	reply := *f.reply
	return &reply, nil
}

func (f *fakeBackend) DeleteChat(ctx context.Context, chatID string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.deleted = append(f.deleted, chatID)
	return nil
}

type fakeGenerator struct {
	mu        sync.Mutex
	responses []string
	errs      []error
	calls     int
	systems   []string
}

func (f *fakeGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	f.systems = append(f.systems, system)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("no more responses")
}

func (f *fakeGenerator) Close() error { return nil }

type fakeAliasRepo struct {
	rows    []db_models.CityAlias
	listErr error
	seedErr error
	seeded  int
}

func (f *fakeAliasRepo) ListAliases(ctx context.Context) ([]db_models.CityAlias, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

func (f *fakeAliasRepo) SeedAliases(ctx context.Context, aliases []db_models.CityAlias) (int, error) {
	if f.seedErr != nil {
		return 0, f.seedErr
	}
	if len(f.rows) > 0 {
		return 0, nil
	}
	f.rows = append(f.rows, aliases...)
	f.seeded = len(aliases)
	return len(aliases), nil
}
