package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrChatNotFound = errors.New("chat not found")
	ErrUnavailable  = errors.New("planner backend unavailable")
)

// Client talks to the conversational planner backend.
type Client interface {
	Health(ctx context.Context) error
	ListChats(ctx context.Context) ([]Chat, error)
	GetChat(ctx context.Context, chatID string) (*Chat, error)
	CreateChat(ctx context.Context) (*Chat, error)
	// SendMessage posts a user message and returns the assistant reply,
	// which carries the plan when the planner produced one.
	SendMessage(ctx context.Context, chatID, content string) (*Message, error)
	DeleteChat(ctx context.Context, chatID string) error
}

type httpClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client. A zero timeout leaves requests bounded
// only by their context.
func NewClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) Health(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	return c.do(ctx, http.MethodGet, "/health", nil, &out)
}

func (c *httpClient) ListChats(ctx context.Context) ([]Chat, error) {
	var chats []Chat
	if err := c.do(ctx, http.MethodGet, "/api/chats", nil, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (c *httpClient) GetChat(ctx context.Context, chatID string) (*Chat, error) {
	var chat Chat
	if err := c.do(ctx, http.MethodGet, chatPath(chatID), nil, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (c *httpClient) CreateChat(ctx context.Context) (*Chat, error) {
	var chat Chat
	if err := c.do(ctx, http.MethodPost, "/api/chat", nil, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (c *httpClient) SendMessage(ctx context.Context, chatID, content string) (*Message, error) {
	body := struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}{Role: "user", Content: content}

	var msg Message
	if err := c.do(ctx, http.MethodPost, chatPath(chatID)+"/message", body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *httpClient) DeleteChat(ctx context.Context, chatID string) error {
	var out struct {
		Message string `json:"message"`
	}
	return c.do(ctx, http.MethodDelete, chatPath(chatID), nil, &out)
}

func chatPath(chatID string) string {
	return "/api/chat/" + url.PathEscape(chatID)
}

// do sends a JSON request and decodes a 200 response into out. A nil body
// sends no payload.
func (c *httpClient) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s request: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrChatNotFound, errorDetail(resp.Body))
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: %s %s: status %d: %s", ErrUnavailable, method, path, resp.StatusCode, errorDetail(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// errorDetail extracts the "detail" or "message" field of an error body.
func errorDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return "no detail"
	}
	var e struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &e) == nil {
		if e.Detail != "" {
			return e.Detail
		}
		if e.Message != "" {
			return e.Message
		}
	}
	return string(data)
}
