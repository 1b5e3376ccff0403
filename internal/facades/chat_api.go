package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/sync/semaphore"

	"github.com/sbilibin2017/gw-currency-chat/internal/logger"
	"github.com/sbilibin2017/gw-currency-chat/internal/models"
)

// ChatPath is the chat endpoint relative to the API base URL.
const ChatPath = "/api/chat"

var ErrInvalidResponse = errors.New("invalid chat response")

// ChatAPIFacade talks to the chat backend over HTTP.
// It keeps at most one request in flight; further callers wait their turn.
type ChatAPIFacade struct {
	client   *http.Client
	endpoint string
	inFlight *semaphore.Weighted
}

// NewChatAPIFacade creates a facade for the backend at baseURL.
// A nil client means http.DefaultClient.
func NewChatAPIFacade(baseURL string, client *http.Client) (*ChatAPIFacade, error) {
	endpoint, err := url.JoinPath(baseURL, ChatPath)
	if err != nil {
		return nil, fmt.Errorf("invalid chat API url %q: %w", baseURL, err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &ChatAPIFacade{
		client:   client,
		endpoint: endpoint,
		inFlight: semaphore.NewWeighted(1),
	}, nil
}

// Endpoint returns the full chat URL.
func (f *ChatAPIFacade) Endpoint() string {
	return f.endpoint
}

// Send posts message and decodes the reply envelope.
// The envelope is decoded whatever the status code, which is returned as well.
func (f *ChatAPIFacade) Send(ctx context.Context, message string) (*models.ChatEnvelope, int, error) {
	if err := f.inFlight.Acquire(ctx, 1); err != nil {
		return nil, 0, err
	}
	defer f.inFlight.Release(1)

	body, err := json.Marshal(models.ChatRequest{Message: message})
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to send chat message", "endpoint", f.endpoint, "error", err)
		return nil, 0, err
	}
	defer resp.Body.Close()

	var env models.ChatEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		logger.Log.Errorw("failed to decode chat response", "status", resp.StatusCode, "error", err)
		return nil, resp.StatusCode, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return &env, resp.StatusCode, nil
}
