// Package avenbot is a small typed client for the avenbot chat API.
package avenbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// Client talks to an avenbot server over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the Bearer token sent with every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

// New creates a client for the server at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("avenbot: base URL required")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Source is one cited passage behind an answer.
type Source struct {
	Source       string  `json:"source"`
	Title        string  `json:"title"`
	Score        float64 `json:"score"`
	Domain       string  `json:"domain"`
	VerifiedAven bool    `json:"verified_aven"`
	CrawlMethod  string  `json:"crawl_method"`
	SourceType   string  `json:"source_type"`
	IsAvenDomain bool    `json:"is_aven_domain"`
}

// Answer is the chat API response.
type Answer struct {
	Response       string   `json:"response"`
	ConversationID string   `json:"conversation_id"`
	Sources        []Source `json:"sources"`
}

// Health is the health API response.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type chatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// Chat sends one question. conversationID may be empty; the server mints
// one and returns it for follow-up calls.
func (c *Client) Chat(ctx context.Context, message, conversationID string) (Answer, error) {
	body, err := json.Marshal(chatRequest{Message: message, ConversationID: conversationID})
	if err != nil {
		return Answer{}, fmt.Errorf("avenbot: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return Answer{}, fmt.Errorf("avenbot: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Answer{}, fmt.Errorf("avenbot: chat request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Answer{}, apiErrorFromResponse(resp)
	}

	var ans Answer
	if err := json.NewDecoder(resp.Body).Decode(&ans); err != nil {
		return Answer{}, fmt.Errorf("avenbot: decode response: %w", err)
	}
	return ans, nil
}

// HealthCheck fetches the server health report. A degraded server returns
// the report with a nil error; only transport and decoding failures error.
func (c *Client) HealthCheck(ctx context.Context) (Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return Health{}, fmt.Errorf("avenbot: build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Health{}, fmt.Errorf("avenbot: health request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var h Health
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return Health{}, fmt.Errorf("avenbot: decode response: %w", err)
	}
	return h, nil
}
