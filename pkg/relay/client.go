// Package relay calls the external agent endpoint a bot is wired to
// and normalizes its replies.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single agent round trip. Agents can be slow;
// testers are told to wait.
const DefaultTimeout = 60 * time.Second

// SessionIDPrefix namespaces our session tokens on the agent side so
// they never collide with sessions opened by other tools.
const SessionIDPrefix = "octobot-"

type Request struct {
	Question       string         `json:"question"`
	OverrideConfig OverrideConfig `json:"overrideConfig"`
}

type OverrideConfig struct {
	SessionID string `json:"sessionId"`
}

// response covers both reply shapes the agent endpoints are known to
// return.
type response struct {
	Text    string `json:"text"`
	Message string `json:"message"`
}

// Result is the outcome of one agent call, including the metadata we
// persist alongside the bot message.
type Result struct {
	Reply          string
	UpstreamStatus int
	Latency        time.Duration
}

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// NewClientWithHTTP is used by tests to swap in a stub transport.
func NewClientWithHTTP(hc *http.Client) *Client {
	return &Client{httpClient: hc}
}

// Ask sends the tester's question to the agent at apiURL and returns
// the agent's reply. apiKey is optional; when set it is passed as a
// bearer token. sessionToken scopes agent-side memory to one chat
// session.
func (c *Client) Ask(ctx context.Context, apiURL, apiKey, sessionToken, question string) (*Result, error) {
	payload := Request{
		Question: question,
		OverrideConfig: OverrideConfig{
			SessionID: SessionIDPrefix + sessionToken,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("agent request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read agent response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("agent returned status %d", resp.StatusCode)
	}

	var parsed response
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode agent response: %w", err)
	}

	reply := parsed.Text
	if reply == "" {
		reply = parsed.Message
	}
	if reply == "" {
		reply = "No response from agent"
	}

	return &Result{
		Reply:          reply,
		UpstreamStatus: resp.StatusCode,
		Latency:        latency,
	}, nil
}
