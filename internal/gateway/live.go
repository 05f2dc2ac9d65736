package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPClient abstracts the transport so tests can substitute canned
// round trips without a network.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Caller executes formatted payloads against the external assistant and
// translator services.
type Caller struct {
	client        HTTPClient
	assistantURL  string
	assistantKey  string
	translatorURL string
	translatorKey string
}

func NewCaller(client HTTPClient, assistantURL, assistantKey, translatorURL, translatorKey string) *Caller {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Caller{
		client:        client,
		assistantURL:  strings.TrimSuffix(assistantURL, "/"),
		assistantKey:  assistantKey,
		translatorURL: strings.TrimSuffix(translatorURL, "/"),
		translatorKey: translatorKey,
	}
}

// Call dispatches the payload to its target endpoint and returns the raw
// text of the response. Transport failures map to ErrUnreachable, non-2xx
// statuses to RejectedError, and unparseable bodies to ErrMalformedResponse.
func (c *Caller) Call(ctx context.Context, payload *Payload) (string, error) {
	switch payload.Endpoint {
	case EndpointChat:
		return c.chat(ctx, payload.Chat)
	case EndpointTranslate:
		return c.translate(ctx, payload.Translate)
	default:
		return "", fmt.Errorf("unsupported endpoint %q: %w", payload.Endpoint, ErrMalformedRequest)
	}
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Caller) chat(ctx context.Context, req *ChatRequest) (string, error) {
	body, err := c.post(ctx, c.assistantURL+"/v1/chat/completions", c.assistantKey, req)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decoding chat response: %w", ErrMalformedResponse)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat response contained no choices: %w", ErrMalformedResponse)
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (c *Caller) translate(ctx context.Context, req *TranslateRequest) (string, error) {
	body, err := c.post(ctx, c.translatorURL+"/translate", c.translatorKey, req)
	if err != nil {
		return "", err
	}

	var parsed translateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decoding translate response: %w", ErrMalformedResponse)
	}
	if parsed.TranslatedText == "" {
		return "", fmt.Errorf("translate response missing translatedText: %w", ErrMalformedResponse)
	}

	return parsed.TranslatedText, nil
}

func (c *Caller) post(ctx context.Context, url, key string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", url, ErrUnreachable)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", ErrUnreachable)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &RejectedError{
			Code:    res.StatusCode,
			Message: rejectionMessage(body),
		}
	}

	return body, nil
}

// rejectionMessage extracts a short diagnostic from an error body without
// trusting its shape.
func rejectionMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	if msg == "" {
		msg = "request rejected"
	}
	return msg
}
