// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mailer sends transactional email through an HTTP email provider.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// sendTimeout caps every provider request.
const sendTimeout = 10 * time.Second

// Email is one outbound transactional message.
type Email struct {
	From     string `json:"from"`
	To       string `json:"to"`
	ReplyTo  string `json:"reply_to,omitempty"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html,omitempty"`
	TextBody string `json:"text,omitempty"`
}

// Sender delivers transactional email and returns the provider message id.
// Implementations must be safe for concurrent use; the contact form sends two
// messages in parallel.
type Sender interface {
	Send(ctx context.Context, email Email) (string, error)
}

// Client sends email through a JSON-over-HTTP provider API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a mail client for the given provider endpoint.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: sendTimeout},
	}
}

// sendResponse is the provider's reply to a successful send.
type sendResponse struct {
	ID string `json:"id"`
}

// errorResponse is the provider's reply to a rejected send.
type errorResponse struct {
	Message string `json:"message"`
}

// Send delivers one email and returns the provider message id. The context
// bounds the whole request on top of the client timeout.
func (c *Client) Send(ctx context.Context, email Email) (string, error) {
	body, err := json.Marshal(email)
	if err != nil {
		return "", fmt.Errorf("encoding email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("email send request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Message != "" {
			return "", fmt.Errorf("email provider rejected send (status %d): %s", resp.StatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("email provider rejected send (status %d)", resp.StatusCode)
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse provider response: %w", err)
	}
	if result.ID == "" {
		return "", fmt.Errorf("provider response missing message id")
	}

	return result.ID, nil
}
