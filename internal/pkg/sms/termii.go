// Package sms delivers text messages through the Termii HTTP API.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Config holds Termii API configuration
type Config struct {
	BaseURL  string
	APIKey   string
	SenderID string
}

// Client sends SMS via the Termii API
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new Termii SMS client
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = "https://api.ng.termii.com"
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type sendRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	SMS     string `json:"sms"`
	Type    string `json:"type"`
	Channel string `json:"channel"`
	APIKey  string `json:"api_key"`
}

// Send delivers a plain text message to the given phone number
func (c *Client) Send(ctx context.Context, to, text string) error {
	if c.config.APIKey == "" {
		return fmt.Errorf("sms not configured")
	}

	request := sendRequest{
		To:      strings.TrimPrefix(to, "+"),
		From:    c.config.SenderID,
		SMS:     text,
		Type:    "plain",
		Channel: "dnd",
		APIKey:  c.config.APIKey,
	}

	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.config.BaseURL, "/") + "/api/sms/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("termii returned status %d", resp.StatusCode)
	}

	return nil
}

// SendOTP delivers a login code to the given phone number
func (c *Client) SendOTP(ctx context.Context, to, code string) error {
	text := fmt.Sprintf("Your Super Mom Maker login code is %s. It expires in 10 minutes.", code)
	return c.Send(ctx, to, text)
}
