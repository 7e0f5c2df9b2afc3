// Package sms sends customer text messages through an HTTP SMS gateway.
package sms

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"fulfillment/internal/pkg/errs"
)

// Client posts messages to the gateway's send endpoint. It implements
// ports.SMSSender; callers treat failures as best-effort.
type Client struct {
	http   *resty.Client
	apiKey string
}

// NewClient creates a gateway client. baseURL is the gateway root
// (the send endpoint is derived from it); apiKey authenticates requests.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}

	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second),
		apiKey: apiKey,
	}, nil
}

type sendRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Send posts one message. A non-2xx gateway response is an error; the
// dispatcher logs it and moves on.
func (c *Client) Send(ctx context.Context, phone, message string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetBody(sendRequest{Phone: phone, Message: message}).
		Post("/v1/sms/send")
	if err != nil {
		return fmt.Errorf("send sms to %s: %w", phone, err)
	}

	if resp.IsError() {
		return fmt.Errorf("sms gateway returned status %d: %s", resp.StatusCode(), resp.Body())
	}

	return nil
}
