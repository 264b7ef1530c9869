package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// UnknownErrorDescription is used when a rejection carries no description.
const UnknownErrorDescription = "Unknown Telegram error"

// SendMessageRequest is the body of a sendMessage call.
type SendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Response is the envelope every Bot API method answers with.
type Response struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

// APIError is returned when the Bot API answers with a non-2xx status.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram returned status %d: %s", e.StatusCode, e.Details())
}

// Details is the provider description, or a placeholder when there is none.
func (e *APIError) Details() string {
	if e.Description == "" {
		return UnknownErrorDescription
	}
	return e.Description
}

// Client talks to the Telegram Bot API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient returns a Client whose calls are bound by timeout.
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// SendMessage posts text to chatID using the bot identified by token.
// The provider body is decoded before the status is looked at, so an
// unreadable body is a plain error even on success.
func (c *Client) SendMessage(ctx context.Context, token, chatID, text string) (*Response, error) {
	jsonData, err := json.Marshal(SendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the URL embeds the token; never let it reach callers or logs
		return nil, fmt.Errorf("failed to send request to telegram: %w", unwrapURLError(err))
	}
	defer resp.Body.Close()

	var tgResp Response
	if err := json.NewDecoder(resp.Body).Decode(&tgResp); err != nil {
		return nil, fmt.Errorf("failed to decode telegram response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"status": resp.StatusCode,
		"ok":     tgResp.OK,
	}).Debug("Received response from Telegram")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &tgResp, &APIError{StatusCode: resp.StatusCode, Description: tgResp.Description}
	}
	return &tgResp, nil
}

func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}
