// Package client implements the WhatsApp Cloud API wire client used to
// deliver broadcasts.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/api"
	"github.com/popeskul/moments-broadcast/internal/config"
	"github.com/popeskul/moments-broadcast/internal/models"
)

const maxResponseBody = 64 << 10

var ErrMissingCredentials = errors.New("whatsapp credentials are not configured")

// APIError is a non-2xx answer from the Cloud API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("whatsapp api returned status %d: %s", e.StatusCode, e.Message)
}

// Permanent reports whether retrying the same request cannot succeed.
func (e *APIError) Permanent() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

type WhatsAppClient struct {
	cfg        *config.WhatsAppConfig
	httpClient *http.Client
	breaker    *CircuitBreaker
	logger     *zap.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

func NewWhatsAppClient(cfg *config.WhatsAppConfig, logger *zap.Logger) *WhatsAppClient {
	return &WhatsAppClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		breaker: NewCircuitBreaker(&cfg.CircuitBreaker, logger),
		logger:  logger,
		sleep:   sleepContext,
	}
}

// Ready reports whether the client has the credentials it needs to send.
func (c *WhatsAppClient) Ready() error {
	if strings.TrimSpace(c.cfg.Token) == "" || strings.TrimSpace(c.cfg.PhoneNumberID) == "" {
		return ErrMissingCredentials
	}
	return nil
}

// Send delivers a text message to a single recipient.
func (c *WhatsAppClient) Send(ctx context.Context, to, body string) models.DeliveryResult {
	phone := NormalizePhone(to, c.cfg.CountryCode)

	result := c.deliver(ctx, phone, models.WhatsAppTextRequest{
		MessagingProduct: "whatsapp",
		To:               phone,
		Type:             "text",
		Text:             models.WhatsAppText{Body: body},
	})
	if !result.Delivered {
		c.logger.Warn("Failed to deliver message",
			zap.String("to", phone),
			zap.Int("attempts", result.Attempts),
			zap.Bool("permanent", result.Permanent),
			zap.Error(result.Err))
	}
	return result
}

// SendMedia delivers one media message. The media type comes from the URL
// extension.
func (c *WhatsAppClient) SendMedia(ctx context.Context, to, mediaURL string) models.DeliveryResult {
	phone := NormalizePhone(to, c.cfg.CountryCode)
	mediaType := MediaType(mediaURL)

	return c.deliver(ctx, phone, map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                phone,
		"type":              mediaType,
		mediaType:           models.WhatsAppMediaLink{Link: mediaURL},
	})
}

// BackoffDelay returns the wait before retrying after the given failed
// attempt: base doubled per attempt plus random jitter.
func (c *WhatsAppClient) BackoffDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := c.cfg.BackoffBase() << (attempt - 1)
	if jitter := c.cfg.BackoffJitter(); jitter > 0 {
		delay += time.Duration(rand.Int63n(int64(jitter)))
	}
	return delay
}

// GetBreakerState returns the state of the provider circuit breaker.
func (c *WhatsAppClient) GetBreakerState() api.HealthResponseCircuitBreakerState {
	return c.breaker.GetState()
}

func (c *WhatsAppClient) GetBreakerCounts() (requests, failures uint32) {
	return c.breaker.GetCounts()
}

// deliver posts payload, retrying transient failures up to MaxAttempts.
// Attempts counts only the calls the circuit breaker let through.
func (c *WhatsAppClient) deliver(ctx context.Context, phone string, payload interface{}) models.DeliveryResult {
	var result models.DeliveryResult

	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		result.Attempts = attempt

		messageID, err := c.post(ctx, payload)
		if err == nil {
			result.Delivered = true
			result.MessageID = messageID
			result.StatusCode = http.StatusOK
			result.Err = nil
			return result
		}
		result.Err = err

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			result.StatusCode = apiErr.StatusCode
			if apiErr.Permanent() {
				result.Permanent = true
				return result
			}
		}
		if errors.Is(err, ErrCircuitOpen) {
			// rejected by the breaker without reaching the provider
			result.Attempts = attempt - 1
			return result
		}
		if ctx.Err() != nil || attempt == c.cfg.MaxAttempts {
			return result
		}

		delay := c.BackoffDelay(attempt)
		c.logger.Debug("Retrying delivery",
			zap.String("to", phone),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err))

		if err := c.sleep(ctx, delay); err != nil {
			result.Err = err
			return result
		}
	}

	return result
}

func (c *WhatsAppClient) post(ctx context.Context, payload interface{}) (string, error) {
	var messageID string

	err := c.breaker.Execute(ctx, func() error {
		reqBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(reqBody))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				c.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))

		var wr models.WhatsAppResponse
		decodeErr := json.Unmarshal(body, &wr)

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			msg := strings.TrimSpace(string(body))
			if decodeErr == nil && wr.Error != nil {
				msg = wr.Error.Message
			}
			return &APIError{StatusCode: resp.StatusCode, Message: msg}
		}

		if decodeErr == nil && len(wr.Messages) > 0 {
			messageID = wr.Messages[0].ID
		}
		return nil
	})

	return messageID, err
}

func (c *WhatsAppClient) endpoint() string {
	return fmt.Sprintf("%s/%s/%s/messages",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.APIVersion, c.cfg.PhoneNumberID)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
