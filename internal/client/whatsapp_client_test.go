package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/api"
	"github.com/popeskul/moments-broadcast/internal/client"
	"github.com/popeskul/moments-broadcast/internal/config"
)

func testWhatsAppConfig(baseURL string) *config.WhatsAppConfig {
	return &config.WhatsAppConfig{
		BaseURL:         baseURL,
		APIVersion:      "v18.0",
		Token:           "test-token",
		PhoneNumberID:   "1234567890",
		CountryCode:     "27",
		Timeout:         5,
		MaxAttempts:     3,
		BackoffBaseMs:   1,
		BackoffJitterMs: 0,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:      3,
			Interval:         60,
			Timeout:          60,
			FailureRatio:     0.9,
			ConsecutiveFails: 100,
		},
	}
}

type recordedRequest struct {
	path    string
	auth    string
	payload map[string]interface{}
}

type fakeProvider struct {
	mu       sync.Mutex
	requests []recordedRequest
	handle   func(n int, payload map[string]interface{}) (int, string)
}

func (f *fakeProvider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&payload)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{path: r.URL.Path, auth: r.Header.Get("Authorization"), payload: payload})
	n := len(f.requests)
	f.mu.Unlock()

	status, body := f.handle(n, payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (f *fakeProvider) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func TestWhatsAppClient_Ready(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		phoneID string
		wantErr error
	}{
		{name: "configured", token: "t", phoneID: "p"},
		{name: "missing token", token: "", phoneID: "p", wantErr: client.ErrMissingCredentials},
		{name: "missing phone id", token: "t", phoneID: " ", wantErr: client.ErrMissingCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testWhatsAppConfig("http://localhost")
			cfg.Token = tt.token
			cfg.PhoneNumberID = tt.phoneID

			err := client.NewWhatsAppClient(cfg, zap.NewNop()).Ready()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWhatsAppClient_Send_Success(t *testing.T) {
	provider := &fakeProvider{handle: func(n int, _ map[string]interface{}) (int, string) {
		return http.StatusOK, `{"messaging_product":"whatsapp","messages":[{"id":"wamid.HBgL"}]}`
	}}
	server := httptest.NewServer(provider)
	defer server.Close()

	c := client.NewWhatsAppClient(testWhatsAppConfig(server.URL), zap.NewNop())

	result := c.Send(context.Background(), "082 123 4567", "Water outage in Ward 5")

	assert.True(t, result.Delivered)
	assert.Equal(t, "wamid.HBgL", result.MessageID)
	assert.Equal(t, 1, result.Attempts)
	assert.NoError(t, result.Err)

	require.Equal(t, 1, provider.count())
	req := provider.requests[0]
	assert.Equal(t, "/v18.0/1234567890/messages", req.path)
	assert.Equal(t, "Bearer test-token", req.auth)
	assert.Equal(t, "whatsapp", req.payload["messaging_product"])
	assert.Equal(t, "27821234567", req.payload["to"])
	assert.Equal(t, "text", req.payload["type"])
	assert.Equal(t, map[string]interface{}{"body": "Water outage in Ward 5"}, req.payload["text"])
}

func TestWhatsAppClient_Send_MissingMessageID(t *testing.T) {
	server := httptest.NewServer(&fakeProvider{handle: func(int, map[string]interface{}) (int, string) {
		return http.StatusOK, `{}`
	}})
	defer server.Close()

	result := client.NewWhatsAppClient(testWhatsAppConfig(server.URL), zap.NewNop()).
		Send(context.Background(), "27821234567", "hello")

	assert.True(t, result.Delivered)
	assert.Empty(t, result.MessageID)
}

func TestWhatsAppClient_Send_Failure(t *testing.T) {
	tests := []struct {
		name              string
		handle            func(n int) (int, string)
		expectedDelivered bool
		expectedAttempts  int
		expectedRequests  int
		expectedPermanent bool
		expectedStatus    int
	}{
		{
			name: "client error is permanent",
			handle: func(int) (int, string) {
				return http.StatusBadRequest, `{"error":{"message":"Invalid parameter","code":100}}`
			},
			expectedAttempts:  1,
			expectedRequests:  1,
			expectedPermanent: true,
			expectedStatus:    http.StatusBadRequest,
		},
		{
			name: "server errors exhaust attempts",
			handle: func(int) (int, string) {
				return http.StatusServiceUnavailable, `{"error":{"message":"temporarily unavailable","code":2}}`
			},
			expectedAttempts: 3,
			expectedRequests: 3,
			expectedStatus:   http.StatusServiceUnavailable,
		},
		{
			name: "transient error then success",
			handle: func(n int) (int, string) {
				if n < 3 {
					return http.StatusBadGateway, `bad gateway`
				}
				return http.StatusOK, `{"messages":[{"id":"wamid.retry"}]}`
			},
			expectedDelivered: true,
			expectedAttempts:  3,
			expectedRequests:  3,
			expectedStatus:    http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{handle: func(n int, _ map[string]interface{}) (int, string) {
				return tt.handle(n)
			}}
			server := httptest.NewServer(provider)
			defer server.Close()

			c := client.NewWhatsAppClient(testWhatsAppConfig(server.URL), zap.NewNop())
			result := c.Send(context.Background(), "27821234567", "hello")

			assert.Equal(t, tt.expectedDelivered, result.Delivered)
			assert.Equal(t, tt.expectedAttempts, result.Attempts)
			assert.Equal(t, tt.expectedPermanent, result.Permanent)
			assert.Equal(t, tt.expectedStatus, result.StatusCode)
			assert.Equal(t, tt.expectedRequests, provider.count())
			if !tt.expectedDelivered {
				assert.Error(t, result.Err)
			}
		})
	}
}

func TestWhatsAppClient_Send_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	result := client.NewWhatsAppClient(testWhatsAppConfig(url), zap.NewNop()).
		Send(context.Background(), "27821234567", "hello")

	assert.False(t, result.Delivered)
	assert.False(t, result.Permanent)
	assert.Equal(t, 3, result.Attempts)
	assert.Error(t, result.Err)
}

func TestWhatsAppClient_SendMedia(t *testing.T) {
	provider := &fakeProvider{handle: func(n int, payload map[string]interface{}) (int, string) {
		if payload["type"] == client.MediaTypeVideo {
			return http.StatusBadRequest, `{"error":{"message":"unsupported media"}}`
		}
		return http.StatusOK, `{"messages":[{"id":"wamid.m"}]}`
	}}
	server := httptest.NewServer(provider)
	defer server.Close()

	c := client.NewWhatsAppClient(testWhatsAppConfig(server.URL), zap.NewNop())

	image := c.SendMedia(context.Background(), "0821234567", "https://cdn.example.org/a.png")
	assert.True(t, image.Delivered)
	assert.Equal(t, "wamid.m", image.MessageID)

	video := c.SendMedia(context.Background(), "0821234567", "https://cdn.example.org/b.mp4")
	assert.False(t, video.Delivered)
	assert.True(t, video.Permanent)
	assert.Equal(t, 1, video.Attempts)

	document := c.SendMedia(context.Background(), "0821234567", "https://cdn.example.org/c.pdf")
	assert.True(t, document.Delivered)

	require.Equal(t, 3, provider.count())
	first := provider.requests[0].payload
	assert.Equal(t, "image", first["type"])
	assert.Equal(t, "27821234567", first["to"])
	assert.Equal(t, map[string]interface{}{"link": "https://cdn.example.org/a.png"}, first["image"])
	assert.Equal(t, "document", provider.requests[2].payload["type"])
}

func TestWhatsAppClient_Send_CircuitOpen(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := testWhatsAppConfig(server.URL)
	cfg.CircuitBreaker.ConsecutiveFails = 2
	cfg.CircuitBreaker.FailureRatio = 0.5
	c := client.NewWhatsAppClient(cfg, zap.NewNop())

	first := c.Send(context.Background(), "27821234567", "hi")
	assert.False(t, first.Delivered)
	assert.Equal(t, 2, first.Attempts, "the third try is rejected by the open breaker")
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, api.Open, c.GetBreakerState())

	before := calls.Load()
	second := c.Send(context.Background(), "27821234568", "hi")
	assert.False(t, second.Delivered)
	assert.ErrorIs(t, second.Err, client.ErrCircuitOpen)
	assert.Equal(t, 0, second.Attempts, "a rejected call never reached the provider")
	assert.Equal(t, before, calls.Load())
}

func TestWhatsAppClient_Send_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := testWhatsAppConfig(server.URL)
	cfg.BackoffBaseMs = 10_000
	c := client.NewWhatsAppClient(cfg, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	result := c.Send(ctx, "27821234567", "hi")

	assert.False(t, result.Delivered)
	assert.ErrorIs(t, result.Err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestWhatsAppClient_BackoffDelay(t *testing.T) {
	cfg := testWhatsAppConfig("http://localhost")
	cfg.BackoffBaseMs = 1000
	cfg.BackoffJitterMs = 1000
	c := client.NewWhatsAppClient(cfg, zap.NewNop())

	for attempt, base := range map[int]time.Duration{1: time.Second, 2: 2 * time.Second, 3: 4 * time.Second} {
		for i := 0; i < 20; i++ {
			d := c.BackoffDelay(attempt)
			assert.GreaterOrEqual(t, d, base)
			assert.Less(t, d, base+time.Second)
		}
	}
}
