package handler_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/api"
	"github.com/popeskul/moments-broadcast/internal/client"
	"github.com/popeskul/moments-broadcast/internal/handler"
	"github.com/popeskul/moments-broadcast/internal/middleware"
	"github.com/popeskul/moments-broadcast/internal/models"
	"github.com/popeskul/moments-broadcast/internal/service"
	"github.com/popeskul/moments-broadcast/internal/service/mocks"
)

type serviceMocks struct {
	broadcast  *mocks.MockBroadcastService
	dispatcher *mocks.MockDispatchService
	query      *mocks.MockQueryService
}

func newRouter(t *testing.T) (http.Handler, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		broadcast:  mocks.NewMockBroadcastService(ctrl),
		dispatcher: mocks.NewMockDispatchService(ctrl),
		query:      mocks.NewMockQueryService(ctrl),
	}
	svc := &service.Service{
		Broadcast:  m.broadcast,
		Dispatcher: m.dispatcher,
		Query:      m.query,
	}

	return api.Handler(handler.NewHandler(svc, zap.NewNop())), m
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestHandler_SendBroadcast(t *testing.T) {
	validBody := api.SendBroadcastRequest{
		MomentId:   ptr("moment-1"),
		Message:    "Water outage in Soweto",
		Recipients: []string{"27821234567", "0821234568"},
		MediaUrls:  ptr([]string{"https://cdn.example/map.png"}),
	}

	t.Run("accepted", func(t *testing.T) {
		router, m := newRouter(t)

		created := &models.Broadcast{ID: "b-1", Status: models.StatusPending, RecipientCount: 2}
		m.broadcast.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req service.BroadcastRequest) (*models.Broadcast, error) {
				assert.Equal(t, "moment-1", req.MomentID)
				assert.Equal(t, validBody.Recipients, req.Recipients)
				assert.Equal(t, []string{"https://cdn.example/map.png"}, req.MediaURLs)
				return created, nil
			})
		m.dispatcher.EXPECT().SubmitBroadcast(gomock.Any(), created, gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/broadcasts", jsonBody(t, validBody)))

		assert.Equal(t, http.StatusAccepted, w.Code)
		var resp api.BroadcastAccepted
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "b-1", resp.BroadcastId)
		assert.Equal(t, api.BroadcastStatusPending, resp.Status)
		assert.Equal(t, 2, resp.TotalRecipients)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/broadcasts", bytes.NewReader([]byte("{"))))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, middleware.ErrorCodeValidation, decodeError(t, w.Body.Bytes()).Error)
	})

	t.Run("validation error", func(t *testing.T) {
		router, m := newRouter(t)

		m.broadcast.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, &service.ValidationError{Fields: []string{"message is required", "recipients are required"}})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/broadcasts", jsonBody(t, api.SendBroadcastRequest{})))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w.Body.Bytes())
		assert.Equal(t, middleware.ErrorCodeValidation, resp.Error)
		require.NotNil(t, resp.Details)
		assert.Equal(t, []string{"message is required", "recipients are required"}, *resp.Details)
	})

	t.Run("missing credentials", func(t *testing.T) {
		router, m := newRouter(t)

		m.broadcast.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, client.ErrMissingCredentials)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/broadcasts", jsonBody(t, validBody)))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, middleware.ErrorCodeConfiguration, decodeError(t, w.Body.Bytes()).Error)
	})

	t.Run("create failure", func(t *testing.T) {
		router, m := newRouter(t)

		m.broadcast.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/broadcasts", jsonBody(t, validBody)))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, middleware.ErrorCodeInternal, decodeError(t, w.Body.Bytes()).Error)
	})

	t.Run("queue full", func(t *testing.T) {
		router, m := newRouter(t)

		created := &models.Broadcast{ID: "b-1", Status: models.StatusPending, RecipientCount: 2}
		m.broadcast.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)
		m.dispatcher.EXPECT().SubmitBroadcast(gomock.Any(), created, gomock.Any()).Return(service.ErrQueueFull)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/broadcasts", jsonBody(t, validBody)))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, middleware.ErrorCodeUnavailable, decodeError(t, w.Body.Bytes()).Error)
	})
}

func TestHandler_ListBroadcasts(t *testing.T) {
	t.Run("binds filters", func(t *testing.T) {
		router, m := newRouter(t)

		started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		m.query.EXPECT().ListBroadcasts(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p service.ListParams) (*service.BroadcastPage, error) {
				assert.Equal(t, "moment-1", p.MomentID)
				assert.Equal(t, models.StatusCompleted, p.Status)
				require.NotNil(t, p.From)
				assert.True(t, p.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
				assert.Nil(t, p.To)
				assert.Equal(t, 2, p.Page)
				assert.Equal(t, 10, p.Limit)
				return &service.BroadcastPage{
					Broadcasts: []*models.Broadcast{{
						ID:             "b-1",
						MomentID:       sql.NullString{String: "moment-1", Valid: true},
						Status:         models.StatusCompleted,
						RecipientCount: 3,
						SuccessCount:   2,
						FailureCount:   1,
						StartedAt:      sql.NullTime{Time: started, Valid: true},
						AuthorityContext: &models.AuthoritySnapshot{
							AuthorityID: "auth-1",
							BlastRadius: 3,
						},
					}},
					Page:  2,
					Limit: 10,
					Total: 11,
				}, nil
			})

		w := httptest.NewRecorder()
		url := "/broadcasts?moment_id=moment-1&status=completed&from=2026-03-01T00:00:00Z&page=2&limit=10"
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp api.BroadcastListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Broadcasts, 1)
		b := resp.Broadcasts[0]
		assert.Equal(t, "b-1", b.Id)
		require.NotNil(t, b.MomentId)
		assert.Equal(t, "moment-1", *b.MomentId)
		require.NotNil(t, b.StartedAt)
		assert.Nil(t, b.CompletedAt)
		require.NotNil(t, b.AuthorityContext)
		assert.Equal(t, "auth-1", b.AuthorityContext.AuthorityId)
		assert.Equal(t, api.Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 11, ItemsPerPage: 10}, resp.Pagination)
	})

	t.Run("invalid page parameter", func(t *testing.T) {
		router, _ := newRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broadcasts?page=abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		router, m := newRouter(t)

		m.query.EXPECT().ListBroadcasts(gomock.Any(), gomock.Any()).
			Return(nil, &service.ValidationError{Fields: []string{"status must be one of pending, processing, completed, failed"}})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broadcasts?status=unknown", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, middleware.ErrorCodeValidation, decodeError(t, w.Body.Bytes()).Error)
	})

	t.Run("repository failure", func(t *testing.T) {
		router, m := newRouter(t)

		m.query.EXPECT().ListBroadcasts(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broadcasts", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandler_GetBroadcast(t *testing.T) {
	t.Run("with batches", func(t *testing.T) {
		router, m := newRouter(t)

		m.query.EXPECT().GetBroadcast(gomock.Any(), "b-1").Return(&service.BroadcastDetails{
			Broadcast: &models.Broadcast{ID: "b-1", Status: models.StatusCompleted, RecipientCount: 51},
			Batches: []*models.BroadcastBatch{
				{ID: "batch-1", BatchNumber: 1, Recipients: make([]string, 50), Status: models.StatusCompleted, SuccessCount: 50},
				{ID: "batch-2", BatchNumber: 2, Recipients: make([]string, 1), Status: models.StatusCompleted, FailureCount: 1},
			},
		}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broadcasts/b-1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp api.Broadcast
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Batches)
		require.Len(t, *resp.Batches, 2)
		assert.Equal(t, 50, (*resp.Batches)[0].RecipientCount)
		assert.Equal(t, 2, (*resp.Batches)[1].BatchNumber)
		assert.Equal(t, 1, (*resp.Batches)[1].FailureCount)
	})

	t.Run("not found", func(t *testing.T) {
		router, m := newRouter(t)

		m.query.EXPECT().GetBroadcast(gomock.Any(), "missing").Return(nil, service.ErrNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broadcasts/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, middleware.ErrorCodeNotFound, decodeError(t, w.Body.Bytes()).Error)
	})
}

func TestHandler_GetBroadcastAnalytics(t *testing.T) {
	router, m := newRouter(t)

	m.query.EXPECT().GetAnalytics(gomock.Any(), 30).Return(&service.AnalyticsSummary{
		Days: 30,
		BroadcastAnalytics: models.BroadcastAnalytics{
			TotalBroadcasts: 4,
			TotalRecipients: 200,
			TotalSuccess:    150,
			TotalFailures:   50,
		},
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broadcasts/analytics?days=30", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp api.AnalyticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 30, resp.Days)
	assert.Equal(t, 4, resp.TotalBroadcasts)
	assert.InDelta(t, 75.0, resp.SuccessRate, 0.001)
}

func TestHandler_DispatchMoment(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "queued", expectedStatus: http.StatusAccepted},
		{name: "already dispatched", err: service.ErrAlreadyDispatched, expectedStatus: http.StatusConflict, expectedCode: "ALREADY_DISPATCHED"},
		{name: "unknown moment", err: service.ErrNotFound, expectedStatus: http.StatusNotFound, expectedCode: middleware.ErrorCodeNotFound},
		{name: "queue full", err: service.ErrQueueFull, expectedStatus: http.StatusServiceUnavailable, expectedCode: middleware.ErrorCodeUnavailable},
		{name: "dispatcher stopped", err: service.ErrDispatcherStopped, expectedStatus: http.StatusServiceUnavailable, expectedCode: middleware.ErrorCodeUnavailable},
		{name: "internal error", err: errors.New("db down"), expectedStatus: http.StatusInternalServerError, expectedCode: middleware.ErrorCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)

			m.dispatcher.EXPECT().SubmitMoment(gomock.Any(), "moment-1").Return(tt.err)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/moments/moment-1/broadcast", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w.Body.Bytes()).Error)
				return
			}
			var resp api.MomentDispatchResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "moment-1", resp.MomentId)
			assert.Equal(t, "broadcasting", resp.Status)
		})
	}
}
