// Package api defines the HTTP contract of the broadcast service: wire types
// and the ServerInterface implemented by the handler package.
package api

import "time"

type HealthResponseStatus string

const (
	Healthy   HealthResponseStatus = "healthy"
	Degraded  HealthResponseStatus = "degraded"
	Unhealthy HealthResponseStatus = "unhealthy"
)

type HealthResponseSchedulerStatus string

const (
	HealthResponseSchedulerStatusRunning HealthResponseSchedulerStatus = "running"
	HealthResponseSchedulerStatusStopped HealthResponseSchedulerStatus = "stopped"
)

type HealthResponseDatabaseStatus string

const (
	HealthResponseDatabaseStatusConnected    HealthResponseDatabaseStatus = "connected"
	HealthResponseDatabaseStatusDisconnected HealthResponseDatabaseStatus = "disconnected"
)

type HealthResponseRedisStatus string

const (
	HealthResponseRedisStatusConnected    HealthResponseRedisStatus = "connected"
	HealthResponseRedisStatusDisconnected HealthResponseRedisStatus = "disconnected"
)

type HealthResponseCircuitBreakerState string

const (
	Closed   HealthResponseCircuitBreakerState = "closed"
	HalfOpen HealthResponseCircuitBreakerState = "half-open"
	Open     HealthResponseCircuitBreakerState = "open"
)

type HealthResponse struct {
	Status               HealthResponseStatus               `json:"status"`
	Timestamp            time.Time                          `json:"timestamp"`
	SchedulerStatus      *HealthResponseSchedulerStatus     `json:"scheduler_status,omitempty"`
	DatabaseStatus       *HealthResponseDatabaseStatus      `json:"database_status,omitempty"`
	RedisStatus          *HealthResponseRedisStatus         `json:"redis_status,omitempty"`
	CircuitBreakerStatus *string                            `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  *HealthResponseCircuitBreakerState `json:"circuit_breaker_state,omitempty"`
	QueuedJobs           *int                               `json:"queued_jobs,omitempty"`
}

type SchedulerResponseStatus string

const (
	SchedulerResponseStatusStarted SchedulerResponseStatus = "started"
	SchedulerResponseStatusStopped SchedulerResponseStatus = "stopped"
)

type SchedulerResponse struct {
	Status  SchedulerResponseStatus `json:"status"`
	Message string                  `json:"message"`
}

type ErrorResponse struct {
	Error     string     `json:"error"`
	Message   string     `json:"message"`
	Details   *[]string  `json:"details,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type BroadcastStatus string

const (
	BroadcastStatusPending    BroadcastStatus = "pending"
	BroadcastStatusProcessing BroadcastStatus = "processing"
	BroadcastStatusCompleted  BroadcastStatus = "completed"
	BroadcastStatusFailed     BroadcastStatus = "failed"
)

type SendBroadcastRequest struct {
	MomentId   *string   `json:"moment_id,omitempty"`
	Message    string    `json:"message"`
	Recipients []string  `json:"recipients"`
	MediaUrls  *[]string `json:"media_urls,omitempty"`
}

type BroadcastAccepted struct {
	BroadcastId     string          `json:"broadcast_id"`
	Status          BroadcastStatus `json:"status"`
	TotalRecipients int             `json:"total_recipients"`
}

type AuthorityContext struct {
	AuthorityId             string `json:"authority_id"`
	AuthorityLevel          int    `json:"authority_level"`
	BlastRadius             int    `json:"blast_radius"`
	Scope                   string `json:"scope"`
	OriginalSubscriberCount int    `json:"original_subscriber_count"`
	FilteredSubscriberCount int    `json:"filtered_subscriber_count"`
}

type BroadcastBatch struct {
	Id             string          `json:"id"`
	BatchNumber    int             `json:"batch_number"`
	RecipientCount int             `json:"recipient_count"`
	Status         BroadcastStatus `json:"status"`
	SuccessCount   int             `json:"success_count"`
	FailureCount   int             `json:"failure_count"`
	StartedAt      *time.Time      `json:"started_at,omitempty"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
}

type Broadcast struct {
	Id               string            `json:"id"`
	MomentId         *string           `json:"moment_id,omitempty"`
	Status           BroadcastStatus   `json:"status"`
	RecipientCount   int               `json:"recipient_count"`
	SuccessCount     int               `json:"success_count"`
	FailureCount     int               `json:"failure_count"`
	StartedAt        *time.Time        `json:"started_at,omitempty"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`
	FailureReason    *string           `json:"failure_reason,omitempty"`
	AuthorityContext *AuthorityContext `json:"authority_context,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	Batches          *[]BroadcastBatch `json:"batches,omitempty"`
}

type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

type BroadcastListResponse struct {
	Broadcasts []Broadcast `json:"broadcasts"`
	Pagination Pagination  `json:"pagination"`
}

type ListBroadcastsParams struct {
	MomentId *string          `form:"moment_id,omitempty" json:"moment_id,omitempty"`
	Status   *BroadcastStatus `form:"status,omitempty" json:"status,omitempty"`
	From     *time.Time       `form:"from,omitempty" json:"from,omitempty"`
	To       *time.Time       `form:"to,omitempty" json:"to,omitempty"`
	Page     *int             `form:"page,omitempty" json:"page,omitempty"`
	Limit    *int             `form:"limit,omitempty" json:"limit,omitempty"`
}

type AnalyticsResponse struct {
	Days            int     `json:"days"`
	TotalBroadcasts int     `json:"total_broadcasts"`
	TotalRecipients int     `json:"total_recipients"`
	TotalSuccess    int     `json:"total_success"`
	TotalFailures   int     `json:"total_failures"`
	SuccessRate     float64 `json:"success_rate"`
}

type GetBroadcastAnalyticsParams struct {
	Days *int `form:"days,omitempty" json:"days,omitempty"`
}

type MomentDispatchResponse struct {
	MomentId string `json:"moment_id"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}
