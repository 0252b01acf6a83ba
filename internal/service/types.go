package service

import (
	"time"

	"github.com/popeskul/moments-broadcast/internal/api"
	"github.com/popeskul/moments-broadcast/internal/models"
)

type HealthStatus struct {
	Status               api.HealthResponseStatus              `json:"status"`
	SchedulerStatus      api.HealthResponseSchedulerStatus     `json:"scheduler_status"`
	DatabaseStatus       api.HealthResponseDatabaseStatus      `json:"database_status"`
	RedisStatus          api.HealthResponseRedisStatus         `json:"redis_status"`
	CircuitBreakerStatus string                                `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  api.HealthResponseCircuitBreakerState `json:"circuit_breaker_state,omitempty"`
	QueuedJobs           int                                   `json:"queued_jobs"`
}

// BroadcastRequest is the input of a single broadcast.
type BroadcastRequest struct {
	MomentID   string
	Message    string
	Recipients []string
	MediaURLs  []string
	Authority  *models.AuthoritySnapshot
}

// BroadcastResult is the aggregate outcome of an executed broadcast.
type BroadcastResult struct {
	BroadcastID     string `json:"broadcastId"`
	SuccessCount    int    `json:"successCount"`
	FailureCount    int    `json:"failureCount"`
	TotalRecipients int    `json:"totalRecipients"`
	Batches         int    `json:"batches"`
}

// BatchOutcome counts recipient outcomes of one delivery run.
type BatchOutcome struct {
	SuccessCount int
	FailureCount int
}

func (o *BatchOutcome) add(other BatchOutcome) {
	o.SuccessCount += other.SuccessCount
	o.FailureCount += other.FailureCount
}

// Criteria selects subscribers for a moment.
type Criteria struct {
	Region   string
	Category string
}

// FilterResult is the recipient list after the blast radius was applied.
type FilterResult struct {
	Recipients    []string
	OriginalCount int
	BlastRadius   int
	Truncated     bool
}

type ListParams struct {
	MomentID string
	Status   models.Status
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

type BroadcastPage struct {
	Broadcasts []*models.Broadcast
	Page       int
	Limit      int
	Total      int64
}

// TotalPages returns the number of pages for the current limit.
func (p *BroadcastPage) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}

type BroadcastDetails struct {
	Broadcast *models.Broadcast
	Batches   []*models.BroadcastBatch
}

type AnalyticsSummary struct {
	Days int
	models.BroadcastAnalytics
}

// ReconcileReport lists records found stuck during a sweep.
type ReconcileReport struct {
	StaleBroadcasts []string
	StaleBatches    []string
}
