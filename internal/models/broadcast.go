// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Status is the lifecycle state shared by broadcasts and their batches.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransitionTo reports whether moving from s to next keeps the lifecycle
// one-directional: pending -> processing -> completed|failed. A pending record
// may also fail directly when orchestration aborts before the first send.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusFailed
	case StatusProcessing:
		return next == StatusCompleted || next == StatusFailed
	default:
		return false
	}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Broadcast is one execution of sending a message to a resolved recipient set.
type Broadcast struct {
	ID               string             `db:"id" json:"id"`
	MomentID         sql.NullString     `db:"moment_id" json:"moment_id,omitempty"`
	Status           Status             `db:"status" json:"status"`
	RecipientCount   int                `db:"recipient_count" json:"recipient_count"`
	SuccessCount     int                `db:"success_count" json:"success_count"`
	FailureCount     int                `db:"failure_count" json:"failure_count"`
	StartedAt        sql.NullTime       `db:"started_at" json:"started_at,omitempty"`
	CompletedAt      sql.NullTime       `db:"completed_at" json:"completed_at,omitempty"`
	FailureReason    sql.NullString     `db:"failure_reason" json:"failure_reason,omitempty"`
	AuthorityContext *AuthoritySnapshot `db:"authority_context" json:"authority_context,omitempty"`
	CreatedAt        time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `db:"updated_at" json:"updated_at"`
}

// BroadcastBatch is a fixed slice of a broadcast's recipients processed as one unit.
type BroadcastBatch struct {
	ID           string         `db:"id" json:"id"`
	BroadcastID  string         `db:"broadcast_id" json:"broadcast_id"`
	BatchNumber  int            `db:"batch_number" json:"batch_number"`
	Recipients   pq.StringArray `db:"recipients" json:"recipients"`
	Status       Status         `db:"status" json:"status"`
	SuccessCount int            `db:"success_count" json:"success_count"`
	FailureCount int            `db:"failure_count" json:"failure_count"`
	StartedAt    sql.NullTime   `db:"started_at" json:"started_at,omitempty"`
	CompletedAt  sql.NullTime   `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// AuthoritySnapshot records the sender's authority profile at broadcast time.
type AuthoritySnapshot struct {
	AuthorityID             string `json:"authority_id"`
	AuthorityLevel          int    `json:"authority_level"`
	BlastRadius             int    `json:"blast_radius"`
	Scope                   string `json:"scope"`
	OriginalSubscriberCount int    `json:"original_subscriber_count"`
	FilteredSubscriberCount int    `json:"filtered_subscriber_count"`
}

// Value implements driver.Valuer so the snapshot is stored as JSONB.
func (a AuthoritySnapshot) Value() (driver.Value, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal authority snapshot: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (a *AuthoritySnapshot) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case nil:
		return nil
	default:
		return errors.New("unsupported authority snapshot type")
	}
	return json.Unmarshal(raw, a)
}

// BroadcastAnalytics aggregates broadcast outcomes over a time window.
type BroadcastAnalytics struct {
	TotalBroadcasts int `db:"total_broadcasts" json:"total_broadcasts"`
	TotalRecipients int `db:"total_recipients" json:"total_recipients"`
	TotalSuccess    int `db:"total_success" json:"total_success"`
	TotalFailures   int `db:"total_failures" json:"total_failures"`
}

// SuccessRate returns delivered recipients as a percentage of all recipients
// that reached a terminal outcome.
func (a *BroadcastAnalytics) SuccessRate() float64 {
	done := a.TotalSuccess + a.TotalFailures
	if done == 0 {
		return 0
	}
	return float64(a.TotalSuccess) / float64(done) * 100
}
