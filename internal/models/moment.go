package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type MomentStatus string

const (
	MomentStatusDraft        MomentStatus = "draft"
	MomentStatusScheduled    MomentStatus = "scheduled"
	MomentStatusBroadcasting MomentStatus = "broadcasting"
	MomentStatusBroadcasted  MomentStatus = "broadcasted"
	MomentStatusFailed       MomentStatus = "failed"
)

const (
	ContentSourceCommunity = "community"
	ContentSourceAdmin     = "admin"
	ContentSourceCampaign  = "campaign"

	RegionNational = "National"
)

// Moment is a unit of community content eligible for broadcast.
type Moment struct {
	ID            string         `db:"id" json:"id"`
	Title         string         `db:"title" json:"title"`
	Content       string         `db:"content" json:"content"`
	Region        string         `db:"region" json:"region"`
	Category      string         `db:"category" json:"category"`
	ContentSource string         `db:"content_source" json:"content_source"`
	IsSponsored   bool           `db:"is_sponsored" json:"is_sponsored"`
	SponsorName   sql.NullString `db:"sponsor_name" json:"sponsor_name,omitempty"`
	PWALink       sql.NullString `db:"pwa_link" json:"pwa_link,omitempty"`
	MediaURLs     pq.StringArray `db:"media_urls" json:"media_urls"`
	Status        MomentStatus   `db:"status" json:"status"`
	ScheduledAt   sql.NullTime   `db:"scheduled_at" json:"scheduled_at,omitempty"`
	BroadcastedAt sql.NullTime   `db:"broadcasted_at" json:"broadcasted_at,omitempty"`
	CreatedBy     sql.NullString `db:"created_by" json:"created_by,omitempty"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// Subscriber is an opted-in phone identifier with targeting preferences.
type Subscriber struct {
	ID          int64          `db:"id" json:"id"`
	PhoneNumber string         `db:"phone_number" json:"phone_number"`
	Regions     pq.StringArray `db:"regions" json:"regions"`
	Categories  pq.StringArray `db:"categories" json:"categories"`
	OptedIn     bool           `db:"opted_in" json:"opted_in"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

// AuthorityProfile is a sender's permission profile.
type AuthorityProfile struct {
	ID              string         `db:"id" json:"id"`
	UserIdentifier  string         `db:"user_identifier" json:"user_identifier"`
	AuthorityLevel  int            `db:"authority_level" json:"authority_level"`
	RoleLabel       string         `db:"role_label" json:"role_label"`
	Scope           string         `db:"scope" json:"scope"`
	ScopeIdentifier sql.NullString `db:"scope_identifier" json:"scope_identifier,omitempty"`
	BlastRadius     int            `db:"blast_radius" json:"blast_radius"`
	Status          string         `db:"status" json:"status"`
	ValidUntil      sql.NullTime   `db:"valid_until" json:"valid_until,omitempty"`
}
