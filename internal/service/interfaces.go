package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"

	"github.com/popeskul/moments-broadcast/internal/api"
	"github.com/popeskul/moments-broadcast/internal/models"
)

// WhatsAppSender is the wire client the broadcast core sends through.
type WhatsAppSender interface {
	Ready() error
	Send(ctx context.Context, to, body string) models.DeliveryResult
	SendMedia(ctx context.Context, to, mediaURL string) models.DeliveryResult
	GetBreakerState() api.HealthResponseCircuitBreakerState
	GetBreakerCounts() (requests, failures uint32)
}

type BroadcastService interface {
	// SendBroadcast creates and executes a broadcast in one call.
	SendBroadcast(ctx context.Context, req BroadcastRequest) (*BroadcastResult, error)
	// Create validates req and persists a pending broadcast. Nothing is
	// persisted when validation or the credential check fails.
	Create(ctx context.Context, req BroadcastRequest) (*models.Broadcast, error)
	// Execute delivers a pending broadcast created by Create.
	Execute(ctx context.Context, broadcast *models.Broadcast, req BroadcastRequest) (*BroadcastResult, error)
}

type BatchProcessor interface {
	Process(ctx context.Context, batch *models.BroadcastBatch, message string, mediaURLs []string, pacer *Pacer) (BatchOutcome, error)
}

type RecipientService interface {
	ResolveRecipients(ctx context.Context, criteria Criteria) ([]string, error)
	LookupAuthority(ctx context.Context, userIdentifier string) *models.AuthorityProfile
	ApplyAuthorityFilter(recipients []string, authority *models.AuthorityProfile) FilterResult
}

type MessageRenderer interface {
	Render(moment *models.Moment) string
}

type MomentService interface {
	BroadcastMoment(ctx context.Context, momentID string) (*BroadcastResult, error)
}

type DispatchService interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	// SubmitMoment claims a moment and queues its broadcast.
	SubmitMoment(ctx context.Context, momentID string) error
	// EnqueueClaimedMoment queues a moment the caller already moved to broadcasting.
	EnqueueClaimedMoment(ctx context.Context, momentID string) error
	SubmitBroadcast(ctx context.Context, broadcast *models.Broadcast, req BroadcastRequest) error
	QueueLength() int
}

type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

type ReconcileService interface {
	Start() error
	Stop()
	Sweep(ctx context.Context) (*ReconcileReport, error)
}

type QueryService interface {
	ListBroadcasts(ctx context.Context, params ListParams) (*BroadcastPage, error)
	GetBroadcast(ctx context.Context, id string) (*BroadcastDetails, error)
	GetAnalytics(ctx context.Context, days int) (*AnalyticsSummary, error)
}

type HealthService interface {
	GetHealth() *HealthStatus
}
