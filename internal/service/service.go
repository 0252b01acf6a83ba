package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/cache"
	"github.com/popeskul/moments-broadcast/internal/config"
	"github.com/popeskul/moments-broadcast/internal/repository"
)

type Service struct {
	Broadcast  BroadcastService
	Recipient  RecipientService
	Moment     MomentService
	Dispatcher DispatchService
	Scheduler  SchedulerService
	Reconcile  ReconcileService
	Query      QueryService
	Health     HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	sender WhatsAppSender,
	logger *zap.Logger,
) *Service {
	redisCache := cache.NewRedisCache(redisClient, cfg.Cache.DeliveryTTL(), cfg.Cache.AuthorityTTL())

	fanout := NewFanout(sender, repo, redisCache, cfg.WhatsApp.CountryCode, logger)
	batchProcessor := NewBatchProcessor(repo, fanout, logger)
	broadcastService := NewBroadcastService(cfg, repo, sender, batchProcessor, fanout, logger)
	recipientService := NewRecipientService(&cfg.Broadcast, repo, redisCache, logger)
	momentService := NewMomentService(repo, recipientService, NewDefaultRenderer(), broadcastService, cfg.WhatsApp.CountryCode, logger)
	dispatchService := NewDispatchService(cfg.Dispatcher, repo, momentService, broadcastService, logger)
	schedulerService := NewSchedulerService(cfg, repo, dispatchService, logger)
	reconcileService := NewReconcileService(cfg.Reconcile, repo, logger)
	healthService := NewHealthService(repo, redisClient, schedulerService, sender, dispatchService)

	return &Service{
		Broadcast:  broadcastService,
		Recipient:  recipientService,
		Moment:     momentService,
		Dispatcher: dispatchService,
		Scheduler:  schedulerService,
		Reconcile:  reconcileService,
		Query:      NewQueryService(repo),
		Health:     healthService,
	}
}
