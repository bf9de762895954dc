package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/khelan-mehta/cookie/internal/api"
	"github.com/khelan-mehta/cookie/internal/api/handlers/http/distress"
	"github.com/khelan-mehta/cookie/internal/api/handlers/http/responder"
	"github.com/khelan-mehta/cookie/internal/api/handlers/http/system"
	"github.com/khelan-mehta/cookie/internal/config"
	"github.com/khelan-mehta/cookie/internal/geo"
	"github.com/khelan-mehta/cookie/internal/livesync"
	"github.com/khelan-mehta/cookie/internal/redis"
	"github.com/khelan-mehta/cookie/internal/service"
	"github.com/khelan-mehta/cookie/internal/storage/postgres"
	"github.com/khelan-mehta/cookie/internal/workers"
	"github.com/khelan-mehta/cookie/pkg/logger"
)

// syncTransport is what a push deployment provides: the case-scoped channel
// plus the topic notifier the dispatch worker fans out through.
type syncTransport interface {
	livesync.Channel
	livesync.Notifier
}

type Components struct {
	logger *slog.Logger

	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	DispatchQ  *redis.DispatchQueue
	Dispatcher *workers.Dispatcher

	redisChannel *livesync.RedisChannel
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	dispatchQueue := redis.NewDispatchQueue(redisClient.Client, "distress:dispatch")
	snapshotCache := redis.NewSnapshotCache(redisClient)

	responderIndex := geo.NewIndex(geo.WithStalenessWindow(cfg.Geo.StalenessWindow))
	caseIndex := geo.NewIndex()

	var transport syncTransport
	var redisChannel *livesync.RedisChannel
	switch cfg.Sync.Mode {
	case "redis":
		redisChannel = livesync.NewRedisChannel(redisClient.Client, logger)
		transport = redisChannel
	case "poll":
		transport = livesync.NopChannel{}
	default:
		transport = livesync.NewHub(logger)
	}

	distressSvc := service.NewDistressService(storage.Cases(), snapshotCache, caseIndex, dispatchQueue, transport, logger)
	dispatcherSvc := service.NewDispatcher(storage.Presence(), storage.Cases(), responderIndex, caseIndex,
		cfg.Geo.RadiusMeters, cfg.Geo.Limit, logger)
	statsSvc := service.NewStatsService(storage.Cases(), storage.Presence(), cfg.Geo.StalenessWindow)
	svc := service.NewService(distressSvc, dispatcherSvc, statsSvc)

	if err := rebuildCaseIndex(ctx, storage, caseIndex, logger); err != nil {
		return nil, fmt.Errorf("failed to rebuild case index: %w", err)
	}

	poller := livesync.NewSnapshotPoller(svc.DistressService)

	var scorer workers.AdvisoryScorer
	if !cfg.Advisory.Disabled {
		scorer = service.NewHTTPScorer(logger, cfg.Advisory)
	}
	dispatchWorker := workers.NewDispatcher(dispatchQueue, svc.DistressService, svc.DispatcherService, transport,
		scorer, cfg.Dispatch.Workers, logger)

	distressHandler := distress.NewHandler(logger, svc.DistressService, poller, svc.DispatcherService)
	responderHandler := responder.NewHandler(logger, svc.DispatcherService)
	systemHandler := system.NewHandler(logger, svc.StatsService)

	httpServer := api.NewServer(cfg, logger, distressHandler, responderHandler, systemHandler)
	logger.Info("Initialized server", slog.String("sync_mode", cfg.Sync.Mode))

	return &Components{
		logger:       logger,
		HttpServer:   httpServer,
		Postgres:     storage,
		Redis:        redisClient,
		DispatchQ:    dispatchQueue,
		Dispatcher:   dispatchWorker,
		redisChannel: redisChannel,
	}, nil
}

// rebuildCaseIndex reloads open cases into the discovery index so nearby
// queries survive a restart. Presence rebuilds itself from heartbeats.
func rebuildCaseIndex(ctx context.Context, storage *postgres.Postgres, index *geo.Index, logger *slog.Logger) error {
	open, err := storage.Cases().ListOpen(ctx)
	if err != nil {
		return err
	}
	for _, c := range open {
		index.Upsert(c.ID, c.Location)
	}
	logger.Info("case index rebuilt", slog.Int("open_cases", len(open)))
	return nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	if c.redisChannel != nil {
		c.redisChannel.Close()
	}
	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
