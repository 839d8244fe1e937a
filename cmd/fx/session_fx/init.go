package session_fx

import (
	"context"
	"time"

	backend "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"founderkit/internal/infra"
	"founderkit/internal/repositories"
	"founderkit/pkg/config"
	mem "founderkit/pkg/memcache"
)

var Module = fx.Provide(provideSessionRepository, provideRedisClient)

const sweepInterval = time.Minute

// provideRedisClient returns nil when REDIS_URL is empty.
func provideRedisClient(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*backend.Client, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}
	client, err := infra.InitRedis(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Closing redis client")
			return client.Close()
		},
	})
	return client, nil
}

func provideSessionRepository(lc fx.Lifecycle, cfg config.Config, client *backend.Client, log *zap.Logger) repositories.SessionRepository {
	ttl := repositories.WithSessionTTL(cfg.SessionTTL)
	if client != nil {
		log.Info("Questionnaire sessions stored in redis", zap.Duration("ttl", cfg.SessionTTL))
		return repositories.NewRedisSessionRepository(client, ttl)
	}

	log.Info("Questionnaire sessions stored in memory", zap.Duration("ttl", cfg.SessionTTL))
	store := mem.NewTTLStore()
	stop := make(chan struct{})
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.Sweep(); n > 0 {
							log.Debug("Expired questionnaire sessions removed", zap.Int("count", n))
						}
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			<-done
			return nil
		},
	})
	return repositories.NewMemorySessionRepository(store, ttl)
}
