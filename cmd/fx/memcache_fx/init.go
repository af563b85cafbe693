package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"gezi/internal/services"
	mem "gezi/pkg/memcache"
)

const sweepInterval = 10 * time.Minute

var Module = fx.Provide(provideScheduleStore)

func provideScheduleStore(lc fx.Lifecycle, logger *zap.Logger) mem.Store[services.CachedSchedule] {
	store := mem.NewTTLStore(services.CloneCachedSchedule)

	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.Sweep(); n > 0 {
							logger.Debug("Swept expired schedules", zap.Int("count", n))
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
	return store
}
