package main

import (
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobboard/internal/config"
	dbRedis "github.com/kailas-cloud/jobboard/internal/db/redis"
)

// openCache connects the optional facet cache. It returns nil when the cache is
// not configured or cannot be reached; the service then runs uncached.
func openCache(
	cfg config.CacheConfig,
	open func(dbRedis.Config) (*dbRedis.Store, error),
	logger *zap.Logger,
) *dbRedis.Store {
	if !cfg.Enabled() {
		return nil
	}
	store, err := open(dbRedis.Config{Addrs: cfg.Addrs, Password: cfg.Password})
	if err != nil {
		logger.Warn("Facet cache unreachable, running without it",
			zap.Strings("addrs", cfg.Addrs), zap.Error(err))
		return nil
	}
	return store
}
