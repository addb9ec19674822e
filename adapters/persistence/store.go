package persistence

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/internal/config"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

// NewResumeRepository opens the backend named by cfg.Store.Driver. The returned
// close func releases its connections.
func NewResumeRepository(cfg config.Config, log logger.Logger) (resume.Repository, func(), error) {
	log.Info("Opening resume store", zap.String("driver", cfg.Store.Driver))

	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		if cfg.DB.AutoMigrate {
			if err := RunMigrations(cfg.DB.DSN, log); err != nil {
				return nil, nil, err
			}
		}
		pool, err := NewPostgresPool(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresResumeRepo(pool, log), pool.Close, nil

	case config.StoreDriverRedis:
		rdb, err := NewRedisClient(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := rdb.Close(); err != nil {
				log.Warn("Failed to close Redis client", zap.Error(err))
			}
		}
		return NewRedisResumeRepo(rdb, cfg.Redis.KeyPrefix, log), closeFn, nil

	case config.StoreDriverMemory:
		log.Warn("Using in-memory resume store; data is lost on restart")
		return NewMemoryResumeRepo(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
