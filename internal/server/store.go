package server

import (
	"context"
	"log"

	"MockAuthPortal/internal/config"
	"MockAuthPortal/internal/storage"
)

const redisKeyPrefix = "mockauth:"

// 설정된 백엔드의 사용자 저장소. closeFn은 항상 호출해도 된다.
func NewUserStore(cfg *config.Config) (users storage.UserStore, closeFn func() error, err error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		db, err := storage.InitDB(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewSQLiteUserStore(db), db.Close, nil

	case config.BackendRedis:
		rdb, err := storage.ConnectRedis(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisUserStore(rdb, redisKeyPrefix), rdb.Close, nil

	default:
		log.Println("NewUserStore(): using in-memory user store")
		return storage.NewMemoryUserStore(), func() error { return nil }, nil
	}
}
