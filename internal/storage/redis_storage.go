package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"MockAuthPortal/internal/models"

	"github.com/redis/go-redis/v9"
)

func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	log.Println("Redis connection successfully opened.")
	return rdb, nil
}

// Redis에 사용자를 보관하는 저장소.
//
//	<prefix>user:<email>  사용자 JSON
//	<prefix>users:seq     ID 카운터
type RedisUserStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisUserStore(rdb *redis.Client, prefix string) *RedisUserStore {
	return &RedisUserStore{rdb: rdb, prefix: prefix}
}

func (s *RedisUserStore) userKey(email string) string { return s.prefix + "user:" + email }
func (s *RedisUserStore) seqKey() string              { return s.prefix + "users:seq" }

func (s *RedisUserStore) Create(ctx context.Context, name, email string) (models.User, error) {
	key := s.userKey(email)

	// 빈 값으로 이메일을 먼저 선점한다
	ok, err := s.rdb.SetNX(ctx, key, "", 0).Result()
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, ErrUserExists
	}

	user, err := s.fill(ctx, key, name, email)
	if err != nil {
		if derr := s.rdb.Del(ctx, key).Err(); derr != nil {
			log.Printf("[ERROR] RedisUserStore.Create(): failed to release %s: %v", key, derr)
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *RedisUserStore) fill(ctx context.Context, key, name, email string) (models.User, error) {
	id, err := s.rdb.Incr(ctx, s.seqKey()).Result()
	if err != nil {
		return models.User{}, err
	}
	user := models.User{
		ID:        strconv.FormatInt(id, 10),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return models.User{}, err
	}

	if err := s.rdb.Set(ctx, key, raw, 0).Err(); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *RedisUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	raw, err := s.rdb.Get(ctx, s.userKey(email)).Result()
	if err == redis.Nil || (err == nil && raw == "") {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.User{}, fmt.Errorf("corrupt user record for %s: %w", email, err)
	}
	return user, nil
}
