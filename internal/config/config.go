/**
* Name: 			config.go
* Description: 		서버 설정
* Workflow: 		.env 로드 -> 환경 변수 -> 기본값
 */
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Config struct {
	Port           string
	JWTSecret      string
	NetworkDelay   time.Duration
	StorageBackend string
	DBPath         string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RateLimitRPS   float64
	RateLimitBurst int
	CookieSecure   bool
	SessionMaxAge  time.Duration
}

func Defaults() *Config {
	return &Config{
		Port:           "8080",
		NetworkDelay:   300 * time.Millisecond,
		StorageBackend: BackendMemory,
		DBPath:         "./mock_auth.db",
		RedisAddr:      "localhost:6379",
		RateLimitRPS:   5,
		RateLimitBurst: 10,
		SessionMaxAge:  30 * 24 * time.Hour,
	}
}

// .env 파일이 있으면 읽고 환경 변수로 설정을 만든다
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv(os.Getenv)
}

// Defaults 위에 getenv 값을 덮어쓴다. 잘못된 값은 키 이름과 함께 에러.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := Defaults()
	var err error

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}
	cfg.JWTSecret = getenv("JWT_SECRET_KEY")

	if v := getenv("NETWORK_DELAY"); v != "" {
		if cfg.NetworkDelay, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid NETWORK_DELAY %q: %w", v, err)
		}
	}
	if v := getenv("STORAGE_BACKEND"); v != "" {
		switch v {
		case BackendMemory, BackendSQLite, BackendRedis:
		default:
			return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: want %q, %q or %q", v, BackendMemory, BackendSQLite, BackendRedis)
		}
		cfg.StorageBackend = v
	}
	if v := getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	cfg.RedisPassword = getenv("REDIS_PASSWORD")
	if v := getenv("REDIS_DB"); v != "" {
		if cfg.RedisDB, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
	}
	if v := getenv("RATE_LIMIT_RPS"); v != "" {
		if cfg.RateLimitRPS, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", v, err)
		}
	}
	if v := getenv("RATE_LIMIT_BURST"); v != "" {
		if cfg.RateLimitBurst, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST %q: %w", v, err)
		}
	}
	if v := getenv("COOKIE_SECURE"); v != "" {
		if cfg.CookieSecure, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("invalid COOKIE_SECURE %q: %w", v, err)
		}
	}
	if v := getenv("SESSION_MAX_AGE"); v != "" {
		if cfg.SessionMaxAge, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid SESSION_MAX_AGE %q: %w", v, err)
		}
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
