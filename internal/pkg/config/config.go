package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// TokenTTL is the session lifetime applied at login.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=24h"`
	// BcryptCost tunes the password hash work factor.
	BcryptCost int `env:"BCRYPT_COST, default=10"`
	// SessionBackend selects where sessions live: "mongo" or "redis".
	SessionBackend string `env:"SESSION_BACKEND, default=mongo"`

	Mongo MongoConfig
	Redis RedisConfig
	Admin AdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=auth_service"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// AdminConfig controls the idempotent initial-admin seeding at startup.
type AdminConfig struct {
	Bootstrap bool   `env:"ADMIN_BOOTSTRAP, default=true"`
	Username  string `env:"ADMIN_USERNAME,  default=admin"`
	Email     string `env:"ADMIN_EMAIL,     default=admin@example.com"`
	// Password left empty means a random one is generated and logged once.
	Password string `env:"ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
