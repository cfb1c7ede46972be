package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// DefaultEnvFile is read when no explicit file is given. It is optional.
const DefaultEnvFile = ".env"

type Config struct {
	Port        string        `env:"PORT,         default=5000"`
	Env         string        `env:"ENV,          default=development"`
	JWTSecret   string        `env:"JWT_SECRET,   required"`
	JWTExpire   time.Duration `env:"JWT_EXPIRE,   default=100h"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`
	CORSOrigins []string      `env:"CORS_ORIGINS, default=*"`

	Mongo MongoConfig
	Redis RedisConfig
	Votes VotesConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI,          default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,           default=songcontest"`
	// Transactions needs a replica set or sharded cluster.
	Transactions bool `env:"MONGO_TRANSACTIONS, default=false"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type VotesConfig struct {
	TallyCacheTTL time.Duration `env:"TALLY_CACHE_TTL, default=1m"`
	AuditWorkers  int           `env:"AUDIT_WORKERS,   default=4"`
}

// IsDevelopment reports whether the process runs with developer defaults
// such as pretty console logs.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads envFile into the process environment (variables already set
// win) and then processes the environment with go-envconfig. A missing
// DefaultEnvFile is not an error; a missing explicit file is.
func Load(ctx context.Context, envFile string) (*Config, error) {
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
