package storage

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Backends selectable through Config.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// DefaultActivityThreshold is how long after the last heartbeat a user is still counted as online.
const DefaultActivityThreshold = 5 * time.Minute

// Config defines fields used for parsing storage settings from environment variables
type Config struct {
	Backend  string `env:"STORAGE_BACKEND" envDefault:"memory"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     uint16 `env:"POSTGRES_PORT" envDefault:"5432"`
	DBName   string `env:"POSTGRES_DB" envDefault:"chat"`

	Presence          string        `env:"PRESENCE_BACKEND" envDefault:"memory"`
	RedisURL          string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	ActivityThreshold time.Duration `env:"ACTIVITY_THRESHOLD" envDefault:"5m"`
}

// DSN returns the keyword/value connection string for the Postgres backend
func (c Config) DSN() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%d dbname=%s sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// PoolOption alters the default configuration of the pgxpool.Config used during PostgresRepository construction
type PoolOption interface {
	apply(*pgxpool.Config)
}

type poolOptionFunc func(c *pgxpool.Config)

func (f poolOptionFunc) apply(c *pgxpool.Config) { f(c) }

// ConnectionTimeout sets timeout for connection to be established
func ConnectionTimeout(d time.Duration) PoolOption {
	return poolOptionFunc(func(c *pgxpool.Config) {
		c.ConnConfig.ConnectTimeout = d
	})
}

// MaxConns caps the number of pooled connections
func MaxConns(n int32) PoolOption {
	return poolOptionFunc(func(c *pgxpool.Config) {
		c.MaxConns = n
	})
}

// Option alters the behaviour of a Store
type Option interface {
	apply(*Store)
}

type optionFunc func(s *Store)

func (f optionFunc) apply(s *Store) { f(s) }

// WithClock replaces time.Now as the source of timestamps
func WithClock(now func() time.Time) Option {
	return optionFunc(func(s *Store) {
		s.now = now
	})
}

// ActivityThreshold sets the presence window; non-positive values keep the default
func ActivityThreshold(d time.Duration) Option {
	return optionFunc(func(s *Store) {
		if d > 0 {
			s.threshold = d
		}
	})
}

// BcryptCost sets the cost used for hashing new passwords
func BcryptCost(cost int) Option {
	return optionFunc(func(s *Store) {
		s.bcryptCost = cost
	})
}
