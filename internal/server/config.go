package server

import (
	"net/http"
	"strconv"
	"time"

	"groupchat/internal/events"
)

const (
	defaultBodyLimit      = 1 << 20
	defaultPublishTimeout = 2 * time.Second
)

type Option interface {
	apply(*config)
}

type optionFunc func(c *config)

func (f optionFunc) apply(c *config) { f(c) }

// config defines fields used for configuring Server instance
type config struct {
	httpServer     *http.Server
	middlewares    []func(http.Handler) http.Handler
	afterShutdown  []func()
	publisher      events.Publisher
	bodyLimit      int64
	publishTimeout time.Duration
	now            func() time.Time
}

// EnvConfig defines fields used for parsing from environment variables
type EnvConfig struct {
	Host         string        `env:"HOST" envDefault:"0.0.0.0"`
	Port         uint16        `env:"PORT" envDefault:"9000"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	BodyLimit    int64         `env:"BODY_LIMIT" envDefault:"1048576"`
}

// WithEnvConfig enables processing exported EnvConfig struct to acts as a source of config parameters for http.Server
func WithEnvConfig(cfg EnvConfig) Option {
	return optionFunc(func(c *config) {
		c.httpServer.Addr = cfg.Host + ":" + strconv.FormatUint(uint64(cfg.Port), 10)
		if cfg.ReadTimeout > 0 {
			c.httpServer.ReadTimeout = cfg.ReadTimeout
		}
		if cfg.WriteTimeout > 0 {
			c.httpServer.WriteTimeout = cfg.WriteTimeout
		}
		if cfg.BodyLimit > 0 {
			c.bodyLimit = cfg.BodyLimit
		}
	})
}

// ReadTimeout sets read timeout for http.Server
func ReadTimeout(d time.Duration) Option {
	return optionFunc(func(c *config) {
		c.httpServer.ReadTimeout = d
	})
}

// BodyLimit caps the size of JSON request bodies
func BodyLimit(n int64) Option {
	return optionFunc(func(c *config) {
		c.bodyLimit = n
	})
}

// RegisterAfterShutdown registers a function to call after http.Server shutdown
// f will not be called in separated goroutine
func RegisterAfterShutdown(f func()) Option {
	return optionFunc(func(c *config) {
		c.afterShutdown = append(c.afterShutdown, f)
	})
}

// WithPublisher sets the destination of chat events
func WithPublisher(p events.Publisher) Option {
	return optionFunc(func(c *config) {
		c.publisher = p
	})
}

// PublishTimeout caps how long a request waits for its event to be published
func PublishTimeout(d time.Duration) Option {
	return optionFunc(func(c *config) {
		c.publishTimeout = d
	})
}

// TimeoutHandler wraps every route in http.TimeoutHandler with provided duration.
// Timed out requests get a 503 with msg in the usual JSON error body.
func TimeoutHandler(d time.Duration, msg string) Option {
	return optionFunc(func(c *config) {
		c.middlewares = append(c.middlewares, jsonTimeout(d, msg))
	})
}

// WithClock sets the time source stamped on published events
func WithClock(now func() time.Time) Option {
	return optionFunc(func(c *config) {
		c.now = now
	})
}
