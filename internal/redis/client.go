// Package redis wraps go-redis client construction for the session store
package redis

import (
	"crypto/tls"
	"errors"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a Redis client for a single instance. Redis connects
// lazily, so an unreachable endpoint surfaces on first use.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redis.NewClient(redisOpts), nil
}

// Embedded is an in-process Redis server with a client connected to it.
// It backs the CLI when no external Redis is configured; state lives only
// as long as the process.
type Embedded struct {
	Client
	server *miniredis.Miniredis
}

// NewEmbedded starts an in-process server and connects a client to it
func NewEmbedded() (*Embedded, error) {
	server, err := miniredis.Run()
	if err != nil {
		return nil, err
	}

	client, err := NewClient(server.Addr(), nil)
	if err != nil {
		server.Close()
		return nil, err
	}

	return &Embedded{Client: client, server: server}, nil
}

// Close shuts down both the client and the server
func (e *Embedded) Close() error {
	err := e.Client.Close()
	e.server.Close()
	return err
}
