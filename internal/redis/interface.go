package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories depend on. It is an
// alias for redis.UniversalClient so single-node, cluster and in-process
// servers are interchangeable.
type Client interface {
	redis.UniversalClient
}
