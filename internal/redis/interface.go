package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the go-redis universal client. Repositories accept this instead
// of a concrete *redis.Client so cluster and single-node setups both fit.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of a missing key
const Nil = redis.Nil
