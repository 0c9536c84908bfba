package ledger

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/garden-api/internal/errors"
	redisclient "github.com/KirkDiggler/garden-api/internal/redis"
)

// RedisConfig holds the dependencies of the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	// KeyPrefix defaults to DefaultKeyPrefix
	KeyPrefix string
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	prefix string
}

// NewRedisRepository stores wallets as JSON strings under {prefix}:{player_id}
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &redisRepository{
		client: cfg.Client,
		prefix: prefix,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validatePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	raw, err := r.client.Get(ctx, r.key(input.PlayerID)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFound("wallet not found").WithMeta("player_id", input.PlayerID)
		}
		return nil, errors.Wrap(err, "failed to get wallet from Redis")
	}

	var out GetOutput
	if err := json.Unmarshal(raw, &out.Wallet); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal wallet")
	}
	return &out, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validatePlayerID(input.PlayerID); err != nil {
		return nil, err
	}
	if err := validateWallet(input.Wallet); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(input.Wallet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal wallet")
	}

	if err := r.client.Set(ctx, r.key(input.PlayerID), raw, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store wallet in Redis")
	}
	return &SaveOutput{}, nil
}

func (r *redisRepository) key(playerID string) string {
	return r.prefix + ":" + playerID
}
