package store

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/glyphsmith/pkg/errors"
)

// DefaultRedisPrefix namespaces glyph keys in a shared Redis database.
const DefaultRedisPrefix = "glyphsmith:glyph:"

// Redis stores documents as Redis string values.
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedis creates a store on an existing client. Keys are prefix+name.
// A ttl of zero keeps documents until they are deleted.
func NewRedis(client redis.UniversalClient, prefix string, ttl time.Duration) *Redis {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

// OpenRedis connects to the Redis server at url (redis://...) and checks
// that it answers, retrying a few times with backoff.
func OpenRedis(ctx context.Context, url, prefix string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse redis url")
	}
	client := redis.NewClient(opts)
	if err := ping(ctx, func(ctx context.Context) error { return client.Ping(ctx).Err() }); err != nil {
		client.Close()
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect to redis")
	}
	return NewRedis(client, prefix, ttl), nil
}

// Put stores data under the prefixed key.
func (s *Redis) Put(ctx context.Context, name string, data []byte) error {
	if err := errors.ValidateResourceName(name); err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.prefix+name, data, s.ttl).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "redis set %s", name)
	}
	return nil
}

// Get reads the prefixed key.
func (s *Redis) Get(ctx context.Context, name string) ([]byte, error) {
	if err := errors.ValidateResourceName(name); err != nil {
		return nil, err
	}
	data, err := s.client.Get(ctx, s.prefix+name).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "redis get %s", name)
	}
	return data, nil
}

// Delete removes the prefixed key.
func (s *Redis) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateResourceName(name); err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.prefix+name).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "redis del %s", name)
	}
	return nil
}

// Close closes the underlying client.
func (s *Redis) Close() error {
	return s.client.Close()
}

// Ensure Redis implements Store.
var _ Store = (*Redis)(nil)
