package store

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/glyphsmith/pkg/errors"
)

// Options tunes the remote backends chosen by Open. Zero values select
// the defaults.
type Options struct {
	RedisPrefix     string
	TTL             time.Duration
	MongoDatabase   string
	MongoCollection string
}

// Open selects a backend from a target string:
//
//	memory:                         in-process Memory store
//	redis://host:6379/0             Redis (also rediss://)
//	mongodb://host:27017            MongoDB (also mongodb+srv://)
//	file:///var/lib/glyphs, ./out   File store in the named directory
func Open(ctx context.Context, target string, opts Options) (Store, error) {
	target = strings.TrimSpace(target)
	switch {
	case target == "":
		return nil, errors.New(errors.ErrCodeInvalidConfig, "store target cannot be empty")
	case target == "memory:" || target == "memory":
		return NewMemory(), nil
	case strings.HasPrefix(target, "redis://"), strings.HasPrefix(target, "rediss://"):
		return OpenRedis(ctx, target, opts.RedisPrefix, opts.TTL)
	case strings.HasPrefix(target, "mongodb://"), strings.HasPrefix(target, "mongodb+srv://"):
		return OpenMongo(ctx, target, opts.MongoDatabase, opts.MongoCollection)
	case strings.HasPrefix(target, "file://"):
		return NewFile(strings.TrimPrefix(target, "file://"))
	case strings.Contains(target, "://"):
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported store target: %q", target)
	}
	return NewFile(target)
}
