// Package config loads glyphsmith settings from an optional config file
// and the environment.
//
// Settings are read from glyphsmith.toml (TOML) or glyphsmith.yaml (YAML)
// and decoded over [Default], so a file only needs the keys it changes:
//
//	[layout]
//	left_width_ratio = 0.4
//	align = "baseline"
//
//	[store]
//	target = "redis://localhost:6379/0"
//	ttl = "24h"
//
// Layout values are never rejected; they are clamped by
// layout.Config.Normalize when used.
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/glyphsmith/pkg/errors"
	"github.com/matzehuels/glyphsmith/pkg/layout"
	"github.com/matzehuels/glyphsmith/pkg/store"
)

// Environment variables that override file settings.
const (
	EnvStore    = "GLYPHSMITH_STORE"
	EnvRedisURL = "GLYPHSMITH_REDIS_URL"
	EnvAddr     = "GLYPHSMITH_ADDR"
)

// FileNames are the config file names LoadOptional looks for, in order.
var FileNames = []string{"glyphsmith.toml", "glyphsmith.yaml", "glyphsmith.yml"}

// Config is the complete application configuration.
type Config struct {
	Layout layout.Config `toml:"layout" yaml:"layout"`
	Paths  Paths         `toml:"paths" yaml:"paths"`
	Store  Store         `toml:"store" yaml:"store"`
	Server Server        `toml:"server" yaml:"server"`
}

// Paths locates the component inputs.
type Paths struct {
	// Components is the directory holding the numbered radical SVGs.
	Components string `toml:"components" yaml:"components"`

	// Catalog is the radicals table. Empty means numeric ids only.
	Catalog string `toml:"catalog" yaml:"catalog"`
}

// Store selects where composed glyphs are written.
type Store struct {
	// Target is a directory, "memory:", a redis:// URL or a mongodb:// URI.
	Target string `toml:"target" yaml:"target"`

	RedisPrefix     string `toml:"redis_prefix" yaml:"redis_prefix"`
	TTL             string `toml:"ttl" yaml:"ttl"`
	MongoDatabase   string `toml:"mongo_database" yaml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection" yaml:"mongo_collection"`
}

// Server configures the HTTP surface.
type Server struct {
	Addr string `toml:"addr" yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout: layout.DriverConfig(),
		Paths: Paths{
			Components: "svg",
			Catalog:    filepath.Join("data", "radicals_214.json"),
		},
		Store: Store{
			Target:          "out",
			RedisPrefix:     store.DefaultRedisPrefix,
			MongoDatabase:   store.DefaultMongoDatabase,
			MongoCollection: store.DefaultMongoCollection,
		},
		Server: Server{Addr: ":8080"},
	}
}

// Load reads the config file at path over the defaults. The format is
// chosen by extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return cfg, errors.Wrap(errors.ErrCodeNotFound, err, "config file %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config file %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOptional loads the first of FileNames found in dir, or returns the
// defaults if there is none. The second value is the file used.
func LoadOptional(dir string) (Config, string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := Load(path)
		return cfg, path, err
	}
	return Default(), "", nil
}

// ApplyEnv overrides settings from the environment. getenv is usually
// os.Getenv. A Redis URL takes precedence over a generic store target.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvStore)); v != "" {
		c.Store.Target = v
	}
	if v := strings.TrimSpace(getenv(EnvRedisURL)); v != "" {
		c.Store.Target = v
	}
	if v := strings.TrimSpace(getenv(EnvAddr)); v != "" {
		c.Server.Addr = v
	}
}

// Validate checks the settings that cannot be clamped.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Store.Target) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "store.target cannot be empty")
	}
	if _, err := c.Store.ttl(); err != nil {
		return err
	}
	return nil
}

// Options converts the store settings for store.Open.
func (s Store) Options() (store.Options, error) {
	ttl, err := s.ttl()
	if err != nil {
		return store.Options{}, err
	}
	return store.Options{
		RedisPrefix:     s.RedisPrefix,
		TTL:             ttl,
		MongoDatabase:   s.MongoDatabase,
		MongoCollection: s.MongoCollection,
	}, nil
}

func (s Store) ttl() (time.Duration, error) {
	if strings.TrimSpace(s.TTL) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.TTL)
	if err != nil || d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "store.ttl: invalid duration %q", s.TTL)
	}
	return d, nil
}
