//go:build integration

package store

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestRedis_Integration(t *testing.T) {
	url := os.Getenv("GLYPHSMITH_TEST_REDIS_URL")
	if url == "" {
		t.Skip("GLYPHSMITH_TEST_REDIS_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := OpenRedis(ctx, url, "glyphsmith:test:", time.Minute)
	if err != nil {
		t.Fatalf("OpenRedis() error: %v", err)
	}
	defer s.Close()

	exerciseStore(t, s)
}

func TestMongo_Integration(t *testing.T) {
	uri := os.Getenv("GLYPHSMITH_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("GLYPHSMITH_TEST_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := OpenMongo(ctx, uri, "glyphsmith_test", "glyphs")
	if err != nil {
		t.Fatalf("OpenMongo() error: %v", err)
	}
	defer s.Close()

	exerciseStore(t, s)
}
