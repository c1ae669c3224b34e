// Package vectors caches golden digests for regression testing,
// adapted from the pool's Redis storage layer: same client lifecycle
// (NewClient dials and pings immediately), same key-prefix convention,
// repurposed from share/block/payment bookkeeping to a frozen
// name-to-digest table.
//
// The cache follows the "first run freezes, later runs compare"
// pattern: a vector absent from the store is recorded as-is; a vector
// already present is compared against the stored value and any
// mismatch is reported as a regression.
package vectors

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/tos-network/uhash/internal/util"
)

const keyPrefix = "uhash:vectors:"

// Store wraps a Redis-backed cache of named golden digests.
type Store struct {
	client *redis.Client
	ctx    context.Context
}

// NewStore dials Redis and verifies connectivity before returning.
func NewStore(url, password string, db int) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     url,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("vectors: redis connection failed: %w", err)
	}

	util.Infof("vectors: connected to Redis at %s", url)
	return &Store{client: client, ctx: ctx}, nil
}

// Close closes the underlying Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Get returns the frozen digest for name, and whether it was found.
func (s *Store) Get(name string) (digest []byte, found bool, err error) {
	val, err := s.client.Get(s.ctx, keyPrefix+name).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	b, err := hex.DecodeString(val)
	if err != nil {
		return nil, false, fmt.Errorf("vectors: corrupt stored digest for %q: %w", name, err)
	}
	return b, true, nil
}

// Put freezes digest under name, overwriting any prior value.
func (s *Store) Put(name string, digest []byte) error {
	return s.client.Set(s.ctx, keyPrefix+name, hex.EncodeToString(digest), 0).Err()
}

// Check compares digest against the frozen value for name. If no
// frozen value exists yet, it freezes digest and reports ok=true. If a
// frozen value exists, ok reports whether digest matches it.
func (s *Store) Check(name string, digest []byte) (ok bool, err error) {
	frozen, found, err := s.Get(name)
	if err != nil {
		return false, err
	}
	if !found {
		return true, s.Put(name, digest)
	}
	return hex.EncodeToString(frozen) == hex.EncodeToString(digest), nil
}

// Names returns all vector names currently frozen in the store.
func (s *Store) Names() ([]string, error) {
	var names []string
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(s.ctx, cursor, keyPrefix+"*", 1000).Result()
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			names = append(names, k[len(keyPrefix):])
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return names, nil
}
