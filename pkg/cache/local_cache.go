// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

// defaultLocalMaxBytes is the default local cache size (32MB)
const defaultLocalMaxBytes = 32 * 1024 * 1024

// LocalCacheConfig holds fastcache configuration
type LocalCacheConfig struct {
	MaxBytes int
}

// LocalCache 基于 fastcache 的进程内缓存。
// 每个值前 8 字节存放过期时间（UnixNano，0 表示永不过期），读取时惰性淘汰。
type LocalCache struct {
	cache *fastcache.Cache
	now   func() time.Time
}

// NewLocalCache creates a new LocalCache instance
func NewLocalCache(conf LocalCacheConfig) *LocalCache {
	maxBytes := conf.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultLocalMaxBytes
	}
	return &LocalCache{
		cache: fastcache.New(maxBytes),
		now:   time.Now,
	}
}

// Get returns the value for the given key, redis.Nil when missing or expired.
func (lc *LocalCache) Get(_ context.Context, key string) *redis.StringCmd {
	value, ok := lc.load(key)
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(value), nil)
}

// Set sets the value for the given key with expiration
func (lc *LocalCache) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	data, err := toBytes(value)
	if err != nil {
		return redis.NewStatusResult("", err)
	}
	lc.store(key, data, lc.deadline(expiration))
	return redis.NewStatusResult("OK", nil)
}

// Del deletes the given keys
func (lc *LocalCache) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var count int64
	for _, key := range keys {
		if _, ok := lc.load(key); ok {
			count++
		}
		lc.cache.Del([]byte(key))
	}
	return redis.NewIntResult(count, nil)
}

// Expire sets the expiration time for a key
func (lc *LocalCache) Expire(_ context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	value, ok := lc.load(key)
	if !ok {
		return redis.NewBoolResult(false, nil)
	}
	if expiration <= 0 {
		lc.cache.Del([]byte(key))
		return redis.NewBoolResult(true, nil)
	}
	lc.store(key, value, lc.deadline(expiration))
	return redis.NewBoolResult(true, nil)
}

// Clear removes all items from the cache
func (lc *LocalCache) Clear() {
	lc.cache.Reset()
}

// Stats returns cache statistics
func (lc *LocalCache) Stats() fastcache.Stats {
	var stats fastcache.Stats
	lc.cache.UpdateStats(&stats)
	return stats
}

func (lc *LocalCache) deadline(expiration time.Duration) int64 {
	if expiration <= 0 {
		return 0
	}
	return lc.now().Add(expiration).UnixNano()
}

func (lc *LocalCache) store(key string, value []byte, deadline int64) {
	buf := make([]byte, 8+len(value))
	binary.BigEndian.PutUint64(buf, uint64(deadline))
	copy(buf[8:], value)
	lc.cache.Set([]byte(key), buf)
}

func (lc *LocalCache) load(key string) ([]byte, bool) {
	buf, ok := lc.cache.HasGet(nil, []byte(key))
	if !ok || len(buf) < 8 {
		return nil, false
	}
	deadline := int64(binary.BigEndian.Uint64(buf))
	if deadline != 0 && lc.now().UnixNano() >= deadline {
		lc.cache.Del([]byte(key))
		return nil, false
	}
	return buf[8:], true
}

// toBytes converts a value to bytes, non-string values are JSON encoded
func toBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return sonic.Marshal(v)
	}
}
