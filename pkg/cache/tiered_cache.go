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
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/go-arcade/console/pkg/log"
)

// TieredCacheConfig holds tiered cache configuration
type TieredCacheConfig struct {
	LocalTTLRatio float64       // 本地缓存 TTL 占远程 TTL 的比例（0.0-1.0）
	LocalMaxTTL   time.Duration // 本地缓存 TTL 上限，回填时远程 TTL 未知使用该值
}

// TieredCache 本地 fastcache 在前、Redis 在后的两级缓存。
// 读：本地 -> 远程（命中后回填本地）；写与删除：两级同时进行，以远程结果为准。
type TieredCache struct {
	local  *LocalCache
	remote ICache
	config TieredCacheConfig
}

// NewTieredCache creates a new TieredCache; remote may be nil for a local-only cache.
func NewTieredCache(local *LocalCache, remote ICache, config TieredCacheConfig) *TieredCache {
	if config.LocalMaxTTL <= 0 {
		config.LocalMaxTTL = time.Minute
	}
	return &TieredCache{local: local, remote: remote, config: config}
}

func (tc *TieredCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if cmd := tc.local.Get(ctx, key); cmd.Err() == nil {
		log.Debugw("tiered cache hit (local)", "key", key)
		return cmd
	}
	if tc.remote == nil {
		return redis.NewStringResult("", redis.Nil)
	}

	cmd := tc.remote.Get(ctx, key)
	if err := cmd.Err(); err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warnw("tiered cache remote get failed", "key", key, "error", err)
		}
		return cmd
	}
	log.Debugw("tiered cache hit (remote)", "key", key)
	tc.local.Set(ctx, key, cmd.Val(), tc.config.LocalMaxTTL)
	return cmd
}

func (tc *TieredCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	data, err := toBytes(value)
	if err != nil {
		return redis.NewStatusResult("", err)
	}
	if tc.remote == nil {
		// 仅本地缓存时按调用方的过期时间保存
		return tc.local.Set(ctx, key, data, expiration)
	}
	tc.local.Set(ctx, key, data, tc.localTTL(expiration))
	return tc.remote.Set(ctx, key, data, expiration)
}

func (tc *TieredCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	local := tc.local.Del(ctx, keys...)
	if tc.remote == nil {
		return local
	}
	return tc.remote.Del(ctx, keys...)
}

func (tc *TieredCache) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	local := tc.local.Expire(ctx, key, tc.localTTL(expiration))
	if tc.remote == nil {
		return local
	}
	return tc.remote.Expire(ctx, key, expiration)
}

// localTTL calculates local TTL based on remote TTL and ratio
func (tc *TieredCache) localTTL(remoteTTL time.Duration) time.Duration {
	ttl := remoteTTL
	if tc.config.LocalTTLRatio > 0 && tc.config.LocalTTLRatio < 1.0 {
		ttl = time.Duration(float64(remoteTTL) * tc.config.LocalTTLRatio)
	}
	if ttl <= 0 || ttl > tc.config.LocalMaxTTL {
		ttl = tc.config.LocalMaxTTL
	}
	return ttl
}
