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
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	"github.com/go-arcade/console/pkg/log"
)

// ProviderSet 提供缓存依赖（Redis + 本地 fastcache）
var ProviderSet = wire.NewSet(
	ProvideRedis,
	ProvideLocalCache,
	ProvideICache,
)

// ProvideRedis 提供 Redis 实例；未配置地址时返回 nil，仅使用本地缓存
func ProvideRedis(conf Redis) (*redis.Client, func(), error) {
	if !conf.Enabled() {
		log.Info("redis not configured, route snapshots kept in local cache only")
		return nil, func() {}, nil
	}
	client, err := NewRedis(conf)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}

// ProvideLocalCache 提供本地缓存实例（默认 32MB）
func ProvideLocalCache() *LocalCache {
	return NewLocalCache(LocalCacheConfig{MaxBytes: defaultLocalMaxBytes})
}

// ProvideICache 提供两级缓存作为 ICache
func ProvideICache(local *LocalCache, client *redis.Client) ICache {
	var remote ICache
	if client != nil {
		remote = NewRedisCache(client)
	}
	return NewTieredCache(local, remote, TieredCacheConfig{
		LocalTTLRatio: 0.8,
		LocalMaxTTL:   time.Minute,
	})
}
