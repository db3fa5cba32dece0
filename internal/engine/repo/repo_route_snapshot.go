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

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/go-arcade/console/internal/engine/model"
	"github.com/go-arcade/console/pkg/cache"
)

const routeSnapshotKeyPrefix = "console:routes:"

// IRouteSnapshotRepository 保存用户最近一次获取到的动态路由，
// 路由源不可用时作为回退。
type IRouteSnapshotRepository interface {
	Save(ctx context.Context, userId string, routes []*model.RouteNode, ttl time.Duration) error
	Load(ctx context.Context, userId string) ([]*model.RouteNode, bool, error)
	Delete(ctx context.Context, userId string) error
}

type RouteSnapshotRepo struct {
	cache cache.ICache
}

func NewRouteSnapshotRepo(c cache.ICache) *RouteSnapshotRepo {
	return &RouteSnapshotRepo{cache: c}
}

func routeSnapshotKey(userId string) string {
	return routeSnapshotKeyPrefix + userId
}

// Save 写入快照
func (r *RouteSnapshotRepo) Save(ctx context.Context, userId string, routes []*model.RouteNode, ttl time.Duration) error {
	data, err := sonic.MarshalString(routes)
	if err != nil {
		return fmt.Errorf("encode route snapshot: %w", err)
	}
	return r.cache.Set(ctx, routeSnapshotKey(userId), data, ttl).Err()
}

// Load 读取快照，不存在时返回 ok=false
func (r *RouteSnapshotRepo) Load(ctx context.Context, userId string) ([]*model.RouteNode, bool, error) {
	data, err := r.cache.Get(ctx, routeSnapshotKey(userId)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var routes []*model.RouteNode
	if err := sonic.UnmarshalString(data, &routes); err != nil {
		return nil, false, fmt.Errorf("decode route snapshot: %w", err)
	}
	return routes, true, nil
}

// Delete 删除快照
func (r *RouteSnapshotRepo) Delete(ctx context.Context, userId string) error {
	return r.cache.Del(ctx, routeSnapshotKey(userId)).Err()
}
