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

package service

import (
	"github.com/google/wire"

	"github.com/go-arcade/console/internal/engine/client"
	"github.com/go-arcade/console/internal/engine/conf"
	"github.com/go-arcade/console/internal/engine/repo"
	"github.com/go-arcade/console/pkg/authz"
)

// ProviderSet 提供服务层相关的依赖
var ProviderSet = wire.NewSet(
	ProvideRouteSource,
	ProvideSessionRegistry,
)

// ProvideRouteSource 按 menu.source 选择动态路由来源
func ProvideRouteSource(menuConf conf.MenuConfig, c *client.Client, menuRepo repo.IMenuRepository) (RouteSource, error) {
	return NewRouteSource(menuConf.Source, c.User, menuRepo)
}

// ProvideSessionRegistry 加载基础菜单并创建会话管理器
func ProvideSessionRegistry(
	menuConf conf.MenuConfig,
	source RouteSource,
	snapshots repo.IRouteSnapshotRepository,
	authorizer *authz.Authorizer,
	c *client.Client,
) (*SessionRegistry, error) {
	baseline, err := LoadBaseline(menuConf.BaselineFile)
	if err != nil {
		return nil, err
	}
	return NewSessionRegistry(baseline, source, snapshots, authorizer, c.DingTalk, SessionConfig{
		HideHome:      menuConf.HideHome,
		CacheDebounce: menuConf.CacheDebounceDuration(),
		SnapshotTTL:   menuConf.SnapshotTTLDuration(),
	}), nil
}
