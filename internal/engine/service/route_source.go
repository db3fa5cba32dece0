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
	"context"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/go-arcade/console/internal/engine/model"
	"github.com/go-arcade/console/internal/engine/repo"
	"github.com/go-arcade/console/internal/engine/tree"
	"github.com/go-arcade/console/pkg/log"
)

// 动态路由来源
const (
	RouteSourceRemote   = "remote"
	RouteSourceDatabase = "database"
)

// RouteSource fetches the routes a session is permitted to see.
type RouteSource interface {
	FetchRoutes(ctx context.Context, identity model.Identity) ([]*model.RouteNode, error)
}

// AsyncRoutesAPI is the remote endpoint serving a user's routes.
type AsyncRoutesAPI interface {
	AsyncRoutes(ctx context.Context, token string) ([]*model.RouteNode, error)
}

// RemoteRouteSource 通过远程接口以调用方令牌获取动态路由
type RemoteRouteSource struct {
	api AsyncRoutesAPI
}

func NewRemoteRouteSource(api AsyncRoutesAPI) *RemoteRouteSource {
	return &RemoteRouteSource{api: api}
}

func (s *RemoteRouteSource) FetchRoutes(ctx context.Context, identity model.Identity) ([]*model.RouteNode, error) {
	routes, err := s.api.AsyncRoutes(ctx, identity.Token)
	if err != nil {
		return nil, fmt.Errorf("fetch async routes: %w", err)
	}
	return routes, nil
}

// DatabaseRouteSource 按角色-菜单绑定从数据库构建动态路由
type DatabaseRouteSource struct {
	menuRepo repo.IMenuRepository
}

func NewDatabaseRouteSource(menuRepo repo.IMenuRepository) *DatabaseRouteSource {
	return &DatabaseRouteSource{menuRepo: menuRepo}
}

// FetchRoutes keeps the menus bound to the identity's roles plus their ancestors,
// so a bound child is never orphaned from its group.
func (s *DatabaseRouteSource) FetchRoutes(ctx context.Context, identity model.Identity) ([]*model.RouteNode, error) {
	menus, err := s.menuRepo.ListMenus(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	boundIds, err := s.menuRepo.ListMenuIdsByRoles(ctx, identity.Roles)
	if err != nil {
		return nil, fmt.Errorf("list menu bindings: %w", err)
	}

	byId := make(map[string]model.Menu, len(menus))
	for _, m := range menus {
		byId[m.MenuId] = m
	}
	keep := make(map[string]struct{}, len(boundIds))
	for _, id := range boundIds {
		// 向上补齐父级菜单，遇到环或缺失的父级即停止
		for cur := id; cur != ""; {
			if _, seen := keep[cur]; seen {
				break
			}
			m, ok := byId[cur]
			if !ok {
				break
			}
			keep[cur] = struct{}{}
			cur = m.ParentId
		}
	}

	permitted := make([]model.Menu, 0, len(keep))
	for _, m := range menus {
		if _, ok := keep[m.MenuId]; ok {
			permitted = append(permitted, m)
		}
	}
	log.Debugw("menus resolved from database", "user", identity.UserId, "bound", len(boundIds), "permitted", len(permitted))
	return tree.BuildFromMenus(permitted), nil
}

// NewRouteSource 按配置选择路由来源，默认远程接口
func NewRouteSource(kind string, api AsyncRoutesAPI, menuRepo repo.IMenuRepository) (RouteSource, error) {
	switch kind {
	case "", RouteSourceRemote:
		return NewRemoteRouteSource(api), nil
	case RouteSourceDatabase:
		return NewDatabaseRouteSource(menuRepo), nil
	default:
		return nil, fmt.Errorf("unknown route source: %s", kind)
	}
}

// DefaultBaseline 内置基础菜单：根路径重定向到欢迎页
func DefaultBaseline() []*model.RouteNode {
	return []*model.RouteNode{
		{
			Path:      rootPath,
			Name:      "Home",
			Component: "Layout",
			Redirect:  homePath,
			Meta: model.Meta{
				model.MetaIcon:  homeIcon,
				model.MetaTitle: homeTitle,
				model.MetaRank:  0,
			},
			Children: []*model.RouteNode{
				{
					Path:      homePath,
					Name:      homeName,
					Component: "welcome/index",
					Meta: model.Meta{
						model.MetaTitle:    homeTitle,
						model.MetaShowLink: true,
					},
				},
			},
		},
	}
}

// LoadBaseline 从 YAML 或 JSON 文件加载基础菜单，path 为空时使用内置菜单
func LoadBaseline(path string) ([]*model.RouteNode, error) {
	if path == "" {
		return DefaultBaseline(), nil
	}
	routes, err := LoadRoutesFile(path)
	if err != nil {
		return nil, fmt.Errorf("load baseline menus: %w", err)
	}
	log.Infow("baseline menus loaded", "file", path, "top", len(routes))
	return routes, nil
}

// LoadRoutesFile 读取 YAML 或 JSON 格式的路由树
func LoadRoutesFile(path string) ([]*model.RouteNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var routes []*model.RouteNode
	if err := yaml.Unmarshal(data, &routes); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return routes, nil
}
