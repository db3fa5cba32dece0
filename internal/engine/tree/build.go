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

package tree

import (
	"github.com/go-arcade/console/internal/engine/model"
	"github.com/go-arcade/console/pkg/log"
)

// BuildFromMenus 将菜单表行组装为路由树，禁用的菜单被跳过。
// 子节点顺序与入参顺序一致；父菜单不存在时当作根节点处理。
func BuildFromMenus(menus []model.Menu) []*model.RouteNode {
	nodes := make(map[string]*model.RouteNode, len(menus))
	parents := make(map[string]string, len(menus))
	order := make([]string, 0, len(menus))

	// 第一遍：创建所有节点
	for i := range menus {
		menu := &menus[i]
		if menu.IsEnabled != model.MenuEnabled {
			continue
		}
		if _, dup := nodes[menu.MenuId]; dup {
			log.Warnw("duplicate menu id", "menuId", menu.MenuId)
			continue
		}
		nodes[menu.MenuId] = menu.ToRouteNode()
		parents[menu.MenuId] = menu.ParentId
		order = append(order, menu.MenuId)
	}

	// 第二遍：构建父子关系
	var roots []*model.RouteNode
	for _, id := range order {
		node := nodes[id]
		parentId := parents[id]
		if parentId == "" {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[parentId]
		if !ok {
			log.Warnw("parent menu not found", "menuId", id, "parentId", parentId)
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}
