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

// Package tree 提供路由/菜单树的纯函数工具：排序、可见性与权限裁剪、扁平化。
// 所有函数都不修改入参，返回新的节点。
package tree

import (
	"cmp"
	"slices"

	"github.com/go-arcade/console/internal/engine/model"
)

// PermissionChecker decides whether the session may see a node that declares required roles.
type PermissionChecker func(node *model.RouteNode) bool

// RoleChecker allows a node when its meta.roles shares at least one role with held.
func RoleChecker(held ...string) PermissionChecker {
	set := make(map[string]struct{}, len(held))
	for _, r := range held {
		set[r] = struct{}{}
	}
	return func(node *model.RouteNode) bool {
		for _, r := range node.Meta.Roles() {
			if _, ok := set[r]; ok {
				return true
			}
		}
		return false
	}
}

// Ascending 按 meta.rank 升序排列同级节点（递归）。
// 未设置 rank 的节点排在最后，相同 rank 保持原有顺序。
func Ascending(routes []*model.RouteNode) []*model.RouteNode {
	out := model.CloneRoutes(routes)
	ascending(out)
	return out
}

func ascending(routes []*model.RouteNode) {
	slices.SortStableFunc(routes, func(a, b *model.RouteNode) int {
		ra, okA := a.Meta.Rank()
		rb, okB := b.Meta.Rank()
		switch {
		case okA && okB:
			return cmp.Compare(ra, rb)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
	for _, r := range routes {
		ascending(r.Children)
	}
}

// FilterTree 删除 meta.showLink 显式为 false 的节点及其子树。
func FilterTree(routes []*model.RouteNode) []*model.RouteNode {
	var out []*model.RouteNode
	for _, r := range routes {
		if r == nil || r.Meta.Hidden() {
			continue
		}
		c := shallow(r)
		if r.HasChildren() {
			c.Children = FilterTree(r.Children)
		}
		out = append(out, c)
	}
	return out
}

// FilterNoPermissionTree 按权限裁剪：未声明 roles 的节点总是保留；
// 原本有子节点但子节点全部被裁掉的分组节点也一并移除。
func FilterNoPermissionTree(routes []*model.RouteNode, check PermissionChecker) []*model.RouteNode {
	var out []*model.RouteNode
	for _, r := range routes {
		if r == nil {
			continue
		}
		if len(r.Meta.Roles()) > 0 && (check == nil || !check(r)) {
			continue
		}
		c := shallow(r)
		if r.HasChildren() {
			c.Children = FilterNoPermissionTree(r.Children, check)
			if len(c.Children) == 0 {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// shallow copies the node without its children; meta is copied.
func shallow(n *model.RouteNode) *model.RouteNode {
	c := *n
	c.Meta = n.Meta.Clone()
	c.Children = nil
	return &c
}
