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

import "github.com/go-arcade/console/internal/engine/model"

// Flatten 按先序遍历返回所有节点（不论可见性），节点为副本且不带子节点。
func Flatten(routes []*model.RouteNode) []*model.RouteNode {
	var out []*model.RouteNode
	var walk func([]*model.RouteNode)
	walk = func(nodes []*model.RouteNode) {
		for _, n := range nodes {
			if n == nil {
				continue
			}
			out = append(out, shallow(n))
			walk(n.Children)
		}
	}
	walk(routes)
	return out
}

// FormatFlatteningRoutes 建立 name -> 节点 的索引。
// 没有 name 的节点不进入索引；重名时后出现的覆盖先出现的。
func FormatFlatteningRoutes(routes []*model.RouteNode) map[string]*model.RouteNode {
	flat := Flatten(routes)
	index := make(map[string]*model.RouteNode, len(flat))
	for _, n := range flat {
		if n.Name == "" {
			continue
		}
		index[n.Name] = n
	}
	return index
}

// Paths 返回树中所有非空路径（先序）
func Paths(routes []*model.RouteNode) []string {
	var paths []string
	for _, n := range Flatten(routes) {
		if n.Path != "" {
			paths = append(paths, n.Path)
		}
	}
	return paths
}
