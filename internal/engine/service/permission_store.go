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
	"slices"
	"sync"
	"time"

	"github.com/go-arcade/console/internal/engine/model"
	"github.com/go-arcade/console/internal/engine/tree"
	"github.com/go-arcade/console/pkg/debounce"
	"github.com/go-arcade/console/pkg/log"
	"github.com/go-arcade/console/pkg/metrics"
)

// 缓存页操作模式
const (
	CacheModeRefresh = "refresh"
	CacheModeAdd     = "add"
	CacheModeDelete  = "delete"
)

const (
	rootPath  = "/"
	homePath  = "/welcome"
	homeName  = "Welcome"
	homeTitle = "首页"
	homeIcon  = "ep/home-filled"
)

// CacheOp 一次 keep-alive 缓存列表操作
type CacheOp struct {
	Mode string `json:"mode"`
	Name string `json:"name"`
}

// Valid reports whether Mode is one of refresh, add or delete.
func (op CacheOp) Valid() bool {
	switch op.Mode {
	case CacheModeRefresh, CacheModeAdd, CacheModeDelete:
		return true
	}
	return false
}

// TagSource lists the names of the currently open tags.
type TagSource interface {
	TagNames() []string
}

// PermissionStore 会话级菜单状态：完整菜单、扁平路由索引、keep-alive 缓存页列表
type PermissionStore struct {
	mu               sync.RWMutex
	constantMenus    []*model.RouteNode
	wholeMenus       []*model.RouteNode
	flatteningRoutes map[string]*model.RouteNode
	cachePageList    []string

	hideHome  bool
	check     tree.PermissionChecker
	tags      TagSource
	wait      time.Duration
	debouncer *debounce.Debouncer
}

// PermissionStoreOption Define PermissionStore option type.
type PermissionStoreOption func(*PermissionStore)

// WithHideHome suppresses the synthetic welcome entry.
func WithHideHome(hide bool) PermissionStoreOption {
	return func(s *PermissionStore) {
		s.hideHome = hide
	}
}

// WithPermissionChecker sets the checker for nodes that declare required roles.
// Without one, such nodes are never shown.
func WithPermissionChecker(check tree.PermissionChecker) PermissionStoreOption {
	return func(s *PermissionStore) {
		s.check = check
	}
}

// WithTagSource sets the open tags the cache list is reconciled against.
func WithTagSource(tags TagSource) PermissionStoreOption {
	return func(s *PermissionStore) {
		s.tags = tags
	}
}

// WithCacheDebounce sets the reconciliation window, default is debounce.DefaultWait.
func WithCacheDebounce(d time.Duration) PermissionStoreOption {
	return func(s *PermissionStore) {
		s.wait = d
	}
}

// NewPermissionStore creates a store over a copy of the baseline menus.
func NewPermissionStore(constantMenus []*model.RouteNode, opts ...PermissionStoreOption) *PermissionStore {
	s := &PermissionStore{
		constantMenus:    model.CloneRoutes(constantMenus),
		flatteningRoutes: map[string]*model.RouteNode{},
		wait:             debounce.DefaultWait,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.debouncer = debounce.New(debounce.WithWait(s.wait))
	return s
}

// HandleWholeMenus 合并基础菜单与动态路由，排序、裁剪后生成最终菜单和扁平索引。
// 相同输入多次调用结果一致。
func (s *PermissionStore) HandleWholeMenus(fetched []*model.RouteNode) {
	forest := append(model.CloneRoutes(s.constantMenus), model.CloneRoutes(fetched)...)

	menus := tree.FilterNoPermissionTree(tree.FilterTree(tree.Ascending(forest)), s.check)
	for i, n := range menus {
		if n.Path == rootPath {
			menus[i] = collapseRoot(n)
		}
	}
	if !s.hideHome && !hasHome(menus) {
		menus = append([]*model.RouteNode{welcomeEntry()}, menus...)
	}
	if menus == nil {
		menus = []*model.RouteNode{}
	}

	// 扁平索引基于未裁剪的合并结果，隐藏的路由也要能按名称查到
	flat := tree.FormatFlatteningRoutes(forest)

	s.mu.Lock()
	s.wholeMenus = menus
	s.flatteningRoutes = flat
	s.mu.Unlock()

	metrics.RecordMenuAssembly()
	log.Debugw("menus assembled", "top", len(menus), "routes", len(flat))
}

// collapseRoot 把根路径节点折叠成指向第一个子路由的单个菜单项
func collapseRoot(root *model.RouteNode) *model.RouteNode {
	var child *model.RouteNode
	if len(root.Children) > 0 {
		child = root.Children[0]
	}

	path, name := homePath, homeName
	meta := root.Meta.Clone()
	if meta == nil {
		meta = model.Meta{}
	}
	var childMeta model.Meta
	if child != nil {
		if child.Path != "" {
			path = child.Path
		}
		if child.Name != "" {
			name = child.Name
		}
		childMeta = child.Meta
		for k, v := range child.Meta {
			meta[k] = v
		}
	}

	meta[model.MetaIcon] = firstNonEmpty(childMeta.Icon(), root.Meta.Icon(), homeIcon)
	meta[model.MetaTitle] = firstNonEmpty(childMeta.Title(), root.Meta.Title(), homeTitle)
	meta[model.MetaShowLink] = true
	meta[model.MetaShowParent] = false
	meta[model.MetaBackstage] = false

	return &model.RouteNode{
		Path:              path,
		Name:              name,
		Component:         root.Component,
		Meta:              meta,
		NoShowingChildren: true,
	}
}

func hasHome(menus []*model.RouteNode) bool {
	return slices.ContainsFunc(menus, func(n *model.RouteNode) bool {
		return n.Path == homePath || n.Path == rootPath
	})
}

func welcomeEntry() *model.RouteNode {
	return &model.RouteNode{
		Path: homePath,
		Name: homeName,
		Meta: model.Meta{
			model.MetaTitle:    homeTitle,
			model.MetaIcon:     homeIcon,
			model.MetaShowLink: true,
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// WholeMenus returns a copy of the assembled menu tree.
func (s *PermissionStore) WholeMenus() []*model.RouteNode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := model.CloneRoutes(s.wholeMenus)
	if out == nil {
		out = []*model.RouteNode{}
	}
	return out
}

// FlatteningRoutes returns a copy of the name index.
func (s *PermissionStore) FlatteningRoutes() map[string]*model.RouteNode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]*model.RouteNode, len(s.flatteningRoutes))
	for name, n := range s.flatteningRoutes {
		out[name] = n.Clone()
	}
	return out
}

// LookupRoute 按名称查找路由，包括菜单中不可见的路由
func (s *PermissionStore) LookupRoute(name string) (*model.RouteNode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.flatteningRoutes[name]
	if !ok {
		return nil, false
	}
	return n.Clone(), true
}

// HideHome reports whether the welcome entry is suppressed.
func (s *PermissionStore) HideHome() bool {
	return s.hideHome
}

// CacheOperate 修改 keep-alive 缓存页列表，随后按打开的标签页延迟校正。
// 未知模式不修改列表，但仍会触发校正。
func (s *PermissionStore) CacheOperate(op CacheOp) {
	s.mu.Lock()
	switch op.Mode {
	case CacheModeRefresh:
		s.cachePageList = slices.DeleteFunc(s.cachePageList, func(name string) bool {
			return name == op.Name
		})
	case CacheModeAdd:
		// 不去重，重复 add 会产生重复项
		s.cachePageList = append(s.cachePageList, op.Name)
	case CacheModeDelete:
		if i := slices.Index(s.cachePageList, op.Name); i >= 0 {
			s.cachePageList = slices.Delete(s.cachePageList, i, i+1)
		}
	}
	s.mu.Unlock()

	if op.Valid() {
		metrics.RecordCacheOperation(op.Mode)
	} else {
		log.Warnw("unknown cache operation", "mode", op.Mode, "name", op.Name)
	}
	s.debouncer.Trigger(s.reconcile)
}

// reconcile 从尾到头移除不在打开标签页中的缓存页
func (s *PermissionStore) reconcile() {
	if s.tags == nil {
		return
	}
	names := s.tags.TagNames()
	open := make(map[string]struct{}, len(names))
	for _, n := range names {
		open[n] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.cachePageList) - 1; i >= 0; i-- {
		name := s.cachePageList[i]
		if _, ok := open[name]; ok {
			continue
		}
		if j := slices.Index(s.cachePageList, name); j >= 0 {
			s.cachePageList = slices.Delete(s.cachePageList, j, j+1)
		}
	}
}

// CachePageList returns a copy of the keep-alive cache list.
func (s *PermissionStore) CachePageList() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.cachePageList...)
}

// FlushCache runs a pending reconciliation now. It returns false when none was pending.
func (s *PermissionStore) FlushCache() bool {
	return s.debouncer.Flush()
}

// ClearAllCachePage 清空菜单和缓存页列表
func (s *PermissionStore) ClearAllCachePage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wholeMenus = nil
	s.cachePageList = nil
}

// Reset drops all derived state and any pending reconciliation.
func (s *PermissionStore) Reset() {
	s.debouncer.Cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.wholeMenus = nil
	s.flatteningRoutes = map[string]*model.RouteNode{}
	s.cachePageList = nil
}
