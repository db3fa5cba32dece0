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
	"sync"
	"time"

	"github.com/go-arcade/console/internal/engine/client"
	"github.com/go-arcade/console/internal/engine/model"
	"github.com/go-arcade/console/internal/engine/repo"
	"github.com/go-arcade/console/internal/engine/tree"
	"github.com/go-arcade/console/pkg/authz"
	"github.com/go-arcade/console/pkg/log"
	"golang.org/x/sync/singleflight"
)

// Session 一个登录用户的控制台状态，登录时创建，登出时重置
type Session struct {
	Identity   model.Identity
	Permission *PermissionStore
	Tags       *MultiTags
	Configs    *DingTalkStore
	DingTalk   *DingTalkService
	OpenedAt   time.Time
	// FromSnapshot 路由来自缓存快照而非路由源
	FromSnapshot bool
}

func (s *Session) reset() {
	s.Permission.Reset()
	s.Tags.Replace(nil)
	s.Configs.Reset()
}

// SessionConfig 会话相关配置
type SessionConfig struct {
	HideHome      bool
	CacheDebounce time.Duration
	SnapshotTTL   time.Duration
}

// SessionRegistry 按用户 id 管理会话
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	// 同一用户并发登录时只拉取一次路由
	flight singleflight.Group

	baseline   []*model.RouteNode
	source     RouteSource
	snapshots  repo.IRouteSnapshotRepository
	authorizer *authz.Authorizer
	dingtalk   DingTalkAPI
	conf       SessionConfig
}

// NewSessionRegistry creates a registry. snapshots and authorizer may be nil.
func NewSessionRegistry(
	baseline []*model.RouteNode,
	source RouteSource,
	snapshots repo.IRouteSnapshotRepository,
	authorizer *authz.Authorizer,
	dingtalk DingTalkAPI,
	conf SessionConfig,
) *SessionRegistry {
	return &SessionRegistry{
		sessions:   make(map[string]*Session),
		baseline:   model.CloneRoutes(baseline),
		source:     source,
		snapshots:  snapshots,
		authorizer: authorizer,
		dingtalk:   dingtalk,
		conf:       conf,
	}
}

// Open 获取用户的动态路由并组装菜单，替换该用户已有的会话
func (r *SessionRegistry) Open(ctx context.Context, identity model.Identity) (*Session, error) {
	routes, fromSnapshot, err := r.fetchRoutes(ctx, identity)
	if err != nil {
		return nil, err
	}

	tags := NewMultiTags()
	store := NewPermissionStore(r.baseline,
		WithHideHome(r.conf.HideHome),
		WithPermissionChecker(r.checker(identity)),
		WithTagSource(tags),
		WithCacheDebounce(r.conf.CacheDebounce),
	)
	store.HandleWholeMenus(routes)

	configs := NewDingTalkStore()
	sess := &Session{
		Identity:     identity,
		Permission:   store,
		Tags:         tags,
		Configs:      configs,
		DingTalk:     NewDingTalkService(r.dingtalk, configs, identity.Token),
		OpenedAt:     time.Now(),
		FromSnapshot: fromSnapshot,
	}

	r.mu.Lock()
	old := r.sessions[identity.UserId]
	r.sessions[identity.UserId] = sess
	r.mu.Unlock()
	if old != nil {
		old.reset()
	}

	log.Infow("session opened", "user", identity.UserId, "roles", identity.Roles, "snapshot", fromSnapshot)
	return sess, nil
}

type fetchResult struct {
	routes       []*model.RouteNode
	fromSnapshot bool
}

func (r *SessionRegistry) fetchRoutes(ctx context.Context, identity model.Identity) ([]*model.RouteNode, bool, error) {
	v, err, _ := r.flight.Do(identity.UserId+"\x00"+identity.Token, func() (any, error) {
		routes, fromSnapshot, err := r.loadRoutes(ctx, identity)
		if err != nil {
			return nil, err
		}
		return fetchResult{routes: routes, fromSnapshot: fromSnapshot}, nil
	})
	if err != nil {
		return nil, false, err
	}
	res := v.(fetchResult)
	return res.routes, res.fromSnapshot, nil
}

// loadRoutes 优先使用路由源，失败时回退到缓存快照；令牌失效时不回退
func (r *SessionRegistry) loadRoutes(ctx context.Context, identity model.Identity) ([]*model.RouteNode, bool, error) {
	routes, err := r.source.FetchRoutes(ctx, identity)
	if err == nil {
		if r.snapshots != nil {
			if serr := r.snapshots.Save(ctx, identity.UserId, routes, r.conf.SnapshotTTL); serr != nil {
				log.Warnw("failed to save route snapshot", "user", identity.UserId, "error", serr)
			}
		}
		return routes, false, nil
	}
	if r.snapshots == nil || client.IsUnauthorized(err) {
		return nil, false, err
	}

	cached, ok, lerr := r.snapshots.Load(ctx, identity.UserId)
	if lerr != nil {
		log.Warnw("failed to load route snapshot", "user", identity.UserId, "error", lerr)
		return nil, false, err
	}
	if !ok {
		return nil, false, err
	}
	log.Warnw("route source unavailable, using snapshot", "user", identity.UserId, "error", err)
	return cached, true, nil
}

func (r *SessionRegistry) checker(identity model.Identity) tree.PermissionChecker {
	if r.authorizer == nil {
		return tree.RoleChecker(identity.Roles...)
	}
	held := identity.Roles
	return func(node *model.RouteNode) bool {
		return r.authorizer.Allowed(held, node.Path, node.Meta.Roles())
	}
}

func (r *SessionRegistry) Get(userId string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[userId]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Close 登出：重置并移除会话，同时删除路由快照
func (r *SessionRegistry) Close(ctx context.Context, userId string) error {
	r.mu.Lock()
	sess, ok := r.sessions[userId]
	delete(r.sessions, userId)
	r.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	sess.reset()

	if r.snapshots != nil {
		if err := r.snapshots.Delete(ctx, userId); err != nil {
			log.Warnw("failed to delete route snapshot", "user", userId, "error", err)
		}
	}
	log.Infow("session closed", "user", userId)
	return nil
}

// Len returns the number of open sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// CloseAll 进程退出时重置所有会话，不删除路由快照
func (r *SessionRegistry) CloseAll() int {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, sess := range sessions {
		sess.reset()
	}
	return len(sessions)
}
