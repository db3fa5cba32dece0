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

package router

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arcade/console/internal/engine/client"
	"github.com/go-arcade/console/internal/engine/model"
	"github.com/go-arcade/console/internal/engine/repo"
	"github.com/go-arcade/console/internal/engine/service"
	"github.com/go-arcade/console/pkg/cache"
	httpx "github.com/go-arcade/console/pkg/http"
	"github.com/go-arcade/console/pkg/http/jwt"
	"github.com/go-arcade/console/pkg/metrics"
)

const secret = "router-test-secret"

// console 指标只注册到第一个 registry
var metricsServer = metrics.ProvideMetricsServer(metrics.MetricsConfig{})

type staticRoutes []*model.RouteNode

func (s staticRoutes) FetchRoutes(context.Context, model.Identity) ([]*model.RouteNode, error) {
	return model.CloneRoutes(s), nil
}

type fakeDingTalkAPI struct {
	configs []model.DingTalkProfile
	synced  []string
}

func (f *fakeDingTalkAPI) ListConfigs(context.Context, string, client.Query) ([]model.DingTalkProfile, error) {
	return f.configs, nil
}

func (f *fakeDingTalkAPI) CreateConfig(_ context.Context, _ string, p model.DingTalkProfile) (model.DingTalkProfile, error) {
	p.ID = "created"
	return p, nil
}

func (f *fakeDingTalkAPI) UpdateConfig(_ context.Context, _ string, id string, p model.DingTalkProfile) (model.DingTalkProfile, error) {
	p.ID = id
	return p, nil
}

func (f *fakeDingTalkAPI) GetSyncInfo(context.Context, string, string) (model.DingTalkSyncInfo, error) {
	return model.DingTalkSyncInfo{Status: "idle", UserCount: 2}, nil
}

func (f *fakeDingTalkAPI) RunSyncCommand(_ context.Context, _ string, _ model.DingTalkSyncCommand, configId string) (any, error) {
	f.synced = append(f.synced, configId)
	return map[string]any{"accepted": true}, nil
}

type testServer struct {
	app      *fiber.App
	token    string
	dingtalk *fakeDingTalkAPI
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	routes := staticRoutes{
		{
			Path: "/system",
			Name: "System",
			Meta: model.Meta{model.MetaTitle: "系统管理", model.MetaRank: 2},
			Children: []*model.RouteNode{
				{Path: "/system/user", Name: "SystemUser", Meta: model.Meta{model.MetaTitle: "用户", model.MetaRoles: []string{"admin"}}},
				{Path: "/system/audit", Name: "SystemAudit", Meta: model.Meta{model.MetaTitle: "审计", model.MetaRoles: []string{"auditor"}}},
			},
		},
	}
	api := &fakeDingTalkAPI{configs: []model.DingTalkProfile{{ID: "c1", Name: "one"}, {ID: "c2", Name: "two"}}}
	registry := service.NewSessionRegistry(service.DefaultBaseline(), routes, nil, nil, api, service.SessionConfig{})

	rt := NewRouter(&httpx.Http{
		ExposeMetrics: true,
		Auth:          httpx.Auth{SecretKey: secret},
	}, registry, metricsServer)

	token, err := jwt.GenToken(jwt.AuthClaims{UserId: "u1", Username: "alice", Roles: []string{"admin"}}, []byte(secret), "", 10)
	require.NoError(t, err)
	return &testServer{app: rt.Router(), token: token, dingtalk: api}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (int, httpx.Response) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if s.token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+s.token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var rep httpx.Response
	require.NoError(t, sonic.Unmarshal(raw, &rep), string(raw))
	return resp.StatusCode, rep
}

func detailMap(t *testing.T, rep httpx.Response) map[string]any {
	t.Helper()
	m, ok := rep.Detail.(map[string]any)
	require.True(t, ok, "detail is %T", rep.Detail)
	return m
}

// childNames 返回 menus 中名为 parent 的节点的子节点名称
func childNames(t *testing.T, menus any, parent string) []string {
	t.Helper()
	list, ok := menus.([]any)
	require.True(t, ok, "menus is %T", menus)
	var names []string
	for _, item := range list {
		node, _ := item.(map[string]any)
		if node["name"] != parent {
			continue
		}
		children, _ := node["children"].([]any)
		for _, child := range children {
			c, _ := child.(map[string]any)
			names = append(names, c["name"].(string))
		}
	}
	return names
}

func TestRouter_PublicEndpoints(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	status, rep := s.do(t, fiber.MethodGet, "/version", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, detailMap(t, rep), "goVersion")

	resp, err = s.app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "console_menu_assemblies_total")

	status, rep = s.do(t, fiber.MethodGet, "/nowhere", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, httpx.NotFound.Code, rep.Code)
}

func TestRouter_RequiresToken(t *testing.T) {
	s := newTestServer(t)
	s.token = ""

	status, rep := s.do(t, fiber.MethodGet, "/api/v1/menus", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, httpx.TokenBeEmpty.Code, rep.Code)
}

func TestRouter_SessionLifecycle(t *testing.T) {
	s := newTestServer(t)

	status, rep := s.do(t, fiber.MethodGet, "/api/v1/menus", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, httpx.SessionNotFound.Code, rep.Code)

	status, rep = s.do(t, fiber.MethodPost, "/api/v1/session", nil)
	require.Equal(t, fiber.StatusOK, status)
	view := detailMap(t, rep)
	assert.Equal(t, "u1", view["userId"])
	assert.Equal(t, false, view["fromSnapshot"])

	status, rep = s.do(t, fiber.MethodGet, "/api/v1/menus", nil)
	require.Equal(t, fiber.StatusOK, status)
	flat, ok := detailMap(t, rep)["flattening"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, flat, "SystemUser")
	assert.Contains(t, flat, "Welcome")
	// 扁平索引保留被裁剪的路由
	assert.Contains(t, flat, "SystemAudit")
	assert.Equal(t, []string{"SystemUser"}, childNames(t, detailMap(t, rep)["menus"], "System"))

	status, rep = s.do(t, fiber.MethodGet, "/api/v1/menus/routes/SystemUser", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "/system/user", detailMap(t, rep)["path"])

	status, rep = s.do(t, fiber.MethodGet, "/api/v1/menus/routes/Missing", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, httpx.RouteNotFound.Code, rep.Code)

	status, _ = s.do(t, fiber.MethodDelete, "/api/v1/session", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, rep = s.do(t, fiber.MethodGet, "/api/v1/session", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, httpx.SessionNotFound.Code, rep.Code)
}

func TestRouter_CacheAndTags(t *testing.T) {
	s := newTestServer(t)
	status, _ := s.do(t, fiber.MethodPost, "/api/v1/session", nil)
	require.Equal(t, fiber.StatusOK, status)

	status, rep := s.do(t, fiber.MethodPost, "/api/v1/cache", service.CacheOp{Mode: "bogus", Name: "SystemUser"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, httpx.InvalidCacheMode.Code, rep.Code)

	status, rep = s.do(t, fiber.MethodPost, "/api/v1/tags", model.Tag{Path: "/system/user", Name: "SystemUser"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, rep.Detail, 1)

	status, rep = s.do(t, fiber.MethodPost, "/api/v1/cache", service.CacheOp{Mode: service.CacheModeAdd, Name: "SystemUser"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []any{"SystemUser"}, rep.Detail)

	status, rep = s.do(t, fiber.MethodPost, "/api/v1/tags", model.Tag{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, httpx.BadRequest.Code, rep.Code)

	status, rep = s.do(t, fiber.MethodDelete, "/api/v1/tags/SystemUser", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, rep.Detail)

	_, rep = s.do(t, fiber.MethodGet, "/api/v1/cache", nil)
	assert.Empty(t, rep.Detail)

	status, _ = s.do(t, fiber.MethodDelete, "/api/v1/cache", nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRouter_DingTalk(t *testing.T) {
	s := newTestServer(t)
	status, _ := s.do(t, fiber.MethodPost, "/api/v1/session", nil)
	require.Equal(t, fiber.StatusOK, status)

	status, rep := s.do(t, fiber.MethodGet, "/api/v1/dingtalk/configs/active", nil)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, httpx.NoActiveConfig.Code, rep.Code)

	status, rep = s.do(t, fiber.MethodPost, "/api/v1/dingtalk/configs/refresh", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "c1", detailMap(t, rep)["currentConfigId"])

	_, rep = s.do(t, fiber.MethodPut, "/api/v1/dingtalk/configs/current/c2", nil)
	assert.Equal(t, "c2", detailMap(t, rep)["currentConfigId"])

	_, rep = s.do(t, fiber.MethodPut, "/api/v1/dingtalk/configs/current/missing", nil)
	assert.Equal(t, "c2", detailMap(t, rep)["currentConfigId"])

	status, rep = s.do(t, fiber.MethodPut, "/api/v1/dingtalk/configs", model.DingTalkProfile{Name: "three"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "created", detailMap(t, rep)["id"])

	_, rep = s.do(t, fiber.MethodGet, "/api/v1/dingtalk/configs/active", nil)
	assert.Equal(t, "three", detailMap(t, rep)["name"])

	_, rep = s.do(t, fiber.MethodGet, "/api/v1/dingtalk/sync-info", nil)
	assert.Equal(t, "idle", detailMap(t, rep)["status"])

	status, rep = s.do(t, fiber.MethodPost, "/api/v1/dingtalk/sync", model.DingTalkSyncCommand{Operation: "drop_tables"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, httpx.InvalidSyncCommand.Code, rep.Code)

	status, _ = s.do(t, fiber.MethodPost, "/api/v1/dingtalk/sync", model.DingTalkSyncCommand{Operation: model.SyncOpUsers, Mode: model.SyncModeFull})
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = s.do(t, fiber.MethodPost, "/api/v1/dingtalk/sync?scope=global", model.DingTalkSyncCommand{Operation: model.SyncOpFull})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"created", ""}, s.dingtalk.synced)
}

func TestRouter_DingTalkSelectionSurvivesLaterRequests(t *testing.T) {
	s := newTestServer(t)
	status, _ := s.do(t, fiber.MethodPost, "/api/v1/session", nil)
	require.Equal(t, fiber.StatusOK, status)
	status, _ = s.do(t, fiber.MethodPost, "/api/v1/dingtalk/configs/refresh", nil)
	require.Equal(t, fiber.StatusOK, status)

	_, rep := s.do(t, fiber.MethodPut, "/api/v1/dingtalk/configs/current/c2", nil)
	require.Equal(t, "c2", detailMap(t, rep)["currentConfigId"])

	// 后续请求复用同一个请求缓冲区
	s.do(t, fiber.MethodPut, "/api/v1/dingtalk/configs/current/zz", nil)
	s.do(t, fiber.MethodGet, "/api/v1/menus/routes/NoSuchRouteName", nil)
	s.do(t, fiber.MethodPost, "/api/v1/tags", model.Tag{Path: "/system/user", Name: "SystemUser"})

	_, rep = s.do(t, fiber.MethodGet, "/api/v1/dingtalk/configs", nil)
	assert.Equal(t, "c2", detailMap(t, rep)["currentConfigId"])
	_, rep = s.do(t, fiber.MethodGet, "/api/v1/dingtalk/configs/active", nil)
	assert.Equal(t, "two", detailMap(t, rep)["name"])
}

func TestRouter_TagsSurviveLaterRequests(t *testing.T) {
	s := newTestServer(t)
	status, _ := s.do(t, fiber.MethodPost, "/api/v1/session", nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = s.do(t, fiber.MethodPost, "/api/v1/tags", model.Tag{Path: "/system/user", Name: "SystemUser"})
	require.Equal(t, fiber.StatusOK, status)
	s.do(t, fiber.MethodPost, "/api/v1/cache", service.CacheOp{Mode: service.CacheModeAdd, Name: "XXXXXXXXXXXXXXXX"})
	s.do(t, fiber.MethodPost, "/api/v1/tags", model.Tag{Path: "/zzzzzzzzzzzz", Name: "ZZZZZZZZZZ"})

	_, rep := s.do(t, fiber.MethodGet, "/api/v1/tags", nil)
	tags, ok := rep.Detail.([]any)
	require.True(t, ok, "detail is %T", rep.Detail)
	require.Len(t, tags, 2)
	first, _ := tags[0].(map[string]any)
	assert.Equal(t, "/system/user", first["path"])
	assert.Equal(t, "SystemUser", first["name"])
}

type switchableRoutes struct {
	mu     sync.Mutex
	routes []*model.RouteNode
	err    error
}

func (s *switchableRoutes) FetchRoutes(context.Context, model.Identity) ([]*model.RouteNode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return model.CloneRoutes(s.routes), nil
}

func TestRouter_OpenSessionFromSnapshot(t *testing.T) {
	source := &switchableRoutes{routes: []*model.RouteNode{{Path: "/hr", Name: "HR", Meta: model.Meta{model.MetaTitle: "人事"}}}}
	snapshots := repo.NewRouteSnapshotRepo(cache.NewLocalCache(cache.LocalCacheConfig{}))
	registry := service.NewSessionRegistry(service.DefaultBaseline(), source, snapshots, nil, &fakeDingTalkAPI{},
		service.SessionConfig{SnapshotTTL: time.Hour})
	rt := NewRouter(&httpx.Http{Auth: httpx.Auth{SecretKey: secret}}, registry, metricsServer)
	token, err := jwt.GenToken(jwt.AuthClaims{UserId: "u1", Roles: []string{"hr"}}, []byte(secret), "", 10)
	require.NoError(t, err)
	s := &testServer{app: rt.Router(), token: token}

	status, rep := s.do(t, fiber.MethodPost, "/api/v1/session", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, httpx.Success.Code, rep.Code)
	assert.Equal(t, false, detailMap(t, rep)["fromSnapshot"])

	source.mu.Lock()
	source.err = errors.New("route source down")
	source.mu.Unlock()

	status, rep = s.do(t, fiber.MethodPost, "/api/v1/session", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, httpx.SnapshotServed.Code, rep.Code)
	assert.Equal(t, httpx.SnapshotServed.Msg, rep.Msg)
	assert.Equal(t, true, detailMap(t, rep)["fromSnapshot"])

	_, rep = s.do(t, fiber.MethodGet, "/api/v1/menus/routes/HR", nil)
	assert.Equal(t, "/hr", detailMap(t, rep)["path"])
}
