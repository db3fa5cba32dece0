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

package client

import (
	"context"
	"net/http"

	"github.com/go-arcade/console/internal/engine/model"
)

// UserAPI 用户与登录接口
type UserAPI struct {
	c *Client
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Avatar       string   `json:"avatar"`
	Username     string   `json:"username"`
	Nickname     string   `json:"nickname"`
	Roles        []string `json:"roles"`
	Permissions  []string `json:"permissions"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	Expires      string   `json:"expires"`
}

// Login 登录
func (a *UserAPI) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	res, err := call[LoginResult](ctx, a.c, "", http.MethodPost, "/api/user/login/", nil, req)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// AsyncRoutes 获取当前用户可访问的动态路由
func (a *UserAPI) AsyncRoutes(ctx context.Context, token string) ([]*model.RouteNode, error) {
	res, err := call[[]*model.RouteNode](ctx, a.c, token, http.MethodGet, "/api/system/asyncroutes/", nil, nil)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// ListUsers 用户列表（分页）
func (a *UserAPI) ListUsers(ctx context.Context, token string, query Query) (*Result[[]map[string]any], error) {
	return call[[]map[string]any](ctx, a.c, token, http.MethodGet, "/api/user/", query, nil)
}
