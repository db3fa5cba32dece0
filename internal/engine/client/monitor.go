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
)

// MonitorAPI 登录与操作日志
type MonitorAPI struct {
	c *Client
}

func (a *MonitorAPI) ListLoginLogs(ctx context.Context, token string, query Query) (*Result[[]map[string]any], error) {
	return call[[]map[string]any](ctx, a.c, token, http.MethodGet, "/api/monitor/loginlog/", query, nil)
}

func (a *MonitorAPI) ListOperationLogs(ctx context.Context, token string, query Query) (*Result[[]map[string]any], error) {
	return call[[]map[string]any](ctx, a.c, token, http.MethodGet, "/api/monitor/operationlog/", query, nil)
}
