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

// Package client 是后台 HR/身份/钉钉接口的类型化客户端。
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"

	"github.com/go-arcade/console/pkg/log"
)

// Config 远程接口配置
type Config struct {
	BaseURL    string
	Timeout    time.Duration // 秒
	RetryCount int
}

// Client 远程接口客户端，按业务模块分组
type Client struct {
	http *resty.Client

	User     *UserAPI
	DingTalk *DingTalkAPI
	HR       *HRAPI
	Monitor  *MonitorAPI
}

// New 创建客户端
func New(conf Config) *Client {
	timeout := conf.Timeout * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	httpClient := resty.New().
		SetBaseURL(conf.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(conf.RetryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		AddRetryCondition(retryIdempotent).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	c := &Client{http: httpClient}
	c.User = &UserAPI{c: c}
	c.DingTalk = &DingTalkAPI{c: c}
	c.HR = &HRAPI{c: c}
	c.Monitor = &MonitorAPI{c: c}
	return c
}

// retryIdempotent 只重试 GET/HEAD：连接错误或网关类 5xx。写请求一律不重试。
func retryIdempotent(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return false
	}
	switch resp.Request.Method {
	case http.MethodGet, http.MethodHead:
	default:
		return false
	}
	if err != nil {
		return true
	}
	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Query 查询参数，原样透传
type Query map[string]string

// call 发送请求并解析统一响应信封。非 2xx 或 success=false 返回 *APIError。
func call[T any](ctx context.Context, c *Client, token, method, path string, query Query, body any) (*Result[T], error) {
	var out Result[T]
	req := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&out)
	if token != "" {
		req.SetAuthToken(token)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Errorw("remote api call failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		msg := out.Msg
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		log.Warnw("remote api returned error status", "method", method, "path", path, "status", resp.StatusCode(), "msg", msg)
		return nil, &APIError{Status: resp.StatusCode(), Msg: msg}
	}
	if !out.Success {
		log.Warnw("remote api returned failure", "method", method, "path", path, "msg", out.Msg)
		return nil, &APIError{Status: resp.StatusCode(), Msg: out.Msg}
	}
	return &out, nil
}
