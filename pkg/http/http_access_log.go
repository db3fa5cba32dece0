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

package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/go-arcade/console/pkg/log"
)

// AccessLogFormat 访问日志中间件，写入 zap
func AccessLogFormat(cfg *Http) fiber.Handler {
	// exclude api path
	// tips: 这里的路径是不需要记录日志的路径，url为端口后的全部路径
	excludedPaths := map[string]bool{
		"/health":  true,
		"/metrics": true,
	}

	if cfg != nil && !cfg.AccessLog {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		if excludedPaths[c.Path()] {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		latency := time.Since(start)

		query := string(c.Context().QueryArgs().QueryString())
		if query != "" {
			query = "?" + query
		}

		log.Infow("HTTP request",
			"method", c.Method(),
			"path", c.Path(),
			"query", query,
			"status", c.Response().StatusCode(),
			"ip", clientIP(c),
			"user_agent", c.Get(fiber.HeaderUserAgent),
			"request_id", c.Locals(RequestIdKey),
			"latency", latency.String(),
		)
		return err
	}
}

// clientIP 优先使用 X-Forwarded-For 的第一个地址
func clientIP(c *fiber.Ctx) string {
	if xff := c.Get(fiber.HeaderXForwardedFor); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(c.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return c.IP()
}

// RequestIdKey 请求 id 在 Locals 中的键
const RequestIdKey = "request_id"
