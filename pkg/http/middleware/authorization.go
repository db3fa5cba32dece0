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

package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	goJwt "github.com/golang-jwt/jwt/v5"

	"github.com/go-arcade/console/pkg/http"
	"github.com/go-arcade/console/pkg/http/jwt"
	"github.com/go-arcade/console/pkg/log"
)

const (
	// ClaimsKey 解析后的 *jwt.AuthClaims
	ClaimsKey = "claims"
	// TokenKey 原始 access token，调用上游 API 时透传
	TokenKey = "token"
)

// AuthorizationMiddleware 认证中间件
// secretKey: 用于验证 JWT 的密钥
// This function is used as the middleware of fiber.
func AuthorizationMiddleware(secretKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		aToken := c.Get(fiber.HeaderAuthorization)
		if aToken == "" {
			return http.WithRepErr(c, fiber.StatusUnauthorized, http.TokenBeEmpty, c.Path())
		}

		// 按空格分割
		parts := strings.SplitN(aToken, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return http.WithRepErr(c, fiber.StatusUnauthorized, http.AuthorizationIncorrect, c.Path())
		}

		claims, err := jwt.ParseToken(parts[1], secretKey)
		if err != nil {
			if errors.Is(err, goJwt.ErrTokenExpired) {
				return http.WithRepErr(c, fiber.StatusUnauthorized, http.TokenExpired, c.Path())
			}
			log.Warnw("parse token failed", "path", c.Path(), "error", err)
			return http.WithRepErr(c, fiber.StatusUnauthorized, http.InvalidToken, c.Path())
		}

		c.Locals(ClaimsKey, claims)
		c.Locals(TokenKey, parts[1])
		return c.Next()
	}
}

// Claims 取出认证中间件写入的 claims
func Claims(c *fiber.Ctx) (*jwt.AuthClaims, bool) {
	claims, ok := c.Locals(ClaimsKey).(*jwt.AuthClaims)
	return claims, ok && claims != nil
}
