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
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/go-arcade/console/internal/engine/client"
	"github.com/go-arcade/console/internal/engine/model"
	"github.com/go-arcade/console/internal/engine/service"
	httpx "github.com/go-arcade/console/pkg/http"
	"github.com/go-arcade/console/pkg/http/middleware"
	"github.com/go-arcade/console/pkg/log"
)

// fail 把服务层错误映射为响应码
func fail(c *fiber.Ctx, err error) error {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return httpx.WithRepErr(c, fiber.StatusNotFound, httpx.SessionNotFound, c.Path())
	case errors.Is(err, service.ErrNoActiveConfig):
		return httpx.WithRepErr(c, fiber.StatusConflict, httpx.NoActiveConfig, c.Path())
	case errors.Is(err, service.ErrInvalidSyncCommand):
		return httpx.WithRepErrMsg(c, fiber.StatusBadRequest, httpx.InvalidSyncCommand, err)
	case client.IsUnauthorized(err):
		return httpx.WithRepErr(c, fiber.StatusUnauthorized, httpx.Unauthorized, c.Path())
	case errors.As(err, &apiErr):
		return httpx.WithRepErrMsg(c, fiber.StatusBadGateway, httpx.UpstreamFailed, err)
	default:
		log.Errorw("request failed", "path", c.Path(), "error", err)
		return httpx.WithRepErr(c, fiber.StatusInternalServerError, httpx.Failed, c.Path())
	}
}

func badRequest(c *fiber.Ctx, err error) error {
	return httpx.WithRepErrMsg(c, fiber.StatusBadRequest, httpx.RequestParameterParsingFailed, err)
}

// identity 从认证中间件写入的 claims 构造会话身份
func identity(c *fiber.Ctx) (model.Identity, bool) {
	claims, ok := middleware.Claims(c)
	if !ok {
		return model.Identity{}, false
	}
	token, _ := c.Locals(middleware.TokenKey).(string)
	return model.Identity{
		UserId:   claims.UserId,
		Username: claims.Username,
		Roles:    claims.Roles,
		Token:    token,
	}, true
}

// session 当前用户已打开的会话
func (rt *Router) session(c *fiber.Ctx) (*service.Session, error) {
	claims, ok := middleware.Claims(c)
	if !ok {
		return nil, service.ErrSessionNotFound
	}
	return rt.Sessions.Get(claims.UserId)
}
