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
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/go-arcade/console/internal/engine/service"
	httpx "github.com/go-arcade/console/pkg/http"
	"github.com/go-arcade/console/pkg/http/middleware"
	"github.com/go-arcade/console/pkg/metrics"
	"github.com/go-arcade/console/pkg/version"
)

/**
 * @author: gagral.x@gmail.com
 * @time: 2024/9/8 15:48
 * @file: router.go
 * @description: setup router
 *  		     console api router, use by web
 */

type Router struct {
	Http     *httpx.Http
	Sessions *service.SessionRegistry
	Metrics  *metrics.Server
}

func NewRouter(httpConf *httpx.Http, sessions *service.SessionRegistry, metricsServer *metrics.Server) *Router {
	return &Router{
		Http:     httpConf,
		Sessions: sessions,
		Metrics:  metricsServer,
	}
}

func (rt *Router) Router() *fiber.App {
	bodyLimit := rt.Http.BodyLimit
	if bodyLimit <= 0 {
		bodyLimit = 4 * 1024 * 1024
	}

	// 会话状态会保存参数与请求体中的字符串，不能引用 fasthttp 复用的缓冲区
	app := fiber.New(fiber.Config{
		AppName:               "Arcade Console",
		DisableStartupMessage: true,
		ReadTimeout:           time.Duration(rt.Http.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(rt.Http.WriteTimeout) * time.Second,
		IdleTimeout:           time.Duration(rt.Http.IdleTimeout) * time.Second,
		BodyLimit:             bodyLimit,
		Immutable:             true,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.ConfigStd.Unmarshal,
	})

	app.Use(
		middleware.ExceptionMiddleware,
		middleware.RequestMiddleware(),
		httpx.AccessLogFormat(rt.Http),
		middleware.CorsMiddleware(rt.Http.AllowOrigins),
		middleware.UnifiedResponseMiddleware(),
	)

	// 健康检查
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// 版本信息
	app.Get("/version", func(c *fiber.Ctx) error {
		c.Locals(middleware.DETAIL, version.GetVersion())
		return nil
	})

	if rt.Http.ExposeMetrics && rt.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(rt.Metrics.Handler()))
	}

	if rt.Http.PProf {
		rt.debugRouter(app.Group("/debug/pprof"))
	}

	api := app.Group("/api/v1")
	auth := middleware.AuthorizationMiddleware(rt.Http.Auth.SecretKey)
	rt.sessionRouter(api, auth)
	rt.menuRouter(api, auth)
	rt.cacheRouter(api, auth)
	rt.tagRouter(api, auth)
	rt.dingtalkRouter(api, auth)

	// 找不到路径时的处理 - 必须在所有路由注册之后
	app.Use(func(c *fiber.Ctx) error {
		return httpx.WithRepErr(c, fiber.StatusNotFound, httpx.NotFound, c.Path())
	})

	return app
}
