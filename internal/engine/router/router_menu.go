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
	"github.com/gofiber/fiber/v2"

	"github.com/go-arcade/console/internal/engine/model"
	"github.com/go-arcade/console/internal/engine/service"
	httpx "github.com/go-arcade/console/pkg/http"
	"github.com/go-arcade/console/pkg/http/middleware"
)

type menusView struct {
	Menus      []*model.RouteNode          `json:"menus"`
	Flattening map[string]*model.RouteNode `json:"flattening"`
}

func (rt *Router) menuRouter(r fiber.Router, auth fiber.Handler) {
	menuGroup := r.Group("/menus", auth)
	{
		menuGroup.Get("/", rt.getMenus)                   // GET /menus - assembled menu tree and name index
		menuGroup.Get("/routes/:name", rt.getRouteByName) // GET /menus/routes/:name - lookup by route name
	}
}

func (rt *Router) cacheRouter(r fiber.Router, auth fiber.Handler) {
	cacheGroup := r.Group("/cache", auth)
	{
		cacheGroup.Get("/", rt.getCachePages)      // GET /cache - keep-alive page names
		cacheGroup.Post("/", rt.operateCache)      // POST /cache - {mode, name}
		cacheGroup.Delete("/", rt.clearCachePages) // DELETE /cache - clear all
	}
}

func (rt *Router) getMenus(c *fiber.Ctx) error {
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, menusView{
		Menus:      sess.Permission.WholeMenus(),
		Flattening: sess.Permission.FlatteningRoutes(),
	})
	return nil
}

func (rt *Router) getRouteByName(c *fiber.Ctx) error {
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	node, ok := sess.Permission.LookupRoute(c.Params("name"))
	if !ok {
		return httpx.WithRepErr(c, fiber.StatusNotFound, httpx.RouteNotFound, c.Path())
	}
	c.Locals(middleware.DETAIL, node)
	return nil
}

func (rt *Router) getCachePages(c *fiber.Ctx) error {
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, sess.Permission.CachePageList())
	return nil
}

func (rt *Router) operateCache(c *fiber.Ctx) error {
	var op service.CacheOp
	if err := c.BodyParser(&op); err != nil {
		return badRequest(c, err)
	}
	if !op.Valid() {
		return httpx.WithRepErr(c, fiber.StatusBadRequest, httpx.InvalidCacheMode, c.Path())
	}
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	sess.Permission.CacheOperate(op)
	c.Locals(middleware.DETAIL, sess.Permission.CachePageList())
	return nil
}

func (rt *Router) clearCachePages(c *fiber.Ctx) error {
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	sess.Permission.ClearAllCachePage()
	c.Locals(middleware.OPERATION, "")
	return nil
}
