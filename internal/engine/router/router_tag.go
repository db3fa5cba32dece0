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

func (rt *Router) tagRouter(r fiber.Router, auth fiber.Handler) {
	tagGroup := r.Group("/tags", auth)
	{
		tagGroup.Get("/", rt.listTags)          // GET /tags - open tags
		tagGroup.Post("/", rt.pushTag)          // POST /tags - open a tag
		tagGroup.Delete("/:name", rt.removeTag) // DELETE /tags/:name - close a tag
	}
}

func (rt *Router) listTags(c *fiber.Ctx) error {
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, sess.Tags.Tags())
	return nil
}

func (rt *Router) pushTag(c *fiber.Ctx) error {
	var tag model.Tag
	if err := c.BodyParser(&tag); err != nil {
		return badRequest(c, err)
	}
	if tag.Path == "" {
		return httpx.WithRepErr(c, fiber.StatusBadRequest, httpx.BadRequest, c.Path())
	}
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	sess.Tags.Push(tag)
	c.Locals(middleware.DETAIL, sess.Tags.Tags())
	return nil
}

func (rt *Router) removeTag(c *fiber.Ctx) error {
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	name := c.Params("name")
	if sess.Tags.Remove(name) > 0 {
		// 关闭页签同时移出 keep-alive 缓存
		sess.Permission.CacheOperate(service.CacheOp{Mode: service.CacheModeDelete, Name: name})
	}
	c.Locals(middleware.DETAIL, sess.Tags.Tags())
	return nil
}
