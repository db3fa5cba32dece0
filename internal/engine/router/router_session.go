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

	"github.com/gofiber/fiber/v2"

	"github.com/go-arcade/console/internal/engine/service"
	httpx "github.com/go-arcade/console/pkg/http"
	"github.com/go-arcade/console/pkg/http/middleware"
)

type sessionView struct {
	UserId       string    `json:"userId"`
	Username     string    `json:"username,omitempty"`
	Roles        []string  `json:"roles"`
	OpenedAt     time.Time `json:"openedAt"`
	FromSnapshot bool      `json:"fromSnapshot"`
	HideHome     bool      `json:"hideHome"`
	MenuCount    int       `json:"menuCount"`
}

func (rt *Router) sessionRouter(r fiber.Router, auth fiber.Handler) {
	sessionGroup := r.Group("/session", auth)
	{
		sessionGroup.Post("/", rt.openSession)    // POST /session - fetch routes and assemble menus
		sessionGroup.Get("/", rt.getSession)      // GET /session - current session
		sessionGroup.Delete("/", rt.closeSession) // DELETE /session - logout
	}
}

func newSessionView(sess *service.Session) sessionView {
	return sessionView{
		UserId:       sess.Identity.UserId,
		Username:     sess.Identity.Username,
		Roles:        sess.Identity.Roles,
		OpenedAt:     sess.OpenedAt,
		FromSnapshot: sess.FromSnapshot,
		HideHome:     sess.Permission.HideHome(),
		MenuCount:    len(sess.Permission.WholeMenus()),
	}
}

func (rt *Router) openSession(c *fiber.Ctx) error {
	id, ok := identity(c)
	if !ok {
		return httpx.WithRepErr(c, fiber.StatusUnauthorized, httpx.Unauthorized, c.Path())
	}
	sess, err := rt.Sessions.Open(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	if sess.FromSnapshot {
		return httpx.WithRepDetail(c, httpx.SnapshotServed, newSessionView(sess))
	}
	c.Locals(middleware.DETAIL, newSessionView(sess))
	return nil
}

func (rt *Router) getSession(c *fiber.Ctx) error {
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, newSessionView(sess))
	return nil
}

func (rt *Router) closeSession(c *fiber.Ctx) error {
	claims, _ := middleware.Claims(c)
	if err := rt.Sessions.Close(c.UserContext(), claims.UserId); err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.OPERATION, "")
	return nil
}
