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
	"github.com/go-arcade/console/pkg/http/middleware"
)

type configsView struct {
	Configs         []model.DingTalkProfile `json:"configs"`
	CurrentConfigId string                  `json:"currentConfigId"`
}

func (rt *Router) dingtalkRouter(r fiber.Router, auth fiber.Handler) {
	dingtalkGroup := r.Group("/dingtalk", auth)
	{
		dingtalkGroup.Get("/configs", rt.listDingTalkConfigs)              // GET /dingtalk/configs - cached configs and selection
		dingtalkGroup.Post("/configs/refresh", rt.refreshDingTalkConfigs)  // POST /dingtalk/configs/refresh - reload from API
		dingtalkGroup.Put("/configs", rt.saveDingTalkConfig)               // PUT /dingtalk/configs - create or update
		dingtalkGroup.Get("/configs/active", rt.activeDingTalkConfig)      // GET /dingtalk/configs/active - selected config
		dingtalkGroup.Put("/configs/current/:id", rt.selectDingTalkConfig) // PUT /dingtalk/configs/current/:id - select
		dingtalkGroup.Get("/sync-info", rt.dingtalkSyncInfo)               // GET /dingtalk/sync-info - sync status of selection
		dingtalkGroup.Post("/sync", rt.runDingTalkSync)                    // POST /dingtalk/sync[?scope=global] - run sync
	}
}

func newConfigsView(sess *service.Session) configsView {
	return configsView{
		Configs:         sess.Configs.Configs(),
		CurrentConfigId: sess.Configs.CurrentConfigID(),
	}
}

func (rt *Router) listDingTalkConfigs(c *fiber.Ctx) error {
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, newConfigsView(sess))
	return nil
}

func (rt *Router) refreshDingTalkConfigs(c *fiber.Ctx) error {
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := sess.DingTalk.Refresh(c.UserContext()); err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, newConfigsView(sess))
	return nil
}

func (rt *Router) saveDingTalkConfig(c *fiber.Ctx) error {
	var profile model.DingTalkProfile
	if err := c.BodyParser(&profile); err != nil {
		return badRequest(c, err)
	}
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	saved, err := sess.DingTalk.Save(c.UserContext(), profile)
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, saved)
	return nil
}

func (rt *Router) activeDingTalkConfig(c *fiber.Ctx) error {
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	active, ok := sess.Configs.ActiveConfig()
	if !ok {
		return fail(c, service.ErrNoActiveConfig)
	}
	c.Locals(middleware.DETAIL, active)
	return nil
}

func (rt *Router) selectDingTalkConfig(c *fiber.Ctx) error {
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	// 不存在的 id 保留当前选中
	sess.Configs.SetCurrentConfig(c.Params("id"))
	c.Locals(middleware.DETAIL, newConfigsView(sess))
	return nil
}

func (rt *Router) dingtalkSyncInfo(c *fiber.Ctx) error {
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	info, err := sess.DingTalk.SyncInfo(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, info)
	return nil
}

func (rt *Router) runDingTalkSync(c *fiber.Ctx) error {
	var cmd model.DingTalkSyncCommand
	if err := c.BodyParser(&cmd); err != nil {
		return badRequest(c, err)
	}
	sess, err := rt.session(c)
	if err != nil {
		return fail(c, err)
	}
	var result any
	if c.Query("scope") == "global" {
		result, err = sess.DingTalk.RunGlobalSync(c.UserContext(), cmd)
	} else {
		result, err = sess.DingTalk.RunSync(c.UserContext(), cmd)
	}
	if err != nil {
		return fail(c, err)
	}
	if result == nil {
		c.Locals(middleware.OPERATION, "")
		return nil
	}
	c.Locals(middleware.DETAIL, result)
	return nil
}
