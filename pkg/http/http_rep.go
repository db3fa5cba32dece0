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
	"github.com/gofiber/fiber/v2"
)

// Response 统一响应结构，code 为业务码，与 HTTP 状态码相互独立
type Response struct {
	Code   int    `json:"code"`
	Detail any    `json:"detail,omitempty"`
	Msg    string `json:"msg"`
}

// WithRepJSON 成功响应，附带 detail
func WithRepJSON(c *fiber.Ctx, detail any) error {
	return WithRepDetail(c, Success, detail)
}

// WithRepNotDetail 成功响应，没有 detail 字段
func WithRepNotDetail(c *fiber.Ctx) error {
	return WithRepMsg(c, Success)
}

// WithRepDetail 以 rep 的业务码和信息响应，HTTP 状态码沿用 handler 已设置的值
func WithRepDetail(c *fiber.Ctx, rep *Response, detail any) error {
	return c.JSON(Response{
		Code:   rep.Code,
		Detail: detail,
		Msg:    rep.Msg,
	})
}

// WithRepMsg 同 WithRepDetail，不带 detail
func WithRepMsg(c *fiber.Ctx, rep *Response) error {
	return c.JSON(Response{
		Code: rep.Code,
		Msg:  rep.Msg,
	})
}
