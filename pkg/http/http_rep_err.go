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

// ErrDetail 错误响应的 detail
type ErrDetail struct {
	Path  string `json:"path,omitempty"`
	Error string `json:"error,omitempty"`
}

// WithRepErr 设置 HTTP 状态码并返回错误码、错误信息和请求路径
func WithRepErr(c *fiber.Ctx, status int, rep *Response, path string) error {
	return c.Status(status).JSON(Response{
		Code:   rep.Code,
		Msg:    rep.Msg,
		Detail: ErrDetail{Path: path},
	})
}

// WithRepErrMsg 同 WithRepErr，附带具体错误
func WithRepErrMsg(c *fiber.Ctx, status int, rep *Response, err error) error {
	detail := ErrDetail{Path: c.Path()}
	if err != nil {
		detail.Error = err.Error()
	}
	return c.Status(status).JSON(Response{
		Code:   rep.Code,
		Msg:    rep.Msg,
		Detail: detail,
	})
}
