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
	"fmt"
	"time"
)

/**
 * @author: gagral.x@gmail.com
 * @time: 2024/9/8 15:38
 * @file: http.go
 * @description: http server config
 */

type Http struct {
	Host            string
	Port            int
	BodyLimit       int
	ExposeMetrics   bool
	AccessLog       bool
	PProf           bool
	ReadTimeout     int
	WriteTimeout    int
	IdleTimeout     int
	ShutdownTimeout int
	AllowOrigins    string
	Auth            Auth
}

type Auth struct {
	SecretKey    string
	Issuer       string
	AccessExpire time.Duration // 分钟
}

// Addr 监听地址
func (h *Http) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// ShutdownWait 优雅退出的等待时间，默认 30 秒
func (h *Http) ShutdownWait() time.Duration {
	if h.ShutdownTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(h.ShutdownTimeout) * time.Second
}
