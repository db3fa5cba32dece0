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

var (
	Failed                        = failed(500, "Request failed")
	RequestParameterParsingFailed = failed(5001, "Request parameter parsing failed")
	UpstreamFailed                = failed(5002, "Upstream API request failed")

	// Unauthorized 401
	Unauthorized           = failed(4401, "Unauthorized")
	AuthorizationIncorrect = failed(4403, "The authorization format in the request header is incorrect")
	InvalidToken           = failed(4405, "Invalid token")
	TokenBeEmpty           = failed(4406, "Token cannot be empty")
	TokenExpired           = failed(4407, "Token is expired")

	// BadRequest 400
	BadRequest = failed(4000, "Bad request")
	NotFound   = failed(4004, "Not found")

	// Forbidden 403
	Forbidden = failed(4030, "Forbidden")

	InternalError = failed(5000, "Internal error, please contact the administrator")

	// 会话与配置
	SessionNotFound    = failed(4601, "Session not found, open a session first")
	RouteNotFound      = failed(4602, "Route not found")
	InvalidCacheMode   = failed(4603, "Invalid cache operation mode")
	NoActiveConfig     = failed(4611, "No active dingtalk config")
	InvalidSyncCommand = failed(4612, "Invalid dingtalk sync command")
)

var (
	Success = success(200, "Request Success")

	// SnapshotServed 路由源不可用，菜单由缓存的路由快照组装
	SnapshotServed = success(2001, "Route source unavailable, menus assembled from cached snapshot")
)

// failed 构造函数
func failed(code int, msg string) *Response {
	return &Response{
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}

// success 构造函数
func success(code int, msg string) *Response {
	return &Response{
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}
