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

package service

import "errors"

var (
	// ErrSessionNotFound 会话不存在或已关闭
	ErrSessionNotFound = errors.New("session not found")
	// ErrNoActiveConfig 当前没有选中的钉钉配置
	ErrNoActiveConfig = errors.New("no active dingtalk config")
	// ErrInvalidSyncCommand 同步指令的操作或模式未知
	ErrInvalidSyncCommand = errors.New("invalid dingtalk sync command")
)
