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

package model

// DingTalkProfile 钉钉集成配置（一个租户/应用一份）
type DingTalkProfile struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	TenantID        string         `json:"tenant_id"`
	AppKey          string         `json:"app_key"`
	AppSecret       string         `json:"app_secret"`
	AgentID         string         `json:"agent_id"`
	Enabled         bool           `json:"enabled"`
	SyncUsers       bool           `json:"sync_users"`
	SyncDepartments bool           `json:"sync_departments"`
	SyncAttendance  bool           `json:"sync_attendance"`
	CallbackURL     string         `json:"callback_url"`
	CallbackToken   string         `json:"callback_token"`
	CallbackAESKey  string         `json:"callback_aes_key"`
	Schedule        map[string]any `json:"schedule,omitempty"`
	Remark          string         `json:"remark"`
}

// DingTalkSyncInfo 同步状态概览
type DingTalkSyncInfo struct {
	Status                 string  `json:"status"`
	Message                string  `json:"message"`
	LastSyncTime           *string `json:"lastSyncTime"`
	LastDeptSyncTime       *string `json:"lastDeptSyncTime"`
	LastUserSyncTime       *string `json:"lastUserSyncTime"`
	LastAttendanceSyncTime *string `json:"lastAttendanceSyncTime"`
	DeptCount              int     `json:"deptCount"`
	UserCount              int     `json:"userCount"`
	AttendanceCount        int     `json:"attendanceCount"`
	AccessTokenExpiresAt   *string `json:"accessTokenExpiresAt"`
}

// 同步操作
const (
	SyncOpTestConnection = "test_connection"
	SyncOpDepartments    = "sync_departments"
	SyncOpUsers          = "sync_users"
	SyncOpAttendance     = "sync_attendance"
	SyncOpFull           = "full_sync"
	SyncModeFull         = "full"
	SyncModeIncremental  = "incremental"
)

// DingTalkSyncCommand 同步指令
type DingTalkSyncCommand struct {
	Operation string   `json:"operation"`
	Mode      string   `json:"mode,omitempty"`
	Start     string   `json:"start,omitempty"`
	End       string   `json:"end,omitempty"`
	UserIds   []string `json:"userIds,omitempty"`
}

// Valid reports whether the operation and mode are known values.
func (c DingTalkSyncCommand) Valid() bool {
	switch c.Operation {
	case SyncOpTestConnection, SyncOpDepartments, SyncOpUsers, SyncOpAttendance, SyncOpFull:
	default:
		return false
	}
	return c.Mode == "" || c.Mode == SyncModeFull || c.Mode == SyncModeIncremental
}
