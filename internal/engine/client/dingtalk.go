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

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-arcade/console/internal/engine/model"
)

// DingTalkAPI 钉钉集成接口
type DingTalkAPI struct {
	c *Client
}

type DingTalkLog struct {
	ID             string         `json:"id"`
	Operation      string         `json:"operation"`
	OperationLabel string         `json:"operationLabel"`
	Status         string         `json:"status"`
	StatusLabel    string         `json:"statusLabel"`
	Level          string         `json:"level"`
	Message        string         `json:"message"`
	Detail         string         `json:"detail"`
	Stats          map[string]any `json:"stats"`
	RetryCount     int            `json:"retry_count"`
	NextRetryAt    *string        `json:"next_retry_at"`
	CreateTime     string         `json:"create_time"`
}

type DingTalkDepartment struct {
	DeptID       int64          `json:"dept_id"`
	ConfigID     string         `json:"config_id"`
	Name         string         `json:"name"`
	ParentID     *int64         `json:"parent_id"`
	Order        *int64         `json:"order"`
	LeaderUserID string         `json:"leader_userid"`
	DeptType     string         `json:"dept_type"`
	SourceInfo   map[string]any `json:"source_info"`
	CreateTime   string         `json:"create_time"`
	UpdateTime   string         `json:"update_time"`
}

type DingTalkUser struct {
	UserID     string         `json:"userid"`
	ConfigID   string         `json:"config_id"`
	Name       string         `json:"name"`
	Mobile     string         `json:"mobile"`
	Email      string         `json:"email"`
	Active     bool           `json:"active"`
	JobNumber  string         `json:"job_number"`
	Title      string         `json:"title"`
	DeptIDs    []int64        `json:"dept_ids"`
	UnionID    string         `json:"unionid"`
	Remark     string         `json:"remark"`
	SourceInfo map[string]any `json:"source_info"`
	CreateTime string         `json:"create_time"`
	UpdateTime string         `json:"update_time"`
}

type DingTalkAttendanceRecord struct {
	RecordID      string         `json:"record_id"`
	ConfigID      string         `json:"config_id"`
	UserID        string         `json:"userid"`
	CheckType     string         `json:"check_type"`
	TimeResult    string         `json:"time_result"`
	UserCheckTime string         `json:"user_check_time"`
	WorkDate      *string        `json:"work_date"`
	SourceType    string         `json:"source_type"`
	SourceInfo    map[string]any `json:"source_info"`
	CreateTime    string         `json:"create_time"`
	UpdateTime    string         `json:"update_time"`
}

// ListConfigs 配置列表
func (a *DingTalkAPI) ListConfigs(ctx context.Context, token string, query Query) ([]model.DingTalkProfile, error) {
	res, err := call[[]model.DingTalkProfile](ctx, a.c, token, http.MethodGet, "/api/dingtalk/configs/", query, nil)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// CreateConfig 新建配置，返回服务端保存后的配置
func (a *DingTalkAPI) CreateConfig(ctx context.Context, token string, p model.DingTalkProfile) (model.DingTalkProfile, error) {
	res, err := call[model.DingTalkProfile](ctx, a.c, token, http.MethodPost, "/api/dingtalk/configs/", nil, p)
	if err != nil {
		return model.DingTalkProfile{}, err
	}
	return res.Data, nil
}

// UpdateConfig 更新配置
func (a *DingTalkAPI) UpdateConfig(ctx context.Context, token, id string, p model.DingTalkProfile) (model.DingTalkProfile, error) {
	res, err := call[model.DingTalkProfile](ctx, a.c, token, http.MethodPut, "/api/dingtalk/configs/"+url.PathEscape(id)+"/", nil, p)
	if err != nil {
		return model.DingTalkProfile{}, err
	}
	return res.Data, nil
}

// GetSyncInfo 指定配置的同步状态
func (a *DingTalkAPI) GetSyncInfo(ctx context.Context, token, id string) (model.DingTalkSyncInfo, error) {
	res, err := call[model.DingTalkSyncInfo](ctx, a.c, token, http.MethodGet, "/api/dingtalk/configs/"+url.PathEscape(id)+"/sync_info/", nil, nil)
	if err != nil {
		return model.DingTalkSyncInfo{}, err
	}
	return res.Data, nil
}

// RunSyncCommand 执行同步；configId 为空时走全局同步入口
func (a *DingTalkAPI) RunSyncCommand(ctx context.Context, token string, cmd model.DingTalkSyncCommand, configId string) (any, error) {
	path := "/api/dingtalk/sync/"
	if configId != "" {
		path = "/api/dingtalk/" + url.PathEscape(configId) + "/sync/"
	}
	res, err := call[any](ctx, a.c, token, http.MethodPost, path, nil, cmd)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (a *DingTalkAPI) ListLogs(ctx context.Context, token string, query Query) (*Result[[]DingTalkLog], error) {
	return call[[]DingTalkLog](ctx, a.c, token, http.MethodGet, "/api/dingtalk/logs/", query, nil)
}

func (a *DingTalkAPI) ListDepartments(ctx context.Context, token string, query Query) (*Result[[]DingTalkDepartment], error) {
	return call[[]DingTalkDepartment](ctx, a.c, token, http.MethodGet, "/api/dingtalk/departments/", query, nil)
}

func (a *DingTalkAPI) ListUsers(ctx context.Context, token string, query Query) (*Result[[]DingTalkUser], error) {
	return call[[]DingTalkUser](ctx, a.c, token, http.MethodGet, "/api/dingtalk/users/", query, nil)
}

func (a *DingTalkAPI) ListAttendance(ctx context.Context, token string, query Query) (*Result[[]DingTalkAttendanceRecord], error) {
	return call[[]DingTalkAttendanceRecord](ctx, a.c, token, http.MethodGet, "/api/dingtalk/attendances/", query, nil)
}
