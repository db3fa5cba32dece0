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

import (
	"context"
	"fmt"

	"github.com/go-arcade/console/internal/engine/client"
	"github.com/go-arcade/console/internal/engine/model"
	"github.com/go-arcade/console/pkg/log"
)

// DingTalkAPI is the part of the remote client the dingtalk service needs.
type DingTalkAPI interface {
	ListConfigs(ctx context.Context, token string, query client.Query) ([]model.DingTalkProfile, error)
	CreateConfig(ctx context.Context, token string, p model.DingTalkProfile) (model.DingTalkProfile, error)
	UpdateConfig(ctx context.Context, token, id string, p model.DingTalkProfile) (model.DingTalkProfile, error)
	GetSyncInfo(ctx context.Context, token, id string) (model.DingTalkSyncInfo, error)
	RunSyncCommand(ctx context.Context, token string, cmd model.DingTalkSyncCommand, configId string) (any, error)
}

// DingTalkService 会话内的钉钉配置操作：远程读写后同步到 DingTalkStore
type DingTalkService struct {
	api   DingTalkAPI
	store *DingTalkStore
	token string
}

func NewDingTalkService(api DingTalkAPI, store *DingTalkStore, token string) *DingTalkService {
	return &DingTalkService{api: api, store: store, token: token}
}

// Refresh 重新拉取配置列表
func (s *DingTalkService) Refresh(ctx context.Context) ([]model.DingTalkProfile, error) {
	items, err := s.api.ListConfigs(ctx, s.token, nil)
	if err != nil {
		return nil, fmt.Errorf("list dingtalk configs: %w", err)
	}
	current := s.store.SetConfigs(items)
	log.Debugw("dingtalk configs refreshed", "count", len(items), "current", current)
	return s.store.Configs(), nil
}

// Save 新建（id 为空）或更新配置，保存后的配置成为当前配置
func (s *DingTalkService) Save(ctx context.Context, p model.DingTalkProfile) (model.DingTalkProfile, error) {
	var (
		saved model.DingTalkProfile
		err   error
	)
	if p.ID == "" {
		saved, err = s.api.CreateConfig(ctx, s.token, p)
	} else {
		saved, err = s.api.UpdateConfig(ctx, s.token, p.ID, p)
	}
	if err != nil {
		return model.DingTalkProfile{}, fmt.Errorf("save dingtalk config: %w", err)
	}
	if saved.ID == "" {
		saved.ID = p.ID
	}
	s.store.UpsertConfig(saved)
	return saved, nil
}

// SyncInfo 当前配置的同步状态
func (s *DingTalkService) SyncInfo(ctx context.Context) (model.DingTalkSyncInfo, error) {
	active, ok := s.store.ActiveConfig()
	if !ok {
		return model.DingTalkSyncInfo{}, ErrNoActiveConfig
	}
	info, err := s.api.GetSyncInfo(ctx, s.token, active.ID)
	if err != nil {
		return model.DingTalkSyncInfo{}, fmt.Errorf("get sync info of %s: %w", active.ID, err)
	}
	return info, nil
}

// RunSync 对当前配置执行同步
func (s *DingTalkService) RunSync(ctx context.Context, cmd model.DingTalkSyncCommand) (any, error) {
	if !cmd.Valid() {
		return nil, ErrInvalidSyncCommand
	}
	active, ok := s.store.ActiveConfig()
	if !ok {
		return nil, ErrNoActiveConfig
	}
	log.Infow("run dingtalk sync", "config", active.ID, "operation", cmd.Operation, "mode", cmd.Mode)
	out, err := s.api.RunSyncCommand(ctx, s.token, cmd, active.ID)
	if err != nil {
		return nil, fmt.Errorf("run %s on %s: %w", cmd.Operation, active.ID, err)
	}
	return out, nil
}

// RunGlobalSync 不指定配置，走全局同步入口
func (s *DingTalkService) RunGlobalSync(ctx context.Context, cmd model.DingTalkSyncCommand) (any, error) {
	if !cmd.Valid() {
		return nil, ErrInvalidSyncCommand
	}
	out, err := s.api.RunSyncCommand(ctx, s.token, cmd, "")
	if err != nil {
		return nil, fmt.Errorf("run global %s: %w", cmd.Operation, err)
	}
	return out, nil
}
