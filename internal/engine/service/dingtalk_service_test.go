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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arcade/console/internal/engine/client"
	"github.com/go-arcade/console/internal/engine/model"
)

type fakeDingTalkAPI struct {
	configs  []model.DingTalkProfile
	listErr  error
	created  []model.DingTalkProfile
	updated  []model.DingTalkProfile
	syncIds  []string
	lastCmd  model.DingTalkSyncCommand
	lastAuth string
}

func (f *fakeDingTalkAPI) ListConfigs(_ context.Context, token string, _ client.Query) ([]model.DingTalkProfile, error) {
	f.lastAuth = token
	return f.configs, f.listErr
}

func (f *fakeDingTalkAPI) CreateConfig(_ context.Context, _ string, p model.DingTalkProfile) (model.DingTalkProfile, error) {
	p.ID = "new-1"
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakeDingTalkAPI) UpdateConfig(_ context.Context, _ string, id string, p model.DingTalkProfile) (model.DingTalkProfile, error) {
	p.ID = id
	f.updated = append(f.updated, p)
	return p, nil
}

func (f *fakeDingTalkAPI) GetSyncInfo(_ context.Context, _ string, id string) (model.DingTalkSyncInfo, error) {
	f.syncIds = append(f.syncIds, id)
	return model.DingTalkSyncInfo{Status: "ok", UserCount: 3}, nil
}

func (f *fakeDingTalkAPI) RunSyncCommand(_ context.Context, _ string, cmd model.DingTalkSyncCommand, configId string) (any, error) {
	f.lastCmd = cmd
	f.syncIds = append(f.syncIds, configId)
	return map[string]any{"task": "t1"}, nil
}

func TestDingTalkService_Refresh(t *testing.T) {
	api := &fakeDingTalkAPI{configs: profiles("a", "b")}
	store := NewDingTalkStore()
	svc := NewDingTalkService(api, store, "token-1")

	items, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "a", store.CurrentConfigID())
	assert.Equal(t, "token-1", api.lastAuth)

	store.SetCurrentConfig("b")
	api.configs = profiles("b")
	_, err = svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b", store.CurrentConfigID())

	api.listErr = errors.New("unavailable")
	_, err = svc.Refresh(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "b", store.CurrentConfigID())
}

func TestDingTalkService_SaveSelectsSaved(t *testing.T) {
	api := &fakeDingTalkAPI{}
	store := NewDingTalkStore()
	store.SetConfigs(profiles("a"))
	svc := NewDingTalkService(api, store, "t")

	created, err := svc.Save(context.Background(), model.DingTalkProfile{Name: "draft"})
	require.NoError(t, err)
	assert.Equal(t, "new-1", created.ID)
	assert.Equal(t, "new-1", store.CurrentConfigID())
	assert.Len(t, api.created, 1)

	_, err = svc.Save(context.Background(), model.DingTalkProfile{ID: "a", Name: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "a", store.CurrentConfigID())
	assert.Len(t, api.updated, 1)

	configs := store.Configs()
	require.Len(t, configs, 2)
	assert.Equal(t, "edited", configs[0].Name)
}

func TestDingTalkService_SyncTargetsActiveConfig(t *testing.T) {
	api := &fakeDingTalkAPI{}
	store := NewDingTalkStore()
	svc := NewDingTalkService(api, store, "t")

	_, err := svc.SyncInfo(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveConfig)
	_, err = svc.RunSync(context.Background(), model.DingTalkSyncCommand{Operation: model.SyncOpUsers})
	assert.ErrorIs(t, err, ErrNoActiveConfig)

	store.SetConfigs(profiles("a", "b"))
	store.SetCurrentConfig("b")

	info, err := svc.SyncInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, info.UserCount)

	cmd := model.DingTalkSyncCommand{Operation: model.SyncOpAttendance, Mode: model.SyncModeIncremental}
	_, err = svc.RunSync(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, cmd, api.lastCmd)

	_, err = svc.RunGlobalSync(context.Background(), model.DingTalkSyncCommand{Operation: model.SyncOpFull})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "b", ""}, api.syncIds)

	_, err = svc.RunSync(context.Background(), model.DingTalkSyncCommand{Operation: "drop_tables"})
	assert.ErrorIs(t, err, ErrInvalidSyncCommand)
}
