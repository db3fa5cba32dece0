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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arcade/console/internal/engine/model"
)

func profiles(ids ...string) []model.DingTalkProfile {
	out := make([]model.DingTalkProfile, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.DingTalkProfile{ID: id, Name: "profile-" + id})
	}
	return out
}

func TestDingTalkStore_EnsureCurrentConfigID(t *testing.T) {
	s := NewDingTalkStore()
	assert.Equal(t, "", s.EnsureCurrentConfigID("a"))

	s.SetConfigs(profiles("a", "b", "c"))
	assert.Equal(t, "a", s.CurrentConfigID())

	assert.Equal(t, "c", s.EnsureCurrentConfigID("c"))
	// unknown preference keeps the current selection
	assert.Equal(t, "c", s.EnsureCurrentConfigID("zzz"))
	assert.Equal(t, "c", s.EnsureCurrentConfigID(""))
}

func TestDingTalkStore_SetConfigsAfterDeletion(t *testing.T) {
	s := NewDingTalkStore()
	s.SetConfigs(profiles("a", "b"))
	require.Equal(t, "a", s.CurrentConfigID())

	s.SetConfigs(profiles("b"))
	assert.Equal(t, "b", s.CurrentConfigID())
	active, ok := s.ActiveConfig()
	require.True(t, ok)
	assert.Equal(t, "b", active.ID)
}

func TestDingTalkStore_SetConfigsKeepsSelection(t *testing.T) {
	s := NewDingTalkStore()
	s.SetConfigs(profiles("a", "b"))
	s.SetCurrentConfig("b")

	s.SetConfigs(profiles("c", "b"))
	assert.Equal(t, "b", s.CurrentConfigID())
}

func TestDingTalkStore_SetConfigsEmpty(t *testing.T) {
	s := NewDingTalkStore()
	s.SetConfigs(profiles("a"))

	s.SetConfigs(nil)
	assert.Equal(t, "", s.CurrentConfigID())
	_, ok := s.ActiveConfig()
	assert.False(t, ok)
	assert.Empty(t, s.Configs())
}

func TestDingTalkStore_UpsertPreservesPosition(t *testing.T) {
	s := NewDingTalkStore()
	s.SetConfigs(profiles("a", "b"))
	s.SetCurrentConfig("b")

	changed := model.DingTalkProfile{ID: "a", Name: "renamed", AppKey: "key"}
	assert.Equal(t, "a", s.UpsertConfig(changed))

	configs := s.Configs()
	require.Len(t, configs, 2)
	assert.Equal(t, changed, configs[0])
	assert.Equal(t, "b", configs[1].ID)
}

func TestDingTalkStore_UpsertAppends(t *testing.T) {
	s := NewDingTalkStore()
	s.SetConfigs(profiles("a"))

	assert.Equal(t, "n", s.UpsertConfig(model.DingTalkProfile{ID: "n"}))
	assert.Equal(t, []string{"a", "n"}, []string{s.Configs()[0].ID, s.Configs()[1].ID})
}

func TestDingTalkStore_SetCurrentConfigFallback(t *testing.T) {
	s := NewDingTalkStore()
	s.SetConfigs(profiles("a", "b"))

	assert.Equal(t, "b", s.SetCurrentConfig("b"))
	assert.Equal(t, "b", s.SetCurrentConfig("gone"))

	s.Reset()
	assert.Equal(t, "", s.SetCurrentConfig("b"))
}

func TestDingTalkStore_GetConfigByIDReturnsCopy(t *testing.T) {
	s := NewDingTalkStore()
	s.SetConfigs([]model.DingTalkProfile{{ID: "a", Schedule: map[string]any{"cron": "0 * * * *"}}})

	p, ok := s.GetConfigByID("a")
	require.True(t, ok)
	p.Schedule["cron"] = "changed"

	again, _ := s.GetConfigByID("a")
	assert.Equal(t, "0 * * * *", again.Schedule["cron"])

	_, ok = s.GetConfigByID("missing")
	assert.False(t, ok)
}

func TestDingTalkStore_SelectionDoesNotAliasCallerBuffer(t *testing.T) {
	s := NewDingTalkStore()
	s.SetConfigs(profiles("c1", "c2"))

	buf := []byte("c2")
	assert.Equal(t, "c2", s.SetCurrentConfig(unsafe.String(&buf[0], len(buf))))

	// 调用方复用缓冲区后选中项不变
	copy(buf, "zz")
	assert.Equal(t, "c2", s.CurrentConfigID())
	active, ok := s.ActiveConfig()
	require.True(t, ok)
	assert.Equal(t, "profile-c2", active.Name)
	assert.Equal(t, "c2", s.EnsureCurrentConfigID(""))
}
