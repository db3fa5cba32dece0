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
	"maps"
	"slices"
	"sync"

	"github.com/go-arcade/console/internal/engine/model"
	"github.com/go-arcade/console/pkg/metrics"
)

// DingTalkStore 钉钉配置列表及当前选中的配置。
// 列表非空时当前选中 id 总是指向列表中的某个配置，列表为空时为空字符串。
type DingTalkStore struct {
	mu              sync.RWMutex
	configs         []model.DingTalkProfile
	currentConfigId string
}

func NewDingTalkStore() *DingTalkStore {
	return &DingTalkStore{}
}

// EnsureCurrentConfigID 重新确定当前配置：优先 preferred，其次保留当前选中，
// 再次取列表第一个，列表为空时清空。
func (s *DingTalkStore) EnsureCurrentConfigID(preferred string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensure(preferred)
}

// ensure must be called with mu held.
func (s *DingTalkStore) ensure(preferred string) string {
	outcome := metrics.OutcomeCleared
	idx := -1
	if preferred != "" {
		idx = s.indexOf(preferred)
	}
	switch {
	case idx >= 0:
		// 取列表中的 id，不保留调用方的字符串
		s.currentConfigId = s.configs[idx].ID
		outcome = metrics.OutcomePreferred
	case s.currentConfigId != "" && s.indexOf(s.currentConfigId) >= 0:
		outcome = metrics.OutcomeKept
	case len(s.configs) > 0:
		s.currentConfigId = s.configs[0].ID
		outcome = metrics.OutcomeFirst
	default:
		s.currentConfigId = ""
	}
	metrics.RecordConfigResolution(outcome)
	return s.currentConfigId
}

func (s *DingTalkStore) indexOf(id string) int {
	return slices.IndexFunc(s.configs, func(p model.DingTalkProfile) bool {
		return p.ID == id
	})
}

// SetConfigs replaces the profile list and keeps the previous selection when it still exists.
func (s *DingTalkStore) SetConfigs(items []model.DingTalkProfile) string {
	next := make([]model.DingTalkProfile, 0, len(items))
	for _, p := range items {
		next = append(next, copyProfile(p))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs = next
	return s.ensure(s.currentConfigId)
}

// UpsertConfig 按 id 原位替换或追加，并将其设为当前配置
func (s *DingTalkStore) UpsertConfig(p model.DingTalkProfile) string {
	p = copyProfile(p)

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(p.ID); i >= 0 {
		s.configs[i] = p
	} else {
		s.configs = append(s.configs, p)
	}
	return s.ensure(p.ID)
}

// SetCurrentConfig selects id, falling back like EnsureCurrentConfigID when it does not exist.
func (s *DingTalkStore) SetCurrentConfig(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensure(id)
}

func (s *DingTalkStore) GetConfigByID(id string) (model.DingTalkProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return copyProfile(s.configs[i]), true
	}
	return model.DingTalkProfile{}, false
}

// ActiveConfig returns the currently selected profile.
func (s *DingTalkStore) ActiveConfig() (model.DingTalkProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentConfigId == "" {
		return model.DingTalkProfile{}, false
	}
	if i := s.indexOf(s.currentConfigId); i >= 0 {
		return copyProfile(s.configs[i]), true
	}
	return model.DingTalkProfile{}, false
}

func (s *DingTalkStore) Configs() []model.DingTalkProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.DingTalkProfile, 0, len(s.configs))
	for _, p := range s.configs {
		out = append(out, copyProfile(p))
	}
	return out
}

func (s *DingTalkStore) CurrentConfigID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentConfigId
}

// Reset 清空配置列表和当前选中
func (s *DingTalkStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs = nil
	s.currentConfigId = ""
}

func copyProfile(p model.DingTalkProfile) model.DingTalkProfile {
	p.Schedule = maps.Clone(p.Schedule)
	return p
}
