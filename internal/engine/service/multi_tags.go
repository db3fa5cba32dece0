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
)

// MultiTags 会话中打开的标签页列表
type MultiTags struct {
	mu   sync.RWMutex
	tags []model.Tag
}

func NewMultiTags(initial ...model.Tag) *MultiTags {
	t := &MultiTags{}
	t.Replace(initial)
	return t
}

// Push appends tag unless a tag with the same path and query is already open.
// It returns false when the tag was already present.
func (t *MultiTags) Push(tag model.Tag) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, open := range t.tags {
		if open.Path == tag.Path && maps.Equal(open.Query, tag.Query) {
			return false
		}
	}
	t.tags = append(t.tags, copyTag(tag))
	return true
}

// Remove 关闭指定名称的所有标签页，固定标签页不会被关闭。返回关闭的数量。
func (t *MultiTags) Remove(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	before := len(t.tags)
	t.tags = slices.DeleteFunc(t.tags, func(tag model.Tag) bool {
		return tag.Name == name && !tag.Fixed()
	})
	return before - len(t.tags)
}

// Replace sets the open tags wholesale.
func (t *MultiTags) Replace(tags []model.Tag) {
	next := make([]model.Tag, 0, len(tags))
	for _, tag := range tags {
		next = append(next, copyTag(tag))
	}
	t.mu.Lock()
	t.tags = next
	t.mu.Unlock()
}

func (t *MultiTags) Tags() []model.Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]model.Tag, 0, len(t.tags))
	for _, tag := range t.tags {
		out = append(out, copyTag(tag))
	}
	return out
}

// TagNames returns the names of the open tags in order.
func (t *MultiTags) TagNames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.tags))
	for _, tag := range t.tags {
		names = append(names, tag.Name)
	}
	return names
}

func copyTag(tag model.Tag) model.Tag {
	tag.Meta = tag.Meta.Clone()
	tag.Query = maps.Clone(tag.Query)
	return tag
}
