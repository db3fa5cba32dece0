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

	"github.com/stretchr/testify/assert"

	"github.com/go-arcade/console/internal/engine/model"
)

func TestMultiTags(t *testing.T) {
	home := model.Tag{Path: "/welcome", Name: "Welcome", Meta: model.Meta{model.MetaFixedTag: true}}
	tags := NewMultiTags(home)

	assert.True(t, tags.Push(model.Tag{Path: "/hr/employee", Name: "Employee"}))
	assert.False(t, tags.Push(model.Tag{Path: "/hr/employee", Name: "Employee"}))
	assert.True(t, tags.Push(model.Tag{Path: "/hr/employee", Name: "Employee", Query: map[string]string{"id": "1"}}))
	assert.False(t, tags.Push(model.Tag{Path: "/hr/employee", Name: "Employee", Query: map[string]string{"id": "1"}}))
	assert.Equal(t, []string{"Welcome", "Employee", "Employee"}, tags.TagNames())

	assert.Equal(t, 2, tags.Remove("Employee"))
	assert.Equal(t, 0, tags.Remove("Welcome"))
	assert.Equal(t, []string{"Welcome"}, tags.TagNames())

	tags.Replace([]model.Tag{{Path: "/a", Name: "A"}})
	assert.Equal(t, []model.Tag{{Path: "/a", Name: "A"}}, tags.Tags())

	tags.Replace(nil)
	assert.Empty(t, tags.TagNames())
}
