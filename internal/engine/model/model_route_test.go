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

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeta_Rank(t *testing.T) {
	tests := []struct {
		name   string
		meta   Meta
		want   int
		wantOk bool
	}{
		{name: "absent", meta: Meta{}},
		{name: "nil value", meta: Meta{MetaRank: nil}},
		{name: "int", meta: Meta{MetaRank: 3}, want: 3, wantOk: true},
		{name: "float from json", meta: Meta{MetaRank: float64(7)}, want: 7, wantOk: true},
		{name: "json number", meta: Meta{MetaRank: json.Number("12")}, want: 12, wantOk: true},
		{name: "numeric string", meta: Meta{MetaRank: "4"}, want: 4, wantOk: true},
		{name: "garbage string", meta: Meta{MetaRank: "x"}},
		{name: "bool", meta: Meta{MetaRank: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.meta.Rank()
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMeta_ShowLink(t *testing.T) {
	v, set := Meta{}.ShowLink()
	assert.False(t, set)
	assert.False(t, v)
	assert.False(t, Meta{}.Hidden())

	v, set = Meta{MetaShowLink: false}.ShowLink()
	assert.True(t, set)
	assert.False(t, v)
	assert.True(t, Meta{MetaShowLink: false}.Hidden())

	assert.False(t, Meta{MetaShowLink: true}.Hidden())
	assert.False(t, Meta{MetaShowLink: "false"}.Hidden())
}

func TestMeta_Roles(t *testing.T) {
	assert.Equal(t, []string{"admin"}, Meta{MetaRoles: []string{"admin"}}.Roles())
	assert.Equal(t, []string{"a", "b"}, Meta{MetaRoles: []any{"a", 1, "b"}}.Roles())
	assert.Equal(t, []string{"solo"}, Meta{MetaRoles: "solo"}.Roles())
	assert.Nil(t, Meta{}.Roles())
}

func TestRouteNode_Clone(t *testing.T) {
	orig := &RouteNode{
		Path: "/hr",
		Name: "HR",
		Meta: Meta{MetaTitle: "人事"},
		Children: []*RouteNode{
			{Path: "/hr/employees", Name: "Employees", Meta: Meta{MetaRank: 1}},
		},
	}
	c := orig.Clone()
	c.Meta[MetaTitle] = "changed"
	c.Children[0].Name = "changed"
	c.Children = append(c.Children, &RouteNode{Path: "/x"})

	assert.Equal(t, "人事", orig.Meta.Title())
	assert.Equal(t, "Employees", orig.Children[0].Name)
	assert.Len(t, orig.Children, 1)
	assert.Nil(t, (*RouteNode)(nil).Clone())
	assert.Nil(t, CloneRoutes(nil))
}

func TestRouteNode_JSONShape(t *testing.T) {
	var n RouteNode
	require.NoError(t, json.Unmarshal([]byte(`{"path":"/a","name":"A","meta":{"rank":2,"showLink":false,"custom":"x"}}`), &n))
	rank, ok := n.Meta.Rank()
	assert.True(t, ok)
	assert.Equal(t, 2, rank)
	assert.True(t, n.Meta.Hidden())
	assert.Equal(t, "x", n.Meta.String("custom"))
}

func TestMenu_ToRouteNode(t *testing.T) {
	m := &Menu{
		MenuId:    "m1",
		Name:      "Employees",
		Title:     "员工",
		Path:      "/hr/employees",
		Component: "hr/employees/index",
		Icon:      "ri/user-line",
		Order:     5,
		IsVisible: MenuInvisible,
		Auths:     "hr:add, hr:edit,,",
		Meta:      `{"keepAlive":true,"title":"ignored"}`,
	}
	n := m.ToRouteNode()
	assert.Equal(t, "/hr/employees", n.Path)
	assert.Equal(t, "Employees", n.Name)
	assert.Equal(t, "员工", n.Meta.Title())
	assert.Equal(t, "ri/user-line", n.Meta.Icon())
	assert.True(t, n.Meta.Flag(MetaKeepAlive))
	assert.True(t, n.Meta.Hidden())
	rank, ok := n.Meta.Rank()
	assert.True(t, ok)
	assert.Equal(t, 5, rank)
	assert.Equal(t, []string{"hr:add", "hr:edit"}, n.Meta[MetaAuths])
}

func TestDingTalkSyncCommand_Valid(t *testing.T) {
	assert.True(t, DingTalkSyncCommand{Operation: SyncOpFull}.Valid())
	assert.True(t, DingTalkSyncCommand{Operation: SyncOpUsers, Mode: SyncModeIncremental}.Valid())
	assert.False(t, DingTalkSyncCommand{Operation: "drop_all"}.Valid())
	assert.False(t, DingTalkSyncCommand{Operation: SyncOpUsers, Mode: "partial"}.Valid())
}
