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
	"strings"

	"github.com/bytedance/sonic"
)

// Menu 菜单表
type Menu struct {
	BaseModel
	MenuId      string `gorm:"column:menu_id;not null;uniqueIndex" json:"menuId"` // 菜单唯一标识
	ParentId    string `gorm:"column:parent_id;index" json:"parentId"`            // 父菜单ID（为空表示顶级菜单）
	Name        string `gorm:"column:name;not null" json:"name"`                  // 路由名称（前端 route name）
	Title       string `gorm:"column:title" json:"title"`                         // 菜单标题
	Path        string `gorm:"column:path" json:"path"`                           // 路由路径
	Redirect    string `gorm:"column:redirect" json:"redirect"`                   // 重定向路径
	Component   string `gorm:"column:component" json:"component"`                 // 组件路径（前端组件）
	Icon        string `gorm:"column:icon" json:"icon"`                           // 图标
	Order       int    `gorm:"column:order;default:0" json:"order"`               // 排序（数值越小越靠前）
	IsVisible   int    `gorm:"column:is_visible;default:1" json:"isVisible"`      // 是否显示在菜单中：0-隐藏，1-显示
	IsEnabled   int    `gorm:"column:is_enabled;default:1" json:"isEnabled"`      // 是否启用：0-禁用，1-启用
	Auths       string `gorm:"column:auths" json:"auths"`                         // 按钮级权限码，逗号分隔
	Description string `gorm:"column:description" json:"description"`             // 菜单描述
	Meta        string `gorm:"column:meta;type:text" json:"meta"`                 // 扩展元数据（JSON格式）
}

func (Menu) TableName() string {
	return "t_menu"
}

// 菜单可见性常量
const (
	MenuVisible   = 1 // 可见
	MenuInvisible = 0 // 不可见
)

// 菜单启用状态常量
const (
	MenuEnabled  = 1 // 启用
	MenuDisabled = 0 // 禁用
)

// ToRouteNode 将菜单行转换为路由节点（不含子节点）。
// 扩展元数据先展开，列字段覆盖同名键；order 导出为 meta.rank。
func (m *Menu) ToRouteNode() *RouteNode {
	meta := Meta{}
	if strings.TrimSpace(m.Meta) != "" {
		var extra map[string]any
		if err := sonic.UnmarshalString(m.Meta, &extra); err == nil {
			for k, v := range extra {
				meta[k] = v
			}
		}
	}
	if m.Title != "" {
		meta[MetaTitle] = m.Title
	}
	if m.Icon != "" {
		meta[MetaIcon] = m.Icon
	}
	meta[MetaRank] = m.Order
	if m.IsVisible == MenuInvisible {
		meta[MetaShowLink] = false
	}
	if auths := splitAuths(m.Auths); len(auths) > 0 {
		meta[MetaAuths] = auths
	}
	return &RouteNode{
		Path:      m.Path,
		Name:      m.Name,
		Redirect:  m.Redirect,
		Component: m.Component,
		Meta:      meta,
	}
}

func splitAuths(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
