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

package repo

import (
	"context"

	"github.com/go-arcade/console/internal/engine/model"
	"github.com/go-arcade/console/pkg/database"
)

type IMenuRepository interface {
	// ListMenus 获取所有启用的菜单，按 order 升序
	ListMenus(ctx context.Context) ([]model.Menu, error)
	// ListMenuIdsByRoles 获取角色可访问的菜单ID（去重）
	ListMenuIdsByRoles(ctx context.Context, roleCodes []string) ([]string, error)
}

type MenuRepo struct {
	database.IDatabase
}

func NewMenuRepo(db database.IDatabase) *MenuRepo {
	return &MenuRepo{
		IDatabase: db,
	}
}

// ListMenus 获取所有启用的菜单
func (r *MenuRepo) ListMenus(ctx context.Context) ([]model.Menu, error) {
	if r.Database() == nil {
		return nil, database.ErrDisabled
	}
	var menus []model.Menu
	err := database.ReadDB(r.Database()).WithContext(ctx).
		Where("is_enabled = ?", model.MenuEnabled).
		Order("`order` ASC").Find(&menus).Error
	return menus, err
}

// ListMenuIdsByRoles 获取多个角色可访问的菜单ID
func (r *MenuRepo) ListMenuIdsByRoles(ctx context.Context, roleCodes []string) ([]string, error) {
	if len(roleCodes) == 0 {
		return []string{}, nil
	}
	if r.Database() == nil {
		return nil, database.ErrDisabled
	}
	var menuIds []string
	err := database.ReadDB(r.Database()).WithContext(ctx).
		Model(&model.RoleMenuBinding{}).
		Where("role_code IN ? AND is_accessible = ?", roleCodes, model.RoleMenuAccessible).
		Distinct().Pluck("menu_id", &menuIds).Error
	return menuIds, err
}
