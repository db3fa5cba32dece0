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
	"github.com/google/wire"

	"github.com/go-arcade/console/pkg/cache"
	"github.com/go-arcade/console/pkg/database"
)

// ProviderSet 提供仓储层依赖
var ProviderSet = wire.NewSet(
	ProvideMenuRepo,
	ProvideRouteSnapshotRepo,
)

// ProvideMenuRepo 提供菜单仓储
func ProvideMenuRepo(db database.IDatabase) IMenuRepository {
	return NewMenuRepo(db)
}

// ProvideRouteSnapshotRepo 提供路由快照仓储
func ProvideRouteSnapshotRepo(c cache.ICache) IRouteSnapshotRepository {
	return NewRouteSnapshotRepo(c)
}
