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

package database

import (
	"github.com/google/wire"

	"github.com/go-arcade/console/pkg/log"
)

// ProviderSet provides database-related dependencies
var ProviderSet = wire.NewSet(ProvideDatabase)

// ProvideDatabase 提供 IDatabase；未配置 MySQL 时返回空连接，菜单改由远程接口获取
func ProvideDatabase(conf Database) (IDatabase, func(), error) {
	if !conf.Enabled() {
		log.Info("database not configured, skipping MySQL connection")
		return NewGormDB(nil), func() {}, nil
	}
	db, err := NewDatabase(conf)
	if err != nil {
		return nil, nil, err
	}
	g := NewGormDB(db)
	return g, func() { _ = g.Close() }, nil
}
