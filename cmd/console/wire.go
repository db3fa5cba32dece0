//go:build wireinject
// +build wireinject

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

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/go-arcade/console/internal/bootstrap"
	"github.com/go-arcade/console/internal/engine/client"
	"github.com/go-arcade/console/internal/engine/conf"
	"github.com/go-arcade/console/internal/engine/repo"
	"github.com/go-arcade/console/internal/engine/router"
	"github.com/go-arcade/console/internal/engine/service"
	"github.com/go-arcade/console/pkg/authz"
	"github.com/go-arcade/console/pkg/cache"
	"github.com/go-arcade/console/pkg/database"
	"github.com/go-arcade/console/pkg/metrics"
)

func initApp(configFile string, logger *zap.Logger, db database.IDatabase, iCache cache.ICache) (*bootstrap.App, func(), error) {
	panic(wire.Build(
		// 配置层
		conf.ProviderSet,
		// 远程接口
		client.ProviderSet,
		// 仓储层
		repo.ProviderSet,
		// 权限
		authz.ProviderSet,
		// 服务层
		service.ProviderSet,
		// 指标
		metrics.ProviderSet,
		// 路由层
		router.ProviderSet,
		// 应用层
		bootstrap.NewApp,
	))
}
