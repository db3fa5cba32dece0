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

package conf

import (
	"github.com/google/wire"

	"github.com/go-arcade/console/internal/engine/client"
	"github.com/go-arcade/console/pkg/authz"
	"github.com/go-arcade/console/pkg/cache"
	"github.com/go-arcade/console/pkg/database"
	"github.com/go-arcade/console/pkg/http"
	"github.com/go-arcade/console/pkg/metrics"
)

// ProviderSet 提供配置相关的依赖
var ProviderSet = wire.NewSet(
	ProvideConf,
	ProvideHttpConfig,
	ProvideDatabaseConfig,
	ProvideRedisConfig,
	ProvideMenuConfig,
	ProvideApiConfig,
	ProvideAuthzConfig,
	ProvideMetricsConfig,
)

// ProvideConf 提供完整配置实例
func ProvideConf(configFile string) AppConfig {
	return NewConf(configFile)
}

func ProvideHttpConfig(appConf AppConfig) *http.Http {
	return &appConf.Http
}

func ProvideDatabaseConfig(appConf AppConfig) database.Database {
	return appConf.Database
}

func ProvideRedisConfig(appConf AppConfig) cache.Redis {
	return appConf.Redis
}

func ProvideMenuConfig(appConf AppConfig) MenuConfig {
	return appConf.Menu
}

func ProvideApiConfig(appConf AppConfig) client.Config {
	return appConf.Api
}

func ProvideAuthzConfig(appConf AppConfig) *authz.Conf {
	return &appConf.Authz
}

func ProvideMetricsConfig(appConf AppConfig) metrics.MetricsConfig {
	return appConf.Metrics
}
