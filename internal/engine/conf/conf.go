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
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/go-arcade/console/internal/engine/client"
	"github.com/go-arcade/console/pkg/authz"
	"github.com/go-arcade/console/pkg/cache"
	"github.com/go-arcade/console/pkg/database"
	"github.com/go-arcade/console/pkg/http"
	"github.com/go-arcade/console/pkg/log"
	"github.com/go-arcade/console/pkg/metrics"
)

/**
 * @author: gagral.x@gmail.com
 * @time: 2024/9/8 23:20
 * @file: conf.go
 * @description:
 */

// EnvPrefix 环境变量前缀，例如 CONSOLE_MENU_HIDEHOME
const EnvPrefix = "CONSOLE"

type AppConfig struct {
	Log      log.Conf
	Http     http.Http
	Database database.Database
	Redis    cache.Redis
	Menu     MenuConfig
	Api      client.Config
	Authz    authz.Conf
	Metrics  metrics.MetricsConfig
}

// MenuConfig 菜单与会话配置
type MenuConfig struct {
	HideHome      bool   `mapstructure:"hideHome"`
	CacheDebounce int    `mapstructure:"cacheDebounce"` // 毫秒
	SnapshotTTL   int    `mapstructure:"snapshotTTL"`   // 秒
	BaselineFile  string `mapstructure:"baselineFile"`
	Source        string `mapstructure:"source"` // remote | database
}

// CacheDebounceDuration 缓存页校正的防抖窗口
func (m MenuConfig) CacheDebounceDuration() time.Duration {
	return time.Duration(m.CacheDebounce) * time.Millisecond
}

// SnapshotTTLDuration 路由快照过期时间
func (m MenuConfig) SnapshotTTLDuration() time.Duration {
	return time.Duration(m.SnapshotTTL) * time.Second
}

var (
	cfg  AppConfig
	mu   sync.RWMutex
	once sync.Once
)

func NewConf(confDir string) AppConfig {
	once.Do(func() {
		loaded, err := LoadConfigFile(confDir)
		if err != nil {
			panic(fmt.Sprintf("load conf file error: %s", err))
		}
		mu.Lock()
		cfg = loaded
		mu.Unlock()
	})
	return Current()
}

// Current 返回最近一次加载的配置
func Current() AppConfig {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.level", "INFO")
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.shutdownTimeout", 10)
	v.SetDefault("http.accessLog", true)
	v.SetDefault("redis.mode", "single")
	v.SetDefault("menu.hideHome", false)
	v.SetDefault("menu.cacheDebounce", 200)
	v.SetDefault("menu.snapshotTTL", 86400)
	v.SetDefault("menu.baselineFile", "")
	v.SetDefault("menu.source", "remote")
	v.SetDefault("api.timeout", 15)
	v.SetDefault("authz.mode", "disabled")
}

// LoadConfigFile load conf file
func LoadConfigFile(confDir string) (AppConfig, error) {
	var loaded AppConfig

	config := viper.New()
	config.SetConfigFile(confDir) //文件名
	config.SetConfigType("toml")
	config.SetEnvPrefix(EnvPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	setDefaults(config)

	if err := config.ReadInConfig(); err != nil {
		return loaded, fmt.Errorf("failed to read configuration file: %w", err)
	}
	if err := config.Unmarshal(&loaded); err != nil {
		return loaded, fmt.Errorf("failed to unmarshal configuration file: %w", err)
	}

	config.WatchConfig()
	config.OnConfigChange(func(e fsnotify.Event) {
		log.Infow("The configuration changes, re-analyze the configuration file", "file", e.Name)
		var next AppConfig
		if err := config.Unmarshal(&next); err != nil {
			log.Errorw("failed to unmarshal configuration file", "file", e.Name, "error", err)
			return
		}
		mu.Lock()
		cfg = next
		mu.Unlock()
	})

	log.Infow("config file loaded",
		"path", confDir,
		"menu.source", loaded.Menu.Source,
		"authz.mode", loaded.Authz.Mode,
	)
	return loaded, nil
}
