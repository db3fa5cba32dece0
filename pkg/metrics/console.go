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

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// MenuAssembliesTotal counts menu assembly passes
	MenuAssembliesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "console_menu_assemblies_total",
			Help: "Total number of navigation menu assemblies",
		},
	)

	// CacheOperationsTotal counts keep-alive cache list operations by mode
	CacheOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_cache_operations_total",
			Help: "Total number of keep-alive cache list operations",
		},
		[]string{"mode"},
	)

	// ConfigResolutionsTotal counts current-profile resolutions by outcome
	ConfigResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_config_resolutions_total",
			Help: "Total number of integration profile selections by outcome",
		},
		[]string{"outcome"},
	)

	consoleMetricsOnce sync.Once
)

// 配置选择结果
const (
	OutcomePreferred = "preferred"
	OutcomeKept      = "kept"
	OutcomeFirst     = "first"
	OutcomeCleared   = "cleared"
)

// RegisterConsoleMetrics registers all console metrics
func RegisterConsoleMetrics(registry *prometheus.Registry) {
	consoleMetricsOnce.Do(func() {
		registry.MustRegister(
			MenuAssembliesTotal,
			CacheOperationsTotal,
			ConfigResolutionsTotal,
		)
	})
}

func RecordMenuAssembly() {
	MenuAssembliesTotal.Inc()
}

func RecordCacheOperation(mode string) {
	CacheOperationsTotal.WithLabelValues(mode).Inc()
}

func RecordConfigResolution(outcome string) {
	ConfigResolutionsTotal.WithLabelValues(outcome).Inc()
}
