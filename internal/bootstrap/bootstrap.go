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

package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/go-arcade/console/internal/engine/conf"
	"github.com/go-arcade/console/internal/engine/router"
	"github.com/go-arcade/console/internal/engine/service"
	"github.com/go-arcade/console/pkg/cache"
	"github.com/go-arcade/console/pkg/database"
	"github.com/go-arcade/console/pkg/log"
	"github.com/go-arcade/console/pkg/metrics"
	"github.com/go-arcade/console/pkg/safe"
)

type App struct {
	HttpApp  *fiber.App
	Sessions *service.SessionRegistry
	Metrics  *metrics.Server
	Logger   *zap.Logger
	AppConf  conf.AppConfig
}

// InitAppFunc init app function type
type InitAppFunc func(configFile string, logger *zap.Logger, db database.IDatabase, cache cache.ICache) (*App, func(), error)

func NewApp(
	rt *router.Router,
	metricsServer *metrics.Server,
	logger *zap.Logger,
	appConf conf.AppConfig,
) (*App, func(), error) {
	httpApp := rt.Router()

	cleanup := func() {
		if metricsServer != nil {
			if err := metricsServer.Stop(context.Background()); err != nil {
				logger.Error("Failed to stop metrics server", zap.Error(err))
			}
		}
	}

	app := &App{
		HttpApp:  httpApp,
		Sessions: rt.Sessions,
		Metrics:  metricsServer,
		Logger:   logger,
		AppConf:  appConf,
	}
	return app, cleanup, nil
}

// Bootstrap init app, return App instance and cleanup function
func Bootstrap(configFile string, initApp InitAppFunc) (*App, func(), conf.AppConfig, error) {
	// load config
	appConf := conf.NewConf(configFile)

	// init logger
	logger, err := log.NewLog(&appConf.Log)
	if err != nil {
		return nil, nil, appConf, err
	}

	// init Redis, database
	redisClient, closeRedis, err := cache.ProvideRedis(appConf.Redis)
	if err != nil {
		return nil, nil, appConf, err
	}
	db, closeDB, err := database.ProvideDatabase(appConf.Database)
	if err != nil {
		closeRedis()
		return nil, nil, appConf, err
	}
	iCache := cache.ProvideICache(cache.ProvideLocalCache(), redisClient)

	// Wire build App
	app, cleanup, err := initApp(configFile, logger, db, iCache)
	if err != nil {
		closeDB()
		closeRedis()
		return nil, nil, appConf, err
	}

	return app, func() {
		cleanup()
		closeDB()
		closeRedis()
	}, appConf, nil
}

// Run start app and wait for exit signal, then gracefully shutdown
func Run(app *App, cleanup func()) {
	logger := app.Logger
	appConf := app.AppConf

	// standalone metrics listener, skipped when disabled
	if err := app.Metrics.Start(); err != nil {
		logger.Sugar().Errorw("Metrics server failed to start", "error", err)
	}

	// set signal listener (graceful shutdown)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// start HTTP server (async)
	safe.Go(func() {
		addr := appConf.Http.Addr()
		logger.Sugar().Infow("HTTP listener started",
			"address", addr,
		)
		if err := app.HttpApp.Listen(addr); err != nil {
			logger.Sugar().Errorw("HTTP listener failed",
				"address", addr,
				"error", err,
			)
		}
	})

	// wait for exit signal
	sig := <-quit
	logger.Sugar().Infof("Received signal: %v, shutting down gracefully...", sig)

	// close HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), appConf.Http.ShutdownWait())
	defer shutdownCancel()
	if err := app.HttpApp.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Sugar().Errorf("HTTP server shutdown error: %v", err)
	} else {
		logger.Info("HTTP server shut down gracefully")
	}

	// drop in-memory sessions, snapshots stay for the next start
	closed := app.Sessions.CloseAll()
	logger.Sugar().Infow("Sessions released", "count", closed)

	cleanup()

	logger.Info("Server shutdown complete")
}
