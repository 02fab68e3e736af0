// Copyright 2026 The authgate Authors
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
//
// SPDX-License-Identifier: Apache-2.0

package decision

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/authgate/authgate/internal/config"
	"github.com/authgate/authgate/internal/handler/fxlcm"
	"github.com/authgate/authgate/internal/metrics"
	"github.com/authgate/authgate/internal/validation"
	"github.com/authgate/authgate/internal/watcher"
)

// Module is used on app bootstrap.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		provideStrategyProvider,
		func(sp *strategyProvider) StrategyProvider { return sp },
	),
	fx.Invoke(
		registerConfigWatcher,
		fx.Annotate(
			newLifecycleManager,
			fx.OnStart(func(ctx context.Context, lcm *fxlcm.LifecycleManager) error { return lcm.Start(ctx) }),
			fx.OnStop(func(ctx context.Context, lcm *fxlcm.LifecycleManager) error { return lcm.Stop(ctx) }),
		),
	),
)

func provideStrategyProvider(
	conf *config.Configuration,
	envPrefix config.EnvVarPrefix,
	configFile config.ConfigurationPath,
	validator validation.Validator,
	dm metrics.DecisionMetrics,
	logger zerolog.Logger,
) (*strategyProvider, error) {
	return newStrategyProvider(validator, dm, conf.Auth,
		func() (map[string]any, error) {
			newConf, err := config.NewConfiguration(envPrefix, configFile, validator)
			if err != nil {
				return nil, err
			}

			return newConf.Auth, nil
		},
		logger,
	)
}

func registerConfigWatcher(
	configFile config.ConfigurationPath,
	cw watcher.Watcher,
	sp *strategyProvider,
	logger zerolog.Logger,
) error {
	if len(configFile) == 0 {
		logger.Debug().Msg("No explicit config file given. Auth strategy reloading is disabled")

		return nil
	}

	return cw.Add(string(configFile), sp)
}

func newLifecycleManager(
	conf *config.Configuration,
	logger zerolog.Logger,
	sp StrategyProvider,
	dm metrics.DecisionMetrics,
	shutdowner fx.Shutdowner,
) *fxlcm.LifecycleManager {
	return &fxlcm.LifecycleManager{
		ServiceName:    "Decision",
		ServiceAddress: conf.Serve.Decision.Address(),
		Server:         newService(conf, logger, sp, dm),
		Logger:         logger,
		Shutdowner:     shutdowner,
	}
}
