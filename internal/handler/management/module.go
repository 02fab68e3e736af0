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

package management

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/authgate/authgate/internal/config"
	"github.com/authgate/authgate/internal/handler/fxlcm"
)

// Module is used on app bootstrap.
// nolint: gochecknoglobals
var Module = fx.Invoke(
	fx.Annotate(
		newLifecycleManager,
		fx.OnStart(func(ctx context.Context, lcm *fxlcm.LifecycleManager) error { return lcm.Start(ctx) }),
		fx.OnStop(func(ctx context.Context, lcm *fxlcm.LifecycleManager) error { return lcm.Stop(ctx) }),
	),
)

func newLifecycleManager(
	conf *config.Configuration,
	logger zerolog.Logger,
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
	shutdowner fx.Shutdowner,
) *fxlcm.LifecycleManager {
	return &fxlcm.LifecycleManager{
		ServiceName:    "Management",
		ServiceAddress: conf.Serve.Management.Address(),
		Server:         newService(conf, reg, gatherer, logger),
		Logger:         logger,
		Shutdowner:     shutdowner,
	}
}
