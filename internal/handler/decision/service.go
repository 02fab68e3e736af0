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
	stdlog "log"
	"net/http"

	"github.com/ccoveille/go-safecast"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/authgate/authgate/internal/config"
	"github.com/authgate/authgate/internal/handler/middleware/http/accesslog"
	"github.com/authgate/authgate/internal/handler/middleware/http/errorhandler"
	"github.com/authgate/authgate/internal/handler/middleware/http/recovery"
	"github.com/authgate/authgate/internal/handler/middleware/http/trustedproxy"
	"github.com/authgate/authgate/internal/metrics"
	"github.com/authgate/authgate/internal/x"
)

func newService(
	conf *config.Configuration,
	log zerolog.Logger,
	sp StrategyProvider,
	dm metrics.DecisionMetrics,
) *http.Server {
	cfg := conf.Serve.Decision
	eh := errorhandler.New(errorhandler.WithVerboseErrors(cfg.Respond.Verbose))

	hc := alice.New(
		trustedproxy.New(log, cfg.TrustedProxies...),
		accesslog.New(log),
		recovery.New(eh),
		x.IfThenElseExec(cfg.CORS != nil,
			func() alice.Constructor {
				return cors.New(
					cors.Options{
						AllowedOrigins:   cfg.CORS.AllowedOrigins,
						AllowedMethods:   cfg.CORS.AllowedMethods,
						AllowedHeaders:   cfg.CORS.AllowedHeaders,
						AllowCredentials: cfg.CORS.AllowCredentials,
						ExposedHeaders:   cfg.CORS.ExposedHeaders,
						MaxAge:           int(cfg.CORS.MaxAge.Seconds()),
					},
				).Handler
			},
			func() alice.Constructor { return passThrough },
		),
	).Then(newHandler(sp, dm, eh))

	return &http.Server{
		Handler:        hc,
		Addr:           cfg.Address(),
		ReadTimeout:    cfg.Timeout.Read,
		WriteTimeout:   cfg.Timeout.Write,
		IdleTimeout:    cfg.Timeout.Idle,
		MaxHeaderBytes: safecast.MustConvert[int](uint64(cfg.BufferLimit.Read)),
		ErrorLog:       stdlog.New(log.With().Str("_service", "decision").Logger(), "", 0),
	}
}

func passThrough(next http.Handler) http.Handler { return next }
