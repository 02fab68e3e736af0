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
	stdlog "log"
	"net/http"

	"github.com/ccoveille/go-safecast"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/authgate/authgate/internal/config"
	"github.com/authgate/authgate/internal/handler/middleware/http/accesslog"
	"github.com/authgate/authgate/internal/handler/middleware/http/errorhandler"
	"github.com/authgate/authgate/internal/handler/middleware/http/recovery"
)

func newService(
	conf *config.Configuration,
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
	log zerolog.Logger,
) *http.Server {
	cfg := conf.Serve.Management
	eh := errorhandler.New()

	hc := alice.New(
		accesslog.New(log),
		recovery.New(eh),
	).Then(newManagementHandler(reg, gatherer, log))

	return &http.Server{
		Handler:        hc,
		Addr:           cfg.Address(),
		ReadTimeout:    cfg.Timeout.Read,
		WriteTimeout:   cfg.Timeout.Write,
		IdleTimeout:    cfg.Timeout.Idle,
		MaxHeaderBytes: safecast.MustConvert[int](uint64(cfg.BufferLimit.Read)),
		ErrorLog:       stdlog.New(log.With().Str("_service", "management").Logger(), "", 0),
	}
}
