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

package fxlcm

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/authgate/authgate/internal/authgate"
	"github.com/authgate/authgate/internal/x/errorchain"
)

type Server interface {
	Serve(l net.Listener) error
	Shutdown(ctx context.Context) error
}

// LifecycleManager binds the lifecycle of a Server to the fx application. If the
// server terminates unexpectedly, the application is shut down with a non zero exit code.
type LifecycleManager struct {
	ServiceName    string
	ServiceAddress string
	Server         Server
	Logger         zerolog.Logger
	Shutdowner     fx.Shutdowner
}

func (m *LifecycleManager) Start(_ context.Context) error {
	ln, err := net.Listen("tcp", m.ServiceAddress)
	if err != nil {
		return errorchain.NewWithMessagef(authgate.ErrInternal,
			"Could not create listener for %s service", m.ServiceName).
			CausedBy(err)
	}

	go func() {
		m.Logger.Info().
			Str("_address", ln.Addr().String()).
			Str("_service", m.ServiceName).
			Msg("Starting listening")

		if err := m.Server.Serve(ln); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				m.Logger.Info().Str("_service", m.ServiceName).Msg("Service stopped")

				return
			}

			m.Logger.Error().Err(err).Str("_service", m.ServiceName).Msg("Could not start service")

			if m.Shutdowner != nil {
				_ = m.Shutdowner.Shutdown(fx.ExitCode(1))
			}
		}
	}()

	return nil
}

func (m *LifecycleManager) Stop(ctx context.Context) error {
	m.Logger.Info().Str("_service", m.ServiceName).Msg("Tearing down service")

	err := m.Server.Shutdown(ctx)
	if err != nil {
		m.Logger.Warn().Err(err).Str("_service", m.ServiceName).Msg("Graceful shutdown failed")
	}

	return err
}
