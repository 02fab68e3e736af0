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

package trustedproxy

import (
	"net/http"
	"slices"

	"github.com/rs/zerolog"

	"github.com/authgate/authgate/internal/x/httpx"
	"github.com/authgate/authgate/internal/x/netx"
)

var untrustedHeader = []string{ //nolint:gochecknoglobals
	"Forwarded",
	"X-Forwarded-For",
	"X-Forwarded-Proto",
	"X-Forwarded-Host",
	"X-Forwarded-Uri",
	"X-Forwarded-Path",
	"X-Forwarded-Method",
}

var insecureNetworks = []string{ //nolint:gochecknoglobals
	"0.0.0.0/0",
	"::/0",
}

// New removes the forwarding headers from requests not sent by one of the given proxies.
// The proxies are made available to httpx.ClientIP, which the token_ip auth strategy
// uses to find the client behind a chain of trusted proxies.
func New(logger zerolog.Logger, proxies ...string) func(http.Handler) http.Handler {
	trustedProxies, networks := netx.NewRanger(proxies, func(entry string, err error) {
		logger.Warn().Err(err).
			Msgf("Trusted proxies entry %q could not be parsed and will be ignored", entry)
	})

	for _, network := range networks {
		if slices.Contains(insecureNetworks, network) {
			logger.Warn().Msgf("Configured trusted proxies contains insecure networks: %s", network)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			if !httpx.IsTrusted(trustedProxies, httpx.IPFromHostPort(req.RemoteAddr)) {
				for _, name := range untrustedHeader {
					req.Header.Del(name)
				}
			}

			next.ServeHTTP(rw, req.WithContext(httpx.WithTrustedProxies(req.Context(), trustedProxies)))
		})
	}
}
