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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authgate/authgate/internal/authgate"
	"github.com/authgate/authgate/internal/validation"
)

func TestNewConfiguration(t *testing.T) {
	for _, tc := range []struct {
		uc     string
		config string
		env    map[string]string
		assert func(t *testing.T, err error, conf *Configuration)
	}{
		{
			uc: "defaults are used for an empty config",
			assert: func(t *testing.T, err error, conf *Configuration) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, ":4456", conf.Serve.Decision.Address())
				assert.Equal(t, ":4457", conf.Serve.Management.Address())
				assert.Equal(t, 5*time.Second, conf.Serve.Decision.Timeout.Read)
				assert.Equal(t, 10*time.Second, conf.Serve.Decision.Timeout.Write)
				assert.Equal(t, 2*time.Minute, conf.Serve.Decision.Timeout.Idle)
				assert.Equal(t, 4*bytesize.KB, conf.Serve.Decision.BufferLimit.Read)
				assert.Nil(t, conf.Serve.Decision.CORS)
				assert.Equal(t, zerolog.ErrorLevel, conf.Log.Level)
				assert.Equal(t, LogTextFormat, conf.Log.Format)
				assert.Empty(t, conf.Auth)
			},
		},
		{
			uc: "full config",
			config: `
log:
  level: debug
  format: gelf
serve:
  decision:
    host: 127.0.0.1
    port: 8080
    timeout:
      read: 1s
    trusted_proxies:
      - 10.0.0.0/8
      - 192.168.1.1
    buffer_limit:
      read: 8KB
    cors:
      allowed_origins: [https://example.com]
      allowed_methods: [GET, POST]
      max_age: 1m
    respond:
      verbose: true
  management:
    port: 8081
auth:
  token: foo
  token_selection: true
  allowed_ips: [10.0.0.0/8]
`,
			assert: func(t *testing.T, err error, conf *Configuration) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, zerolog.DebugLevel, conf.Log.Level)
				assert.Equal(t, LogGelfFormat, conf.Log.Format)
				assert.Equal(t, "127.0.0.1:8080", conf.Serve.Decision.Address())
				assert.Equal(t, time.Second, conf.Serve.Decision.Timeout.Read)
				assert.Equal(t, 10*time.Second, conf.Serve.Decision.Timeout.Write)
				assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, conf.Serve.Decision.TrustedProxies)
				assert.Equal(t, 8*bytesize.KB, conf.Serve.Decision.BufferLimit.Read)
				require.NotNil(t, conf.Serve.Decision.CORS)
				assert.Equal(t, []string{"https://example.com"}, conf.Serve.Decision.CORS.AllowedOrigins)
				assert.Equal(t, []string{"GET", "POST"}, conf.Serve.Decision.CORS.AllowedMethods)
				assert.Equal(t, time.Minute, conf.Serve.Decision.CORS.MaxAge)
				assert.True(t, conf.Serve.Decision.Respond.Verbose)
				assert.Equal(t, ":8081", conf.Serve.Management.Address())
				assert.Equal(t, "foo", conf.Auth["token"])
				assert.Equal(t, true, conf.Auth["token_selection"])
				assert.Len(t, conf.Auth["allowed_ips"], 1)
			},
		},
		{
			uc:     "env overrides",
			config: "auth:\n  token: foo\n",
			env: map[string]string{
				"AUTHGATECFGTEST_AUTH_TOKEN":            "bar",
				"AUTHGATECFGTEST_AUTH_TOKEN__SELECTION": "true",
				"AUTHGATECFGTEST_SERVE_MANAGEMENT_PORT": "9999",
				"AUTHGATECFGTEST_LOG_LEVEL":             "warn",
			},
			assert: func(t *testing.T, err error, conf *Configuration) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "bar", conf.Auth["token"])
				assert.Equal(t, true, conf.Auth["token_selection"])
				assert.Equal(t, 9999, conf.Serve.Management.Port)
				assert.Equal(t, zerolog.WarnLevel, conf.Log.Level)
			},
		},
		{
			uc:     "invalid port",
			config: "serve:\n  decision:\n    port: 70000\n",
			assert: func(t *testing.T, err error, _ *Configuration) {
				t.Helper()

				require.ErrorIs(t, err, authgate.ErrConfiguration)
				require.ErrorContains(t, err, "'port' must be 65,535 or less")
			},
		},
		{
			uc:     "invalid buffer limit",
			config: "serve:\n  decision:\n    buffer_limit:\n      read: foo\n",
			assert: func(t *testing.T, err error, _ *Configuration) {
				t.Helper()

				require.ErrorIs(t, err, authgate.ErrConfiguration)
				require.ErrorContains(t, err, "failed parsing \"foo\" as byte size")
			},
		},
		{
			uc:     "invalid trusted proxy",
			config: "serve:\n  decision:\n    trusted_proxies: [foo]\n",
			assert: func(t *testing.T, err error, _ *Configuration) {
				t.Helper()

				require.ErrorIs(t, err, authgate.ErrConfiguration)
				require.ErrorContains(t, err, "must be an IP address or a network in CIDR notation")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			for key, val := range tc.env {
				t.Setenv(key, val)
			}

			configFile := filepath.Join(t.TempDir(), "test.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tc.config), 0o600))

			validator, err := validation.NewValidator()
			require.NoError(t, err)

			// WHEN
			conf, err := NewConfiguration("AUTHGATECFGTEST_", ConfigurationPath(configFile), validator)

			// THEN
			tc.assert(t, err, conf)
		})
	}
}

func TestLogFormatString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text", LogTextFormat.String())
	assert.Equal(t, "gelf", LogGelfFormat.String())
}
