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


package validate

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authgate/authgate/cmd/flags"
	"github.com/authgate/authgate/internal/authgate"
	"github.com/authgate/authgate/internal/authstrategy"
)

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc          string
		confFile    string
		expError    error
		expStrategy authstrategy.Type
	}{
		{uc: "no config provided", expError: ErrNoConfigFile},
		{uc: "not existing config", confFile: "doesnotexist.yaml", expError: os.ErrNotExist},
		{uc: "invalid auth config", confFile: "test_data/invalid-auth-config.yaml", expError: authgate.ErrConfiguration},
		{
			uc:       "auth config with unknown key",
			confFile: "test_data/unknown-auth-key-config.yaml",
			expError: authgate.ErrConfiguration,
		},
		{uc: "valid config", confFile: "test_data/config.yaml", expStrategy: authstrategy.TypeTokenIP},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			cmd := NewValidateConfigCommand()
			cmd.Flags().StringP(flags.Config, "c", "", "Path to authgate's configuration file.")

			if len(tc.confFile) != 0 {
				err := cmd.ParseFlags([]string{"--" + flags.Config, tc.confFile})
				require.NoError(t, err)
			}

			// WHEN
			strategy, err := validateConfig(cmd)

			// THEN
			if tc.expError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expStrategy, strategy.Type())
			}
		})
	}
}

func TestRunValidateConfigCommand(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		confFile string
		expError string
		expOut   string
	}{
		{uc: "invalid config", confFile: "doesnotexist.yaml", expError: "no such file or directory"},
		{uc: "valid config", confFile: "test_data/config.yaml", expOut: "Configuration is valid. Resolved auth strategy: token_ip"},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			cmd := NewValidateConfigCommand()

			buf := bytes.NewBuffer([]byte{})
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{"--" + flags.Config, tc.confFile})

			cmd.Flags().StringP(flags.Config, "c", "", "Path to authgate's configuration file.")

			// WHEN
			err := cmd.Execute()

			// THEN
			if len(tc.expError) != 0 {
				require.Error(t, err)
				assert.Contains(t, buf.String(), tc.expError)
			} else {
				require.NoError(t, err)
				assert.Contains(t, buf.String(), tc.expOut)
			}
		})
	}
}
