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
	"github.com/spf13/cobra"

	"github.com/authgate/authgate/cmd/flags"
	"github.com/authgate/authgate/internal/authstrategy"
	"github.com/authgate/authgate/internal/config"
	"github.com/authgate/authgate/internal/validation"
)

// NewValidateConfigCommand represents the "validate config" command.
func NewValidateConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   "Validates authgate's configuration",
		Example: "authgate validate config -c myconfig.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			strategy, err := validateConfig(cmd)
			if err != nil {
				return err
			}

			cmd.Printf("Configuration is valid. Resolved auth strategy: %s\n", strategy.Type())

			return nil
		},
	}
}

func validateConfig(cmd *cobra.Command) (authstrategy.AuthStrategy, error) {
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)
	configPath, _ := cmd.Flags().GetString(flags.Config)

	if len(configPath) == 0 {
		return nil, ErrNoConfigFile
	}

	validator, err := validation.NewValidator()
	if err != nil {
		return nil, err
	}

	conf, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
		validator,
	)
	if err != nil {
		return nil, err
	}

	if err = authstrategy.Validate(validator, conf.Auth); err != nil {
		return nil, err
	}

	return authstrategy.FromConfig(conf.Auth), nil
}
