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

	"github.com/authgate/authgate/internal/authgate"
	"github.com/authgate/authgate/internal/config/parser"
	"github.com/authgate/authgate/internal/validation"
	"github.com/authgate/authgate/internal/x/errorchain"
)

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type Configuration struct {
	Serve ServeConfig    `koanf:"serve"`
	Log   LoggingConfig  `koanf:"log"`
	Auth  map[string]any `koanf:"auth"`
}

func NewConfiguration(
	envPrefix EnvVarPrefix,
	configFile ConfigurationPath,
	validator validation.Validator,
) (*Configuration, error) {
	// copy defaults
	result := defaultConfig()

	opts := []parser.Option{
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(stringToByteSizeHookFunc),
		parser.WithConfigFile(string(configFile)),
		parser.WithEnvPrefix(string(envPrefix)),
	}

	for _, dir := range configLookupDirs() {
		opts = append(opts, parser.WithConfigLookupDir(dir))
	}

	if err := parser.New(opts...).Load(&result); err != nil {
		return nil, errorchain.NewWithMessage(authgate.ErrConfiguration,
			"failed to read configuration").CausedBy(err)
	}

	if err := validator.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(authgate.ErrConfiguration,
			"configuration is invalid").CausedBy(err)
	}

	return &result, nil
}

func configLookupDirs() []string {
	dirs := make([]string, 0, 3) // nolint: mnd

	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "authgate"))
	}

	return append(dirs, "/etc/authgate")
}
