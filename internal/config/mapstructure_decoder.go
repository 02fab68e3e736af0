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
	"reflect"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"

	"github.com/authgate/authgate/internal/authgate"
	"github.com/authgate/authgate/internal/x"
	"github.com/authgate/authgate/internal/x/errorchain"
)

// Decode zeroLog LogLevels from strings.
func logLevelDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(zerolog.Level(0)) {
		return data, nil
	}

	name, _ := data.(string)
	if len(name) == 0 {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel, nil // nolint: nilerr
	}

	return level, nil
}

func logFormatDecodeHookFunc(from reflect.Type, to reflect.Type, val any) (any, error) {
	if from.Kind() == reflect.String && to.Name() == "LogFormat" {
		return x.IfThenElse(val == "gelf", LogGelfFormat, LogTextFormat), nil
	}

	return val, nil
}

func stringToByteSizeHookFunc(from reflect.Type, to reflect.Type, val any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(bytesize.ByteSize(0)) {
		return val, nil
	}

	size, err := bytesize.Parse(val.(string)) // nolint: forcetypeassert
	if err != nil {
		return nil, errorchain.NewWithMessagef(authgate.ErrConfiguration,
			"failed parsing %q as byte size", val).CausedBy(err)
	}

	return size, nil
}
