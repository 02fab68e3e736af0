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

package authstrategy

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/authgate/authgate/internal/authgate"
	"github.com/authgate/authgate/internal/validation"
	"github.com/authgate/authgate/internal/x/errorchain"
)

// Options is the typed view on the opaque authentication configuration.
type Options struct {
	Token string `mapstructure:"token" validate:"required_if=Strategy simple_token,required_if=Strategy token_ip"`
	// TokenSelection enables picking the simple_token strategy whenever a token is configured.
	TokenSelection bool     `mapstructure:"token_selection"`
	Strategy       Type     `mapstructure:"strategy"        validate:"omitempty,oneof=no_token simple_token token_ip"` //nolint:lll
	AllowedIPs     []string `mapstructure:"allowed_ips"     validate:"required_if=Strategy token_ip,dive,ip_or_cidr"`  //nolint:lll
}

// Validate decodes the given configuration strictly and checks it. Unlike FromConfig,
// which never fails, it reports unknown keys, wrongly typed values and incomplete
// strategy settings.
func Validate(validator validation.Validator, config map[string]any) error {
	var opts Options

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
		),
		Result:      &opts,
		ErrorUnused: true,
	})
	if err != nil {
		return errorchain.NewWithMessage(authgate.ErrConfiguration,
			"failed to unmarshal auth config").CausedBy(err)
	}

	if err = dec.Decode(config); err != nil {
		return errorchain.NewWithMessage(authgate.ErrConfiguration,
			"failed to unmarshal auth config").CausedBy(err)
	}

	if err = validator.ValidateStruct(opts); err != nil {
		return errorchain.NewWithMessage(authgate.ErrConfiguration,
			"failed validating auth config").CausedBy(err)
	}

	return nil
}

// optionsFromConfig decodes whatever can be decoded. Values of unexpected types
// are left at their zero value.
func optionsFromConfig(config map[string]any) Options {
	var opts Options

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
		),
		Result: &opts,
	})
	if err != nil {
		return Options{}
	}

	// a partial result is fine here
	_ = dec.Decode(config)

	return opts
}
