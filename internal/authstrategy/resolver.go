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

// FromConfig selects the strategy for the given configuration. It never fails and
// returns a new instance on every call.
//
// Without further settings no_token is used, even if a token is configured.
// Selecting the simple_token strategy based on the presence of a token must be
// enabled explicitly with token_selection. Alternatively the strategy to use can
// be named with the strategy option.
func FromConfig(config map[string]any) AuthStrategy {
	return Resolve(optionsFromConfig(config))
}

func Resolve(opts Options) AuthStrategy {
	switch opts.Strategy {
	case TypeNoTokenRequired:
		return &NoTokenRequired{}
	case TypeSimpleToken:
		return NewSimpleToken(opts.Token)
	case TypeTokenIP:
		return NewTokenIP(opts.Token, opts.AllowedIPs...)
	}

	if opts.TokenSelection && len(opts.Token) != 0 {
		return NewSimpleToken(opts.Token)
	}

	return &NoTokenRequired{}
}
