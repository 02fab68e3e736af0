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

package decision

import (
	"bytes"
	"encoding/hex"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/authgate/authgate/internal/authstrategy"
	"github.com/authgate/authgate/internal/metrics"
	"github.com/authgate/authgate/internal/validation"
)

// StrategyProvider hands out the currently active auth strategy. The strategy can
// be replaced while requests are served. A request keeps using the instance it
// obtained.
type StrategyProvider interface {
	Strategy() authstrategy.AuthStrategy
}

type authConfigLoader func() (map[string]any, error)

type strategyProvider struct {
	current   atomic.Pointer[strategyHolder]
	validator validation.Validator
	metrics   metrics.DecisionMetrics
	load      authConfigLoader
}

type strategyHolder struct {
	strategy authstrategy.AuthStrategy
}

func newStrategyProvider(
	validator validation.Validator,
	dm metrics.DecisionMetrics,
	conf map[string]any,
	load authConfigLoader,
	logger zerolog.Logger,
) (*strategyProvider, error) {
	sp := &strategyProvider{validator: validator, metrics: dm, load: load}

	strategy, err := sp.resolve(conf, logger)
	if err != nil {
		return nil, err
	}

	sp.activate(strategy, logger)

	return sp, nil
}

func (p *strategyProvider) Strategy() authstrategy.AuthStrategy {
	return p.current.Load().strategy
}

// OnChanged reloads the auth configuration. The active strategy is kept if the new
// configuration is invalid.
func (p *strategyProvider) OnChanged(logger zerolog.Logger) {
	logger.Info().Msg("Configuration change detected. Reloading auth strategy")

	conf, err := p.load()
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to reload configuration. Keeping current auth strategy")

		return
	}

	strategy, err := p.resolve(conf, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid auth configuration. Keeping current auth strategy")

		return
	}

	if bytes.Equal(strategy.Hash(), p.Strategy().Hash()) {
		logger.Debug().Msg("Auth strategy configuration not changed")

		return
	}

	p.activate(strategy, logger)
}

func (p *strategyProvider) resolve(conf map[string]any, logger zerolog.Logger) (authstrategy.AuthStrategy, error) {
	if err := authstrategy.Validate(p.validator, conf); err != nil {
		return nil, err
	}

	strategy := authstrategy.FromConfig(conf)

	if token, ok := conf["token"].(string); ok && len(token) != 0 && strategy.Type() == authstrategy.TypeNoTokenRequired {
		logger.Warn().Msg("A token is configured, but not used. " +
			"Set token_selection to true or configure the strategy explicitly to enforce it")
	}

	return strategy, nil
}

func (p *strategyProvider) activate(strategy authstrategy.AuthStrategy, logger zerolog.Logger) {
	p.current.Store(&strategyHolder{strategy: strategy})
	p.metrics.SetActiveStrategy(string(strategy.Type()))

	logger.Info().
		Str("_strategy", string(strategy.Type())).
		Str("_hash", hex.EncodeToString(strategy.Hash())).
		Msg("Auth strategy activated")
}
