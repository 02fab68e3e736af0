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
	"sync"

	"github.com/authgate/authgate/internal/authstrategy"
)

type decisionMetricsMock struct {
	mut       sync.Mutex
	decisions map[string]int
	active    string
}

func newDecisionMetricsMock() *decisionMetricsMock {
	return &decisionMetricsMock{decisions: make(map[string]int)}
}

func (m *decisionMetricsMock) ObserveDecision(strategy, outcome string) {
	m.mut.Lock()
	defer m.mut.Unlock()

	m.decisions[strategy+"/"+outcome]++
}

func (m *decisionMetricsMock) SetActiveStrategy(strategy string) {
	m.mut.Lock()
	defer m.mut.Unlock()

	m.active = strategy
}

func (m *decisionMetricsMock) count(strategy, outcome string) int {
	m.mut.Lock()
	defer m.mut.Unlock()

	return m.decisions[strategy+"/"+outcome]
}

func (m *decisionMetricsMock) activeStrategy() string {
	m.mut.Lock()
	defer m.mut.Unlock()

	return m.active
}

type staticStrategyProvider struct {
	strategy authstrategy.AuthStrategy
}

func (p staticStrategyProvider) Strategy() authstrategy.AuthStrategy { return p.strategy }
