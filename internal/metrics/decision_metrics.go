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

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "authgate"

	OutcomeGranted = "granted"
	OutcomeDenied  = "denied"
	OutcomeError   = "error"
)

// DecisionMetrics records the outcome of authorization decisions.
type DecisionMetrics interface {
	ObserveDecision(strategy, outcome string)
	SetActiveStrategy(strategy string)
}

type decisionMetrics struct {
	decisions *prometheus.CounterVec
	active    *prometheus.GaugeVec

	mut     sync.Mutex
	current string
}

func NewDecisionMetrics(reg prometheus.Registerer) (DecisionMetrics, error) {
	decisions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authorization_decisions_total",
			Help:      "Number of authorization decisions made, partitioned by strategy and outcome",
		},
		[]string{"strategy", "outcome"},
	)

	active := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "strategy_info",
			Help:      "Currently active auth strategy. The value is 1 for the active one",
		},
		[]string{"strategy"},
	)

	for _, collector := range []prometheus.Collector{decisions, active} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return &decisionMetrics{decisions: decisions, active: active}, nil
}

func (m *decisionMetrics) ObserveDecision(strategy, outcome string) {
	m.decisions.WithLabelValues(strategy, outcome).Inc()
}

// SetActiveStrategy marks the given strategy as active before the previous one is
// removed. A scrape therefore always finds at least one strategy_info series.
func (m *decisionMetrics) SetActiveStrategy(strategy string) {
	m.mut.Lock()
	defer m.mut.Unlock()

	m.active.WithLabelValues(strategy).Set(1)

	if len(m.current) != 0 && m.current != strategy {
		m.active.DeleteLabelValues(m.current)
	}

	m.current = strategy
}
