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
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/authgate/authgate/internal/accesscontext"
	"github.com/authgate/authgate/internal/authgate"
	"github.com/authgate/authgate/internal/handler/middleware/http/errorhandler"
	"github.com/authgate/authgate/internal/metrics"
	"github.com/authgate/authgate/internal/x"
)

type handler struct {
	sp StrategyProvider
	dm metrics.DecisionMetrics
	eh errorhandler.ErrorHandler
}

func newHandler(sp StrategyProvider, dm metrics.DecisionMetrics, eh errorhandler.ErrorHandler) http.Handler {
	mux := http.NewServeMux()
	h := &handler{sp: sp, dm: dm, eh: eh}

	mux.Handle(decisionsPath+"/", h)
	mux.Handle(decisionsPath, h)

	return mux
}

// ServeHTTP responds with 200 if the request reconstructed from the decision request
// is authorized by the active auth strategy. Otherwise, the error handler decides
// about the response.
func (h *handler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	strategy := h.sp.Strategy()
	strategyName := string(strategy.Type())

	accesscontext.SetStrategy(ctx, strategyName)

	origReq := originalRequest(req)

	zerolog.Ctx(ctx).Debug().
		Str("_strategy", strategyName).
		Str("_method", origReq.Method).
		Str("_url", origReq.URL.String()).
		Msg("Deciding about request")

	if err := strategy.Authorize(ctx, origReq); err != nil {
		h.dm.ObserveDecision(strategyName,
			x.IfThenElse(errors.Is(err, authgate.ErrAuthentication), metrics.OutcomeDenied, metrics.OutcomeError))
		h.eh.HandleError(rw, req, err)

		return
	}

	h.dm.ObserveDecision(strategyName, metrics.OutcomeGranted)
	rw.WriteHeader(http.StatusOK)
}
