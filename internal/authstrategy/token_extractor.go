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
	"net/http"
	"strings"

	"github.com/authgate/authgate/internal/authgate"
	"github.com/authgate/authgate/internal/x/errorchain"
)

const (
	tokenHeader     = "Authorization"
	tokenSchema     = "Bearer"
	tokenQueryParam = "token"
)

// extractToken takes the token from the Authorization header if present and
// falls back to the token query parameter. The schema is matched case-insensitively.
func extractToken(req *http.Request) (string, error) {
	if val := req.Header.Get(tokenHeader); len(val) != 0 {
		schema, token, found := strings.Cut(val, " ")
		if !found || !strings.EqualFold(schema, tokenSchema) {
			return "", errorchain.NewWithMessagef(authgate.ErrAuthentication,
				"'%s' header present, but without required '%s' schema", tokenHeader, tokenSchema).
				CausedBy(authgate.ErrArgument)
		}

		return strings.TrimSpace(token), nil
	}

	if req.URL != nil {
		if val := strings.TrimSpace(req.URL.Query().Get(tokenQueryParam)); len(val) != 0 {
			return val, nil
		}
	}

	return "", errorchain.NewWithMessagef(authgate.ErrAuthentication,
		"neither '%s' header nor '%s' query parameter present", tokenHeader, tokenQueryParam)
}
