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
	"net/http"
	"net/url"
	"strings"

	"github.com/authgate/authgate/internal/x"
)

const (
	xForwardedMethod = "X-Forwarded-Method"
	xForwardedProto  = "X-Forwarded-Proto"
	xForwardedHost   = "X-Forwarded-Host"
	xForwardedURI    = "X-Forwarded-Uri"

	decisionsPath = "/decisions"
)

// originalRequest reconstructs the request the calling proxy asks a decision for.
// Forwarding headers take precedence. Without these the path below /decisions
// and the query of the decision request are used.
func originalRequest(req *http.Request) *http.Request {
	origReq := req.Clone(req.Context())
	origReq.Method = x.OrDefault(req.Header.Get(xForwardedMethod), req.Method)

	origURL := &url.URL{
		Scheme: x.OrDefault(req.Header.Get(xForwardedProto), x.IfThenElse(req.TLS != nil, "https", "http")),
		Host:   x.OrDefault(req.Header.Get(xForwardedHost), req.Host),
	}

	if fwdURI := req.Header.Get(xForwardedURI); len(fwdURI) != 0 {
		if uri, err := url.ParseRequestURI(fwdURI); err == nil {
			origURL.Path = uri.Path
			origURL.RawPath = uri.RawPath
			origURL.RawQuery = uri.RawQuery
		}
	} else {
		origURL.Path = x.OrDefault(strings.TrimPrefix(req.URL.Path, decisionsPath), "/")
		origURL.RawQuery = req.URL.RawQuery
	}

	origReq.URL = origURL
	origReq.Host = origURL.Host

	return origReq
}
