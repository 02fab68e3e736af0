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

package httpx

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/yl2chen/cidranger"
)

const headerXForwardedFor = "X-Forwarded-For"

type trustedProxiesKey struct{}

// WithTrustedProxies makes the given proxies known to ClientIP.
func WithTrustedProxies(ctx context.Context, proxies cidranger.Ranger) context.Context {
	return context.WithValue(ctx, trustedProxiesKey{}, proxies)
}

func IPFromHostPort(hp string) string {
	host, _, err := net.SplitHostPort(hp)
	if err != nil {
		return ""
	}

	if len(host) > 0 && host[0] == '[' {
		return host[1 : len(host)-1]
	}

	return host
}

// IsTrusted reports whether ip belongs to one of the given proxy networks.
func IsTrusted(proxies cidranger.Ranger, ip string) bool {
	parsed := net.ParseIP(ip)
	if proxies == nil || parsed == nil {
		return false
	}

	trusted, err := proxies.Contains(parsed)

	return err == nil && trusted
}

// ClientIP returns the address of the client which initiated the request. X-Forwarded-For
// is only considered if the peer is a trusted proxy. Its entries are walked from the right,
// skipping trusted proxies, as only these are known to append the address they received
// the request from. The first untrusted entry is the client.
func ClientIP(req *http.Request) string {
	peer := IPFromHostPort(req.RemoteAddr)

	proxies, _ := req.Context().Value(trustedProxiesKey{}).(cidranger.Ranger)
	if !IsTrusted(proxies, peer) {
		return peer
	}

	var hops []string
	for _, value := range req.Header.Values(headerXForwardedFor) {
		hops = append(hops, strings.Split(value, ",")...)
	}

	client := peer

	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if len(hop) == 0 {
			continue
		}

		client = hop

		if !IsTrusted(proxies, hop) {
			break
		}
	}

	return client
}
