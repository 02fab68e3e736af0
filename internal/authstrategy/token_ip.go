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
	"context"
	"net"
	"net/http"
	"slices"

	"github.com/rs/zerolog"
	"github.com/yl2chen/cidranger"

	"github.com/authgate/authgate/internal/authgate"
	"github.com/authgate/authgate/internal/x/errorchain"
	"github.com/authgate/authgate/internal/x/httpx"
	"github.com/authgate/authgate/internal/x/netx"
)

// TokenIP requires a valid token presented from one of the allowed networks.
type TokenIP struct {
	token    string
	networks []string
	ranger   cidranger.Ranger
}

// NewTokenIP builds the strategy for the given IP addresses and CIDR networks.
// Entries, which can not be parsed are skipped. These are reported by Validate.
func NewTokenIP(token string, allowed ...string) *TokenIP {
	ranger, networks := netx.NewRanger(allowed, nil)

	slices.Sort(networks)

	return &TokenIP{
		token:    token,
		networks: slices.Compact(networks),
		ranger:   ranger,
	}
}

func (*TokenIP) Type() Type { return TypeTokenIP }

func (s *TokenIP) Token() string { return s.token }

func (s *TokenIP) Networks() []string { return slices.Clone(s.networks) }

func (s *TokenIP) Authorize(ctx context.Context, req *http.Request) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Msg("Authorizing request using token_ip strategy")

	clientIP := httpx.ClientIP(req)

	ip := net.ParseIP(clientIP)
	if ip == nil {
		return errorchain.NewWithMessagef(authgate.ErrAuthentication,
			"failed to determine client ip from '%s'", clientIP)
	}

	if ok, err := s.ranger.Contains(ip); err != nil || !ok {
		return errorchain.NewWithMessagef(authgate.ErrAuthentication,
			"client ip %s is not allowed", clientIP)
	}

	return verifyToken(s.token, req)
}

func (s *TokenIP) Hash() []byte {
	return configHash(append([]string{string(s.Type()), s.token}, s.networks...)...)
}
