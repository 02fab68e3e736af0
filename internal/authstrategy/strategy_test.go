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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authgate/authgate/internal/authgate"
	"github.com/authgate/authgate/internal/x/httpx"
	"github.com/authgate/authgate/internal/x/netx"
)

func TestNoTokenRequiredAuthorize(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc    string
		setup func(req *http.Request)
	}{
		{uc: "without any credentials", setup: func(_ *http.Request) {}},
		{uc: "with some token", setup: func(req *http.Request) { req.Header.Set("Authorization", "Bearer foo") }},
		{uc: "with malformed header", setup: func(req *http.Request) { req.Header.Set("Authorization", "Basic foo") }},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			req := httptest.NewRequest(http.MethodGet, "/foo", nil)
			tc.setup(req)

			strategy := &NoTokenRequired{}

			// WHEN
			err := strategy.Authorize(context.Background(), req)

			// THEN
			require.NoError(t, err)
			assert.Equal(t, TypeNoTokenRequired, strategy.Type())
		})
	}
}

func TestSimpleTokenAuthorize(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		token  string
		setup  func(req *http.Request)
		assert func(t *testing.T, err error)
	}{
		{
			uc:    "valid token in header",
			token: "abc",
			setup: func(req *http.Request) { req.Header.Set("Authorization", "Bearer abc") },
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc:    "valid token in header with lower case schema",
			token: "abc",
			setup: func(req *http.Request) { req.Header.Set("Authorization", "bearer abc") },
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc:    "valid token in header with mixed case schema",
			token: "abc",
			setup: func(req *http.Request) { req.Header.Set("Authorization", "BeArEr abc") },
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc:    "schema without token",
			token: "abc",
			setup: func(req *http.Request) { req.Header.Set("Authorization", "Bearer") },
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, authgate.ErrArgument)
			},
		},
		{
			uc:    "valid token in query",
			token: "abc",
			setup: func(req *http.Request) { req.URL.RawQuery = "token=abc" },
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc:    "header takes precedence over query",
			token: "abc",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer foo")
				req.URL.RawQuery = "token=abc"
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, authgate.ErrAuthentication)
				require.ErrorContains(t, err, "presented token is not valid")
			},
		},
		{
			uc:    "invalid token",
			token: "abc",
			setup: func(req *http.Request) { req.Header.Set("Authorization", "Bearer abcd") },
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, authgate.ErrAuthentication)
				require.ErrorContains(t, err, "presented token is not valid")
			},
		},
		{
			uc:    "header without bearer schema",
			token: "abc",
			setup: func(req *http.Request) { req.Header.Set("Authorization", "Basic abc") },
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, authgate.ErrAuthentication)
				require.ErrorIs(t, err, authgate.ErrArgument)
				require.ErrorContains(t, err, "without required 'Bearer' schema")
			},
		},
		{
			uc:    "no token presented",
			token: "abc",
			setup: func(_ *http.Request) {},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, authgate.ErrAuthentication)
				require.ErrorContains(t, err, "neither 'Authorization' header nor 'token' query parameter present")
			},
		},
		{
			uc:    "empty configured token rejects everything",
			token: "",
			setup: func(req *http.Request) { req.Header.Set("Authorization", "Bearer abc") },
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, authgate.ErrAuthentication)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			req := httptest.NewRequest(http.MethodGet, "/foo", nil)
			tc.setup(req)

			strategy := NewSimpleToken(tc.token)

			// WHEN
			err := strategy.Authorize(context.Background(), req)

			// THEN
			tc.assert(t, err)
		})
	}
}

func TestTokenIPAuthorize(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc      string
		allowed []string
		trusted []string
		setup   func(req *http.Request)
		assert  func(t *testing.T, err error)
	}{
		{
			uc:      "valid token from allowed ip",
			allowed: []string{"10.0.0.1"},
			setup: func(req *http.Request) {
				req.RemoteAddr = "10.0.0.1:1234"
				req.Header.Set("Authorization", "Bearer abc")
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc:      "valid token from allowed network",
			allowed: []string{"192.168.0.0/16"},
			setup: func(req *http.Request) {
				req.RemoteAddr = "192.168.10.12:1234"
				req.URL.RawQuery = "token=abc"
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc:      "valid token from allowed ipv6 address",
			allowed: []string{"::1"},
			setup: func(req *http.Request) {
				req.RemoteAddr = "[::1]:1234"
				req.Header.Set("Authorization", "Bearer abc")
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc:      "forwarded client ip from trusted proxy is used",
			allowed: []string{"172.16.0.0/12"},
			trusted: []string{"10.0.0.0/24"},
			setup: func(req *http.Request) {
				req.RemoteAddr = "10.0.0.1:1234"
				req.Header.Set("X-Forwarded-For", "172.17.1.2, 10.0.0.2")
				req.Header.Set("Authorization", "Bearer abc")
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc:      "forwarded client ip from untrusted peer is ignored",
			allowed: []string{"172.16.0.0/12"},
			setup: func(req *http.Request) {
				req.RemoteAddr = "10.0.0.1:1234"
				req.Header.Set("X-Forwarded-For", "172.17.1.2")
				req.Header.Set("Authorization", "Bearer abc")
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, authgate.ErrAuthentication)
				require.ErrorContains(t, err, "client ip 10.0.0.1 is not allowed")
			},
		},
		{
			uc:      "allowed ip prepended to forwarded entries by the client",
			allowed: []string{"10.0.0.0/8"},
			trusted: []string{"192.168.1.1"},
			setup: func(req *http.Request) {
				req.RemoteAddr = "192.168.1.1:1234"
				req.Header.Set("X-Forwarded-For", "10.0.0.1, 203.0.113.7")
				req.Header.Set("Authorization", "Bearer abc")
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, authgate.ErrAuthentication)
				require.ErrorContains(t, err, "client ip 203.0.113.7 is not allowed")
			},
		},
		{
			uc:      "valid token from not allowed ip",
			allowed: []string{"10.0.0.0/24"},
			setup: func(req *http.Request) {
				req.RemoteAddr = "10.0.1.1:1234"
				req.Header.Set("Authorization", "Bearer abc")
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, authgate.ErrAuthentication)
				require.ErrorContains(t, err, "client ip 10.0.1.1 is not allowed")
			},
		},
		{
			uc:      "invalid token from allowed ip",
			allowed: []string{"10.0.0.0/24"},
			setup: func(req *http.Request) {
				req.RemoteAddr = "10.0.0.1:1234"
				req.Header.Set("Authorization", "Bearer foo")
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, authgate.ErrAuthentication)
				require.ErrorContains(t, err, "presented token is not valid")
			},
		},
		{
			uc:      "no networks allowed",
			allowed: nil,
			setup: func(req *http.Request) {
				req.RemoteAddr = "10.0.0.1:1234"
				req.Header.Set("Authorization", "Bearer abc")
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, authgate.ErrAuthentication)
				require.ErrorContains(t, err, "is not allowed")
			},
		},
		{
			uc:      "unparsable entries are ignored",
			allowed: []string{"foo", "10.0.0.1/33", "10.0.0.1"},
			setup: func(req *http.Request) {
				req.RemoteAddr = "10.0.0.1:1234"
				req.Header.Set("Authorization", "Bearer abc")
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc:      "client ip can not be determined",
			allowed: []string{"10.0.0.1"},
			setup: func(req *http.Request) {
				req.RemoteAddr = "foo"
				req.Header.Set("Authorization", "Bearer abc")
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, authgate.ErrAuthentication)
				require.ErrorContains(t, err, "failed to determine client ip")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			req := httptest.NewRequest(http.MethodGet, "/foo", nil)
			tc.setup(req)

			if len(tc.trusted) != 0 {
				proxies, _ := netx.NewRanger(tc.trusted, nil)
				req = req.WithContext(httpx.WithTrustedProxies(req.Context(), proxies))
			}

			strategy := NewTokenIP("abc", tc.allowed...)

			// WHEN
			err := strategy.Authorize(context.Background(), req)

			// THEN
			tc.assert(t, err)
		})
	}
}

func TestStrategyHash(t *testing.T) {
	t.Parallel()

	// GIVEN
	noToken := &NoTokenRequired{}
	simple1 := NewSimpleToken("foo")
	simple2 := NewSimpleToken("bar")
	tokenIP1 := NewTokenIP("foo", "10.0.0.1", "10.1.0.0/16")
	tokenIP2 := NewTokenIP("foo", "10.1.0.0/16", "10.0.0.1")
	tokenIP3 := NewTokenIP("foo", "10.0.0.2")

	// WHEN
	hashes := [][]byte{noToken.Hash(), simple1.Hash(), simple2.Hash(), tokenIP1.Hash(), tokenIP3.Hash()}

	// THEN
	for idx, hash := range hashes {
		assert.NotEmpty(t, hash)

		for _, other := range hashes[idx+1:] {
			assert.NotEqual(t, hash, other)
		}
	}

	assert.Equal(t, tokenIP1.Hash(), tokenIP2.Hash())
}

func TestStrategyHashDistinguishesFieldBoundaries(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		first  AuthStrategy
		second AuthStrategy
	}{
		{
			uc:     "network moved into token",
			first:  NewTokenIP("abc", "1.2.3.4", "5.6.7.8"),
			second: NewTokenIP("abc1.2.3.4/32", "5.6.7.8"),
		},
		{
			uc:     "networks joined",
			first:  NewTokenIP("abc", "10.0.0.0/8", "10.1.0.0/16"),
			second: NewTokenIP("abc10.0.0.0/8", "10.1.0.0/16"),
		},
		{
			uc:     "token holding the type name",
			first:  NewSimpleToken("abc"),
			second: NewSimpleToken("simple_tokenabc"),
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// WHEN
			firstHash := tc.first.Hash()
			secondHash := tc.second.Hash()

			// THEN
			assert.NotEqual(t, firstHash, secondHash)
		})
	}
}

func TestIsAuthorized(t *testing.T) {
	t.Parallel()

	// GIVEN
	req := httptest.NewRequest(http.MethodGet, "/foo?token=abc", nil)

	// WHEN & THEN
	assert.True(t, IsAuthorized(context.Background(), &NoTokenRequired{}, req))
	assert.True(t, IsAuthorized(context.Background(), NewSimpleToken("abc"), req))
	assert.False(t, IsAuthorized(context.Background(), NewSimpleToken("abcd"), req))
}
