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

package netx

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNetwork(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		entry    string
		expected string
	}{
		{uc: "ipv4 network", entry: "10.0.0.0/8", expected: "10.0.0.0/8"},
		{uc: "ipv4 network with host bits", entry: "10.1.2.3/8", expected: "10.0.0.0/8"},
		{uc: "single ipv4 address", entry: " 192.168.1.1 ", expected: "192.168.1.1/32"},
		{uc: "ipv6 network", entry: "fd00::/8", expected: "fd00::/8"},
		{uc: "single ipv6 address", entry: "::1", expected: "::1/128"},
		{uc: "bad network", entry: "/128"},
		{uc: "bad address", entry: "foo"},
		{uc: "empty", entry: ""},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			ipNet, err := ParseNetwork(tc.entry)

			// THEN
			if len(tc.expected) == 0 {
				require.Error(t, err)
				assert.Nil(t, ipNet)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, ipNet.String())
		})
	}
}

func TestNewRanger(t *testing.T) {
	t.Parallel()

	// GIVEN
	var invalid []string

	// WHEN
	ranger, networks := NewRanger(
		[]string{"10.0.0.0/8", "foo", "192.168.1.1", "::1"},
		func(entry string, _ error) { invalid = append(invalid, entry) },
	)

	// THEN
	assert.Equal(t, []string{"foo"}, invalid)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1/32", "::1/128"}, networks)

	for ip, expected := range map[string]bool{
		"10.20.30.40": true,
		"192.168.1.1": true,
		"192.168.1.2": false,
		"::1":         true,
		"::2":         false,
	} {
		ok, err := ranger.Contains(net.ParseIP(ip))
		require.NoError(t, err)
		assert.Equal(t, expected, ok, ip)
	}
}
