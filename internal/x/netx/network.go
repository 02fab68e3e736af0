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
	"strings"

	"github.com/yl2chen/cidranger"
)

// ParseNetwork accepts either a network in CIDR notation or a single IP address.
// The latter is returned as a /32 (IPv4) or /128 (IPv6) network.
func ParseNetwork(entry string) (*net.IPNet, error) {
	entry = strings.TrimSpace(entry)

	if strings.Contains(entry, "/") {
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			return nil, err
		}

		return ipNet, nil
	}

	ip := net.ParseIP(entry)
	if ip == nil {
		return nil, &net.ParseError{Type: "IP address", Text: entry}
	}

	if ip4 := ip.To4(); ip4 != nil {
		return &net.IPNet{IP: ip4, Mask: net.CIDRMask(net.IPv4len*8, net.IPv4len*8)}, nil // nolint: mnd
	}

	return &net.IPNet{IP: ip, Mask: net.CIDRMask(net.IPv6len*8, net.IPv6len*8)}, nil // nolint: mnd
}

// NewRanger builds a lookup structure for the given entries. Entries which can not
// be parsed are passed to onInvalid and skipped. The returned slice holds the
// normalized networks in the order of insertion.
func NewRanger(entries []string, onInvalid func(entry string, err error)) (cidranger.Ranger, []string) {
	ranger := cidranger.NewPCTrieRanger()
	networks := make([]string, 0, len(entries))

	for _, entry := range entries {
		ipNet, err := ParseNetwork(entry)
		if err == nil {
			err = ranger.Insert(cidranger.NewBasicRangerEntry(*ipNet))
		}

		if err != nil {
			if onInvalid != nil {
				onInvalid(entry, err)
			}

			continue
		}

		networks = append(networks, ipNet.String())
	}

	return ranger, networks
}
