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
	"crypto/sha256"
	"encoding/binary"
)

// configHash hashes the given fields. Each one is prefixed with its length, so
// that different field splits never produce the same input.
func configHash(fields ...string) []byte {
	hash := sha256.New()
	size := make([]byte, 8) // nolint: mnd

	for _, field := range fields {
		binary.BigEndian.PutUint64(size, uint64(len(field)))
		hash.Write(size)
		hash.Write([]byte(field))
	}

	return hash.Sum(nil)
}
