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
)

type Type string

const (
	TypeNoTokenRequired Type = "no_token"
	TypeSimpleToken     Type = "simple_token"
	TypeTokenIP         Type = "token_ip"
)

// AuthStrategy decides whether a request is authenticated. Implementations are
// immutable and safe for concurrent use.
type AuthStrategy interface {
	Type() Type
	// Authorize returns nil if the request is allowed to pass. Otherwise, the
	// returned error wraps authgate.ErrAuthentication.
	Authorize(ctx context.Context, req *http.Request) error
	Hash() []byte
}

func IsAuthorized(ctx context.Context, strategy AuthStrategy, req *http.Request) bool {
	return strategy.Authorize(ctx, req) == nil
}
