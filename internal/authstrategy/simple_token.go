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
	"crypto/subtle"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/authgate/authgate/internal/authgate"
	"github.com/authgate/authgate/internal/x/errorchain"
)

type SimpleToken struct {
	token string
}

func NewSimpleToken(token string) *SimpleToken {
	return &SimpleToken{token: token}
}

func (*SimpleToken) Type() Type { return TypeSimpleToken }

func (s *SimpleToken) Token() string { return s.token }

func (s *SimpleToken) Authorize(ctx context.Context, req *http.Request) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Msg("Authorizing request using simple_token strategy")

	return verifyToken(s.token, req)
}

func (s *SimpleToken) Hash() []byte { return configHash(string(s.Type()), s.token) }

func verifyToken(expected string, req *http.Request) error {
	presented, err := extractToken(req)
	if err != nil {
		return err
	}

	// an empty configured token never matches
	if len(expected) == 0 || subtle.ConstantTimeCompare([]byte(expected), []byte(presented)) != 1 {
		return errorchain.NewWithMessage(authgate.ErrAuthentication, "presented token is not valid")
	}

	return nil
}
