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

package validation

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/authgate/authgate/internal/x/netx"
)

// NetworkValidator accepts either a single IP address or a network in CIDR notation.
type NetworkValidator struct{}

func (NetworkValidator) Tag() string { return "ip_or_cidr" }

func (NetworkValidator) Validate(fl validator.FieldLevel) bool {
	_, err := netx.ParseNetwork(fl.Field().String())

	return err == nil
}

func (NetworkValidator) MessageTemplate() string {
	return "{0} must be an IP address or a network in CIDR notation"
}

func (NetworkValidator) Translate(ut ut.Translator, fe validator.FieldError) string {
	msg, err := ut.T("ip_or_cidr", fe.Field())
	if err != nil {
		return fe.Error()
	}

	return msg
}
