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
	"errors"
	"maps"
	"slices"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// fieldErrors renders validator errors as sorted, translated messages.
type fieldErrors struct {
	cause    error
	messages []string
}

func newFieldErrors(err error, trans ut.Translator) error {
	if err == nil {
		return nil
	}

	fe := &fieldErrors{cause: err}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		fe.messages = slices.Sorted(maps.Values(errs.Translate(trans)))
	}

	return fe
}

func (e *fieldErrors) Error() string {
	if len(e.messages) == 0 {
		return e.cause.Error()
	}

	return strings.Join(e.messages, ", ")
}

func (e *fieldErrors) Unwrap() error { return e.cause }
