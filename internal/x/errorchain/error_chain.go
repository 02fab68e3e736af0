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


package errorchain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
)

type link struct {
	err error
	msg string
}

func (l link) String() string {
	if len(l.msg) == 0 {
		return l.err.Error()
	}

	return l.err.Error() + ": " + l.msg
}

// ErrorChain is a sentinel error, optionally annotated with a message, followed
// by the errors which caused it. errors.Is and errors.As consider every link.
type ErrorChain struct { // nolint: errname
	links []link
}

func New(err error) *ErrorChain { return NewWithMessage(err, "") }

func NewWithMessage(err error, message string) *ErrorChain {
	return &ErrorChain{links: []link{{err: err, msg: message}}}
}

func NewWithMessagef(err error, format string, a ...any) *ErrorChain {
	return NewWithMessage(err, fmt.Sprintf(format, a...))
}

// CausedBy appends err to the chain and returns the chain itself.
func (ec *ErrorChain) CausedBy(err error) *ErrorChain {
	ec.links = append(ec.links, link{err: err})

	return ec
}

func (ec *ErrorChain) Error() string {
	parts := make([]string, len(ec.links))
	for i, l := range ec.links {
		parts[i] = l.String()
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the remainder of the chain, or nil once the last link is reached.
func (ec *ErrorChain) Unwrap() error {
	if len(ec.links) < 2 { // nolint: mnd
		return nil
	}

	return &ErrorChain{links: ec.links[1:]}
}

func (ec *ErrorChain) Is(target error) bool {
	return len(ec.links) != 0 && errors.Is(ec.links[0].err, target)
}

func (ec *ErrorChain) As(target any) bool {
	return len(ec.links) != 0 && errors.As(ec.links[0].err, target)
}

// Errors returns the errors of all links, the sentinel first.
func (ec *ErrorChain) Errors() []error {
	errs := make([]error, len(ec.links))
	for i, l := range ec.links {
		errs[i] = l.err
	}

	return errs
}

// MarshalJSON renders the head of the chain only. Causes may carry internals
// which must not leak to clients.
func (ec *ErrorChain) MarshalJSON() ([]byte, error) {
	head := ec.links[0]

	return json.Marshal(struct {
		Code    string `json:"code"`
		Message string `json:"message,omitempty"`
	}{
		Code:    strcase.ToLowerCamel(head.err.Error()),
		Message: head.msg,
	})
}
