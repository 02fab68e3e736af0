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
)

// CustomValidator is a validation tag together with the english message
// reported when the validation fails.
type CustomValidator interface {
	Tag() string
	Validate(fl validator.FieldLevel) bool
	// MessageTemplate uses {0} as placeholder for the field name.
	MessageTemplate() string
	Translate(ut ut.Translator, fe validator.FieldError) string
}

type Option func(v *validator.Validate, t ut.Translator) error

func WithCustomValidator(cv CustomValidator) Option {
	return func(v *validator.Validate, t ut.Translator) error {
		if err := v.RegisterValidation(cv.Tag(), cv.Validate); err != nil {
			return err
		}

		return v.RegisterTranslation(cv.Tag(), t,
			func(trans ut.Translator) error { return trans.Add(cv.Tag(), cv.MessageTemplate(), true) },
			cv.Translate,
		)
	}
}
