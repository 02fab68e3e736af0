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

package config

import (
	"fmt"
	"time"

	"github.com/inhies/go-bytesize"
)

type ServeConfig struct {
	Decision   ServiceConfig `koanf:"decision"`
	Management ServiceConfig `koanf:"management"`
}

type ServiceConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"                   validate:"gt=0,lte=65535"`
	Timeout        Timeout       `koanf:"timeout"`
	BufferLimit    BufferLimit   `koanf:"buffer_limit"`
	CORS           *CORS         `koanf:"cors,omitempty"`
	TrustedProxies []string      `koanf:"trusted_proxies"        validate:"dive,ip_or_cidr"`
	Respond        RespondConfig `koanf:"respond"`
}

func (c ServiceConfig) Address() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

type Timeout struct {
	Read  time.Duration `koanf:"read,string"  mapstructure:"read"`
	Write time.Duration `koanf:"write,string" mapstructure:"write"`
	Idle  time.Duration `koanf:"idle,string"  mapstructure:"idle"`
}

// BufferLimit limits the size of the request header.
type BufferLimit struct {
	Read bytesize.ByteSize `koanf:"read" mapstructure:"read"`
}

type CORS struct {
	AllowedOrigins   []string      `koanf:"allowed_origins"`
	AllowedMethods   []string      `koanf:"allowed_methods"`
	AllowedHeaders   []string      `koanf:"allowed_headers"`
	ExposedHeaders   []string      `koanf:"exposed_headers"`
	AllowCredentials bool          `koanf:"allow_credentials"`
	MaxAge           time.Duration `koanf:"max_age,string"`
}

type RespondConfig struct {
	Verbose bool `koanf:"verbose"`
}
