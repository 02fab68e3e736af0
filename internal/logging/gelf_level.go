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


package logging

import "github.com/rs/zerolog"

// gelfLevel is the numeric syslog severity (RFC 5424) GELF expects in its level field.
type gelfLevel int8

const (
	gelfEmergency gelfLevel = iota
	gelfAlert
	gelfCritical
	gelfError
	gelfWarning
	gelfNotice
	gelfInformational
	gelfDebug
)

// nolint: gochecknoglobals
var zerologToGelfLevel = map[zerolog.Level]gelfLevel{
	zerolog.TraceLevel: gelfDebug,
	zerolog.DebugLevel: gelfDebug,
	zerolog.InfoLevel:  gelfInformational,
	zerolog.WarnLevel:  gelfWarning,
	zerolog.ErrorLevel: gelfError,
	zerolog.FatalLevel: gelfCritical,
	zerolog.PanicLevel: gelfAlert,
}

func toGelfLevel(level zerolog.Level) gelfLevel {
	if lvl, ok := zerologToGelfLevel[level]; ok {
		return lvl
	}

	return gelfEmergency
}
