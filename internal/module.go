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


package internal

import (
	"go.uber.org/fx"

	"github.com/authgate/authgate/internal/config"
	"github.com/authgate/authgate/internal/logging"
	"github.com/authgate/authgate/internal/metrics"
	"github.com/authgate/authgate/internal/watcher"
)

// Module is used on app bootstrap.
// nolint: gochecknoglobals
var Module = fx.Options(
	config.Module,
	logging.Module,
	metrics.Module,
	watcher.Module,
)
