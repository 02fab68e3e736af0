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


package serve

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx/fxevent"
)

// eventLogger routes fx lifecycle events to zerolog. Successful steps are traced,
// failures are logged as errors.
type eventLogger struct {
	l zerolog.Logger
}

func (l *eventLogger) outcome(err error) *zerolog.Event {
	if err != nil {
		return l.l.Error().Err(err)
	}

	return l.l.Trace()
}

func pick(err error, success, failure string) string {
	if err != nil {
		return failure
	}

	return success
}

func withRuntime(evt *zerolog.Event, err error, runtime time.Duration) *zerolog.Event {
	if err != nil {
		return evt
	}

	return evt.Str("_runtime", runtime.String())
}

func withModule(evt *zerolog.Event, name string, trace []string) *zerolog.Event {
	return evt.Str("_module", name).Strs("_moduleTrace", trace)
}

// nolint: funlen, cyclop
func (l *eventLogger) LogEvent(event fxevent.Event) {
	switch evt := event.(type) {
	case *fxevent.OnStartExecuting:
		l.l.Trace().Str("_functionName", evt.FunctionName).Str("_caller", evt.CallerName).
			Msg("OnStart hook executing")
	case *fxevent.OnStartExecuted:
		withRuntime(l.outcome(evt.Err), evt.Err, evt.Runtime).
			Str("_functionName", evt.FunctionName).Str("_caller", evt.CallerName).
			Msg(pick(evt.Err, "OnStart hook executed", "OnStart hook failed"))
	case *fxevent.OnStopExecuting:
		l.l.Trace().Str("_functionName", evt.FunctionName).Str("_caller", evt.CallerName).
			Msg("OnStop hook executing")
	case *fxevent.OnStopExecuted:
		withRuntime(l.outcome(evt.Err), evt.Err, evt.Runtime).
			Str("_functionName", evt.FunctionName).Str("_caller", evt.CallerName).
			Msg(pick(evt.Err, "OnStop hook executed", "OnStop hook failed"))
	case *fxevent.Supplied:
		e := withModule(l.outcome(evt.Err), evt.ModuleName, evt.ModuleTrace).Str("_type", evt.TypeName)
		if evt.Err != nil {
			e = e.Strs("_stacktrace", evt.StackTrace)
		}

		e.Msg(pick(evt.Err, "Module supplied", "Error encountered while supplying module"))
	case *fxevent.Provided:
		if evt.Err != nil {
			withModule(l.outcome(evt.Err), evt.ModuleName, evt.ModuleTrace).
				Strs("_stacktrace", evt.StackTrace).
				Msg("Error encountered while providing module")

			return
		}

		for _, typeName := range evt.OutputTypeNames {
			withModule(l.l.Trace(), evt.ModuleName, evt.ModuleTrace).
				Strs("_stacktrace", evt.StackTrace).
				Str("_constructor", evt.ConstructorName).
				Str("_type", typeName).
				Bool("_private", evt.Private).
				Msg("Module provided")
		}
	case *fxevent.Replaced:
		l.eachType(evt.Err, evt.OutputTypeNames, func(e *zerolog.Event) *zerolog.Event {
			return withModule(e, evt.ModuleName, evt.ModuleTrace).Strs("_stacktrace", evt.StackTrace)
		}, "Module replaced", "Error encountered while replacing module")
	case *fxevent.Decorated:
		l.eachType(evt.Err, evt.OutputTypeNames, func(e *zerolog.Event) *zerolog.Event {
			e = withModule(e, evt.ModuleName, evt.ModuleTrace).Strs("_stacktrace", evt.StackTrace)
			if evt.Err == nil {
				e = e.Str("_decorator", evt.DecoratorName)
			}

			return e
		}, "Module decorated", "Error encountered while decorating module")
	case *fxevent.Run:
		withRuntime(l.outcome(evt.Err), evt.Err, evt.Runtime).
			Str("_name", evt.Name).Str("_kind", evt.Kind).Str("_module", evt.ModuleName).
			Msg(pick(evt.Err, "Run completed", "Error returned"))
	case *fxevent.Invoking:
		l.l.Trace().Str("_function", evt.FunctionName).Str("_module", evt.ModuleName).
			Msg("Invoking module")
	case *fxevent.Invoked:
		l.outcome(evt.Err).
			Str("_function", evt.FunctionName).Str("_module", evt.ModuleName).Str("_stack", evt.Trace).
			Msg(pick(evt.Err, "Invoked module", "Invoke failed"))
	case *fxevent.Stopping:
		l.l.Trace().Str("_signal", strings.ToUpper(evt.Signal.String())).Msg("Received signal")
	case *fxevent.Stopped:
		l.outcome(evt.Err).Msg(pick(evt.Err, "Stopped", "Stop failed"))
	case *fxevent.RollingBack:
		l.l.Error().Err(evt.StartErr).Msg("Start failed, rolling back")
	case *fxevent.RolledBack:
		l.outcome(evt.Err).Msg(pick(evt.Err, "Rollback succeeded", "Rollback failed"))
	case *fxevent.Started:
		l.outcome(evt.Err).Msg(pick(evt.Err, "Started", "Start failed"))
	case *fxevent.LoggerInitialized:
		e := l.outcome(evt.Err)
		if evt.Err == nil {
			e = e.Str("_function", evt.ConstructorName)
		}

		e.Msg(pick(evt.Err, "Initialized custom logger", "Custom logger initialization failed"))
	}
}

// eachType logs a failure once, or one trace entry per output type.
func (l *eventLogger) eachType(
	err error, typeNames []string, enrich func(*zerolog.Event) *zerolog.Event, success, failure string,
) {
	if err != nil {
		enrich(l.outcome(err)).Msg(failure)

		return
	}

	for _, typeName := range typeNames {
		enrich(l.l.Trace()).Str("_type", typeName).Msg(success)
	}
}
