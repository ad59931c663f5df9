// Copyright 2025 The file-signing Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tracing wraps distributed tracing behind a minimal Span/Tracer
// abstraction. The default build carries a no-op tracer with zero overhead;
// compiling with -tags=otel swaps in OpenTelemetry OTLP export, configured
// from the standard OTEL_* environment variables. Sign and verify runs are
// the traced operations.
package tracing

import "context"

// Span is one traced operation. End must be called when the operation
// finishes.
type Span interface {
	SetAttribute(key string, value interface{})
	End()
}

// Tracer starts spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start opens a span named name. The returned context carries the span
	// for downstream calls.
	Start(ctx context.Context, name string) (context.Context, Span)
}

var globalTracer Tracer = NoopTracer{}

// SetTracer installs the tracer used by Start and Run. Call once at startup;
// nil reinstalls the no-op tracer.
func SetTracer(t Tracer) {
	if t == nil {
		t = NoopTracer{}
	}
	globalTracer = t
}

// GetTracer returns the installed tracer, never nil.
func GetTracer() Tracer {
	return globalTracer
}

// Start opens a span on the installed tracer.
func Start(ctx context.Context, name string) (context.Context, Span) {
	return globalTracer.Start(ctx, name)
}

// Enabled reports whether a real tracer is installed. Without -tags=otel
// nothing ever installs one, so this stays false.
func Enabled() bool {
	_, noop := globalTracer.(NoopTracer)
	return !noop
}

// Run wraps fn in a span carrying attrs. With no real tracer installed, fn
// runs directly and no span is allocated.
func Run(ctx context.Context, name string, attrs map[string]interface{}, fn func(context.Context) error) error {
	if !Enabled() {
		return fn(ctx)
	}

	ctx, span := globalTracer.Start(ctx, name)
	defer span.End()
	for k, v := range attrs {
		span.SetAttribute(k, v)
	}
	return fn(ctx)
}
