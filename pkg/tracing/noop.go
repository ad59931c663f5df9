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

package tracing

import "context"

// NoopSpan discards all span operations.
type NoopSpan struct{}

func (NoopSpan) SetAttribute(string, interface{}) {}

func (NoopSpan) End() {}

// NoopTracer hands out NoopSpans, letting callers trace unconditionally
// whether or not a backend is configured.
type NoopTracer struct{}

// Start returns ctx unchanged and a span that does nothing.
func (NoopTracer) Start(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, NoopSpan{}
}
