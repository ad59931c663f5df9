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

import (
	"context"
	"errors"
	"testing"
)

type recordingSpan struct {
	attrs map[string]interface{}
	ended bool
}

func (s *recordingSpan) SetAttribute(key string, value interface{}) { s.attrs[key] = value }
func (s *recordingSpan) End()                                       { s.ended = true }

type recordingTracer struct {
	spans []*recordingSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string) (context.Context, Span) {
	span := &recordingSpan{attrs: map[string]interface{}{}}
	t.spans = append(t.spans, span)
	return ctx, span
}

func TestDefaultTracerIsNoop(t *testing.T) {
	if Enabled() {
		t.Fatal("tracing should be disabled by default")
	}

	_, span := Start(context.Background(), "op")
	span.SetAttribute("k", "v")
	span.End()
}

func TestSetTracer(t *testing.T) {
	tracer := &recordingTracer{}
	SetTracer(tracer)
	defer SetTracer(nil)

	if !Enabled() {
		t.Fatal("tracing should be enabled with a real tracer")
	}

	_, span := Start(context.Background(), "op")
	span.End()
	if len(tracer.spans) != 1 || !tracer.spans[0].ended {
		t.Errorf("span was not recorded/ended: %+v", tracer.spans)
	}

	SetTracer(nil)
	if Enabled() {
		t.Error("SetTracer(nil) should restore the no-op tracer")
	}
}

func TestRun(t *testing.T) {
	tracer := &recordingTracer{}
	SetTracer(tracer)
	defer SetTracer(nil)

	wantErr := errors.New("inner failure")
	err := Run(context.Background(), "op", map[string]interface{}{"size": 42}, func(context.Context) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Run returned %v, want %v", err, wantErr)
	}

	if len(tracer.spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(tracer.spans))
	}
	span := tracer.spans[0]
	if !span.ended {
		t.Error("span was not ended")
	}
	if span.attrs["size"] != 42 {
		t.Errorf("span attrs = %v", span.attrs)
	}
}

func TestRunWithoutTracer(t *testing.T) {
	called := false
	err := Run(context.Background(), "op", nil, func(context.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Errorf("Run returned %v", err)
	}
	if !called {
		t.Error("fn was not called with the no-op tracer")
	}
}
