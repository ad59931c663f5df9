//go:build otel

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
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// defaultOTLPEndpoint targets a collector on the local OTLP/HTTP port when no
// endpoint is configured, e.g. a Jaeger all-in-one.
const defaultOTLPEndpoint = "http://localhost:4318"

// provider is retained so Shutdown can flush batched spans.
var provider *sdktrace.TracerProvider

// InitFromEnv wires OpenTelemetry OTLP export from the OTEL_* environment.
// Setting OTEL_TRACES_EXPORTER=none leaves the no-op tracer in place.
func InitFromEnv() error {
	if os.Getenv("OTEL_TRACES_EXPORTER") == "none" {
		return nil
	}

	endpointSet := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" ||
		os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") != ""
	if !endpointSet {
		_ = os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", defaultOTLPEndpoint)
	}

	var opts []otlptracehttp.Option
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == defaultOTLPEndpoint {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(context.Background(), opts...)
	if err != nil {
		return err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "file-signing"
	}

	provider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)
	otel.SetTracerProvider(provider)
	SetTracer(&otelTracer{tracer: provider.Tracer("github.com/filesign/file-signing")})
	return nil
}

// Shutdown flushes pending spans and stops the provider. Safe to call when
// InitFromEnv never installed one.
func Shutdown(ctx context.Context) error {
	if provider == nil {
		return nil
	}
	p := provider
	provider = nil
	return p.Shutdown(ctx)
}

// otelTracer bridges an OpenTelemetry tracer to the package's Tracer.
type otelTracer struct {
	tracer trace.Tracer
}

func (t *otelTracer) Start(ctx context.Context, name string) (context.Context, Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &otelSpan{span: span}
}

type otelSpan struct {
	span trace.Span
}

func (s *otelSpan) SetAttribute(key string, value interface{}) {
	k := attribute.Key(key)
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(k.String(v))
	case bool:
		s.span.SetAttributes(k.Bool(v))
	case int:
		s.span.SetAttributes(k.Int(v))
	case int64:
		s.span.SetAttributes(k.Int64(v))
	default:
		s.span.SetAttributes(k.String(fmt.Sprintf("%v", v)))
	}
}

func (s *otelSpan) End() {
	s.span.End()
}
